// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every environment variable read by vcinfo.
const envPrefix = "VCINFO"

// Config holds the settings vcinfo reads from the environment.
type Config struct {
	// LogFormat is "json" or "console".
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	// LogLevel is the minimum level logged: "debug", "info", "warn", "error".
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// loadConfig reads Config from the environment, after loading envFile into
// it when one is given. Variables already set take precedence over the file.
func loadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s_* environment: %w", envPrefix, err)
	}
	return cfg, nil
}
