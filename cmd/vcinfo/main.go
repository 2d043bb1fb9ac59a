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

// Command vcinfo reports how package vc runs on this machine: the detected
// instruction set, the CPU identity and, for every named vector type, its
// lane count and the backend serving it.
//
// Usage:
//
//	vcinfo                # text report
//	vcinfo --json         # JSON report
//	vcinfo selfcheck      # run end-to-end checks of the vector pipeline
//
// Logging is configured with VCINFO_LOG_LEVEL and VCINFO_LOG_FORMAT, which
// may also be given in a file passed with --env-file. Set VC_NO_SIMD=1 to
// inspect the portable backend.
package main

import (
	"os"

	"github.com/ajroetker/go-vc/vc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by the commands.
type app struct {
	envFile string
	asJSON  bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "vcinfo",
		Short:        "Report the vector backends selected on this machine",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(zapcore.AddSync(cmd.ErrOrStderr()))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := buildReport()
			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return writeText(cmd.OutOrStdout(), r)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load VCINFO_* variables from this file")
	root.Flags().BoolVar(&a.asJSON, "json", false, "print the report as JSON")

	root.AddCommand(&cobra.Command{
		Use:   "selfcheck",
		Short: "Run end-to-end checks of masks, masked writes and gather/scatter",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runSelfCheck(a.logger)
		},
	})
	return root
}

func (a *app) setup(out zapcore.WriteSyncer) error {
	cfg, err := loadConfig(a.envFile)
	if err != nil {
		return err
	}
	a.logger, err = newLogger(cfg, out)
	if err != nil {
		return err
	}
	a.logger.Debug("dispatch",
		zap.String("level", vc.CurrentName()),
		zap.Int("width", vc.CurrentWidth()),
		zap.Bool("no_simd", vc.NoSimdEnv()),
	)
	return nil
}
