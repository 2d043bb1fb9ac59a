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

// Command vcgen generates the named vector types of package vc.
//
// Usage:
//
//	vcgen -o family_gen.go
//	vcgen -o family_gen.go --check   # fail if the file is out of date
//
// Or via go:generate from the vc directory:
//
//	//go:generate go run ../cmd/vcgen -o family_gen.go
//
// For every lane type and register width it emits a Vector alias named after
// the lane count (Float32x8), with Mask, Index and Memory companions, and the
// native-width aliases FloatV, DoubleV, IntV, UintV, ShortV and UshortV.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output string
		check  bool
	)
	cmd := &cobra.Command{
		Use:          "vcgen",
		Short:        "Generate the vector type aliases of package vc",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := Emit()
			if err != nil {
				return err
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if check {
				return checkUpToDate(output, src)
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %d vector families in %s\n", len(Families()), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", generatedName, "output file, or - for stdout")
	cmd.Flags().BoolVar(&check, "check", false, "verify that the output file is up to date instead of writing it")
	return cmd
}

func checkUpToDate(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s is out of date, rerun go generate", path)
	}
	return nil
}
