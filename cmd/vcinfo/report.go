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
	"io"
	"text/tabwriter"

	"github.com/ajroetker/go-vc/vc"
	"github.com/dustin/go-humanize"
	gojson "github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
)

// Report is everything vcinfo knows about the host and the vector types.
type Report struct {
	Target   Target          `json:"target"`
	CPU      CPU             `json:"cpu"`
	Families []vc.FamilyInfo `json:"families"`
}

// Target describes the dispatch decision of package vc.
type Target struct {
	Level     string `json:"level"`
	Width     int    `json:"width"`
	NativeReg string `json:"native_reg"`
	NoSIMD    bool   `json:"no_simd"`
}

// CPU is the host identity as reported by cpuid.
type CPU struct {
	Vendor   string   `json:"vendor"`
	Brand    string   `json:"brand"`
	Cores    int      `json:"cores"`
	Features []string `json:"features"`
	L1D      string   `json:"l1d"`
	L2       string   `json:"l2"`
	L3       string   `json:"l3"`
}

// simdFeatures are the cpuid features relevant to vector backends.
var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE2, cpuid.SSE4, cpuid.AVX, cpuid.AVX2, cpuid.FMA3,
	cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL,
	cpuid.ASIMD, cpuid.SVE,
}

func buildReport() Report {
	return Report{
		Target: Target{
			Level:     vc.CurrentName(),
			Width:     vc.CurrentWidth(),
			NativeReg: vc.WidthName[vc.NativeReg](),
			NoSIMD:    vc.NoSimdEnv(),
		},
		CPU:      detectCPU(),
		Families: vc.Families(),
	}
}

func detectCPU() CPU {
	supported := lo.Filter(simdFeatures, func(f cpuid.FeatureID, _ int) bool {
		return cpuid.CPU.Supports(f)
	})
	return CPU{
		Vendor:   cpuid.CPU.VendorString,
		Brand:    cpuid.CPU.BrandName,
		Cores:    cpuid.CPU.PhysicalCores,
		Features: lo.Map(supported, func(f cpuid.FeatureID, _ int) string { return f.String() }),
		L1D:      cacheSize(cpuid.CPU.Cache.L1D),
		L2:       cacheSize(cpuid.CPU.Cache.L2),
		L3:       cacheSize(cpuid.CPU.Cache.L3),
	}
}

// cacheSize formats a cpuid cache size, which is -1 when unknown.
func cacheSize(n int) string {
	if n <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}

func writeJSON(w io.Writer, r Report) error {
	b, err := gojson.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeText(w io.Writer, r Report) error {
	fmt.Fprintf(w, "target:     %s (%d-byte registers, native %s)\n", r.Target.Level, r.Target.Width, r.Target.NativeReg)
	if r.Target.NoSIMD {
		fmt.Fprintf(w, "            VC_NO_SIMD is set, portable backend forced\n")
	}
	fmt.Fprintf(w, "cpu:        %s %s, %d cores\n", r.CPU.Vendor, r.CPU.Brand, r.CPU.Cores)
	fmt.Fprintf(w, "features:   %v\n", r.CPU.Features)
	fmt.Fprintf(w, "caches:     L1D %s, L2 %s, L3 %s\n\n", r.CPU.L1D, r.CPU.L2, r.CPU.L3)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLANE\tWIDTH\tSIZE\tBACKEND")
	for _, f := range r.Families {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", f.Name, f.Lane, f.Width, f.Size, f.Backend)
	}
	return tw.Flush()
}
