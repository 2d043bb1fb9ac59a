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
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/go-vc/vc"
	"go.uber.org/zap"
)

// check is one end-to-end probe of the vector pipeline.
type check struct {
	name string
	run  func() error
}

var checks = []check{
	{"masked-write/128bit", checkMaskedWrite[vc.Reg128]},
	{"masked-write/256bit", checkMaskedWrite[vc.Reg256]},
	{"masked-write/512bit", checkMaskedWrite[vc.Reg512]},
	{"masked-div", checkMaskedDiv},
	{"gather", checkGather},
	{"scatter-masked", checkScatterMasked},
	{"gather-field", checkGatherField},
}

// runSelfCheck runs every check and returns the joined failures.
func runSelfCheck(logger *zap.Logger) error {
	var errs []error
	for _, c := range checks {
		if err := c.run(); err != nil {
			logger.Error("check failed", zap.String("check", c.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		logger.Info("check passed", zap.String("check", c.name))
	}
	return errors.Join(errs...)
}

func expect[T comparable](got, want []T) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

// checkMaskedWrite sets the lanes below 2 to 1 and then increments the lanes
// below 3, which must give [2 2 1 0 0 ...].
func checkMaskedWrite[R vc.Register]() error {
	v := vc.Zero[float32, R]()
	idx := vc.IndexesFromZero[int32, R]()
	v.Masked(vc.CastMask[float32](vc.Less(idx, vc.Broadcast[int32, R](2)))).SetScalar(1)
	v.Masked(vc.CastMask[float32](vc.Less(idx, vc.Broadcast[int32, R](3)))).Inc()

	want := make([]float32, v.Size())
	want[0], want[1], want[2] = 2, 2, 1
	return expect(v.Data(), want)
}

// checkMaskedDiv divides only the lanes with a non-zero divisor.
func checkMaskedDiv() error {
	num := vc.Broadcast[int32, vc.Reg128](12)
	div := vc.Load[int32, vc.Reg128]([]int32{3, 0, 4, 0}, vc.Unaligned)
	num.Masked(vc.NotEqual(div, vc.Zero[int32, vc.Reg128]())).Div(div)
	return expect(num.Data(), []int32{4, 12, 3, 12})
}

func checkGather() error {
	data := []float32{10, 20, 30, 40}
	idx := vc.Load[int32, vc.Reg128]([]int32{3, 1, 0, 2}, vc.Unaligned)
	return expect(vc.Gather[vc.Reg128](data, idx).Data(), []float32{40, 20, 10, 30})
}

// checkScatterMasked writes two lanes and must leave the others untouched,
// even though their indices are far out of range.
func checkScatterMasked() error {
	dst := []int32{-1, -1, -1, -1}
	v := vc.Load[int32, vc.Reg128]([]int32{5, 6, 7, 8}, vc.Unaligned)
	idx := vc.Load[int32, vc.Reg128]([]int32{2, 1 << 30, 0, -7}, vc.Unaligned)
	m := vc.Equal(vc.Load[int32, vc.Reg128]([]int32{1, 0, 1, 0}, vc.Unaligned), vc.One[int32, vc.Reg128]())
	vc.ScatterMasked(v, dst, idx, m)
	return expect(dst, []int32{7, -1, 5, -1})
}

func checkGatherField() error {
	type point struct {
		x, y float64
	}
	pts := []point{{1, 2}, {3, 4}, {5, 6}}
	y := vc.FieldOf(func(p *point) *float64 { return &p.y })
	idx := vc.Load[int32, vc.Reg128]([]int32{2, 0, 0, 0}, vc.Unaligned)
	return expect(vc.GatherField[vc.Reg128](pts, y, idx).Data(), []float64{6, 2})
}
