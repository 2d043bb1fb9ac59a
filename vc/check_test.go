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

//go:build vccheck

package vc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedMisalignedLoad(t *testing.T) {
	buf := AllocAligned[float32](16)
	assert.Panics(t, func() { Load[float32, Reg256](buf[1:], Aligned) })
	assert.Panics(t, func() { Zero[float32, Reg128]().Store(buf[2:], Aligned) })
	assert.NotPanics(t, func() { Load[float32, Reg256](buf[1:], Unaligned) })
	assert.NotPanics(t, func() { Load[float32, Reg256](buf[8:], Aligned) })
}

func TestCheckedLaneRange(t *testing.T) {
	v := Zero[int32, Reg128]()
	assert.Panics(t, func() { v.Lane(4) })
	assert.Panics(t, func() { v.SetLane(-1, 0) })
	assert.Panics(t, func() { FirstN[int32, Reg128](2).Lane(4) })
}

func TestCheckedIndexRange(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	idx := Load[int32, Reg128]([]int32{0, 1, 2, 9}, Unaligned)
	assert.PanicsWithValue(t, "vc: active lane 3 has index 9 outside [0, 4)", func() {
		Gather[Reg128](src, idx)
	})
	// Masked-off lanes are not checked.
	assert.NotPanics(t, func() {
		GatherMasked(src, idx, FirstN[float32, Reg128](3))
	})
}
