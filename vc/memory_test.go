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

package vc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	for _, n := range []int{1, 3, 16, 17, 1000} {
		f := AllocAligned[float32](n)
		require.Len(t, f, n)
		assert.True(t, IsAligned(f, VectorAlignment), "float32 n=%d", n)

		b := AllocAligned[int8](n)
		require.Len(t, b, n)
		assert.True(t, IsAligned(b, VectorAlignment), "int8 n=%d", n)

		d := AllocAligned[uint64](n)
		require.Len(t, d, n)
		assert.True(t, IsAligned(d, VectorAlignment), "uint64 n=%d", n)
	}
	assert.Nil(t, AllocAligned[float64](0))
}

func TestAllocAlignedCapacity(t *testing.T) {
	f := AllocAligned[float32](5)
	// Appending must reallocate instead of writing into the padding.
	assert.Equal(t, 5, cap(f))
}

func TestIsAligned(t *testing.T) {
	buf := AllocAligned[int32](32)
	assert.True(t, IsAligned(buf, 64))
	assert.True(t, IsAligned(buf[4:], 16))
	assert.False(t, IsAligned(buf[1:], 16))
	assert.True(t, IsAligned([]int32(nil), 64))
}

func TestMemory(t *testing.T) {
	m := NewMemory[float32, Reg256]()
	require.Equal(t, 8, m.Len())
	assert.Equal(t, 1, m.VectorsCount())
	assert.True(t, IsAligned(m.Slice(), VectorAlignment))

	for i := range m.Len() {
		m.Set(i, float32(i)*0.5)
	}
	v := m.VectorAt(0)
	assert.Equal(t, []float32{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}, v.Data())
	assert.Equal(t, float32(1.5), m.At(3))
}

func TestMemoryN(t *testing.T) {
	m := NewMemoryN[int16, Reg128](10)
	require.Equal(t, 16, m.Len(), "rounded up to whole vectors")
	require.Equal(t, 2, m.VectorsCount())

	m.SetVectorAt(1, IndexesFromZero[int16, Reg128]())
	m.SetVectorAt(0, Broadcast[int16, Reg128](-1))
	assert.Equal(t, IndexesFromZero[int16, Reg128](), m.VectorAt(1))
	assert.Equal(t, int16(-1), m.At(7))
	assert.Equal(t, int16(0), m.At(8))

	assert.Equal(t, 0, NewMemoryN[float64, Reg512](0).Len())
	assert.Panics(t, func() { NewMemoryN[float64, Reg512](-1) })
}

func TestMaskLoadStore(t *testing.T) {
	src := []float32{1, 2, 3}
	mask := FirstN[float32, Reg128](3)

	// src is shorter than a vector; the masked-off lane is never read.
	v := MaskLoad(mask, src)
	assert.Equal(t, []float32{1, 2, 3, 0}, v.Data())

	dst := []float32{9, 9, 9}
	MaskStore(mask, Add(v, v), dst)
	assert.Equal(t, []float32{2, 4, 6}, dst)
}

func TestBlendedStore(t *testing.T) {
	dst := []int32{1, 2, 3, 4}
	BlendedStore(Broadcast[int32, Reg128](0), FirstN[int32, Reg128](2).Not(), dst)
	assert.Equal(t, []int32{1, 2, 0, 0}, dst)
}
