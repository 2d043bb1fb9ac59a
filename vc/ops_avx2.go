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

//go:build amd64 && goexperiment.simd

package vc

import "simd/archsimd"

// AVX2 backends for the 256-bit vectors of float32, float64 and int32 lanes.
// Other lane types keep the portable backend.

func init() {
	if lvl := CurrentLevel(); lvl != DispatchAVX2 && lvl != DispatchAVX512 {
		return
	}
	Install[float32, Reg256](avx2F32{})
	Install[float64, Reg256](avx2F64{})
	Install[int32, Reg256](avx2I32{})
}

func loadF32x8(r *Reg256) archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(regLanes[float32](r))
}

func loadF64x4(r *Reg256) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(regLanes[float64](r))
}

func loadI32x8(r *Reg256) archsimd.Int32x8 {
	return archsimd.LoadInt32x8Slice(regLanes[int32](r))
}

type avx2F32 struct{}

func (avx2F32) Name() string { return "avx2" }

func (avx2F32) Add(a, b Reg256) (out Reg256) {
	loadF32x8(&a).Add(loadF32x8(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx2F32) Sub(a, b Reg256) (out Reg256) {
	loadF32x8(&a).Sub(loadF32x8(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx2F32) Mul(a, b Reg256) (out Reg256) {
	loadF32x8(&a).Mul(loadF32x8(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx2F32) Div(a, b Reg256) (out Reg256) {
	loadF32x8(&a).Div(loadF32x8(&b)).StoreSlice(regLanes[float32](&out))
	return out
}

func (avx2F32) Compare(op CmpOp, a, b Reg256) uint64 {
	va, vb := loadF32x8(&a), loadF32x8(&b)
	var m archsimd.Mask32x8
	switch op {
	case CmpEqual:
		m = va.Equal(vb)
	case CmpNotEqual:
		m = va.NotEqual(vb)
	case CmpLess:
		m = va.Less(vb)
	case CmpLessEqual:
		m = va.LessEqual(vb)
	case CmpGreater:
		m = va.Greater(vb)
	default:
		m = va.GreaterEqual(vb)
	}
	return uint64(m.ToBits())
}

func (avx2F32) Blend(dst, src Reg256, mask uint64) Reg256 {
	loadF32x8(&src).Merge(loadF32x8(&dst), archsimd.Mask32x8FromBits(uint8(mask))).StoreSlice(regLanes[float32](&dst))
	return dst
}

type avx2F64 struct{}

func (avx2F64) Name() string { return "avx2" }

func (avx2F64) Add(a, b Reg256) (out Reg256) {
	loadF64x4(&a).Add(loadF64x4(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx2F64) Sub(a, b Reg256) (out Reg256) {
	loadF64x4(&a).Sub(loadF64x4(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx2F64) Mul(a, b Reg256) (out Reg256) {
	loadF64x4(&a).Mul(loadF64x4(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx2F64) Div(a, b Reg256) (out Reg256) {
	loadF64x4(&a).Div(loadF64x4(&b)).StoreSlice(regLanes[float64](&out))
	return out
}

func (avx2F64) Compare(op CmpOp, a, b Reg256) uint64 {
	va, vb := loadF64x4(&a), loadF64x4(&b)
	var m archsimd.Mask64x4
	switch op {
	case CmpEqual:
		m = va.Equal(vb)
	case CmpNotEqual:
		m = va.NotEqual(vb)
	case CmpLess:
		m = va.Less(vb)
	case CmpLessEqual:
		m = va.LessEqual(vb)
	case CmpGreater:
		m = va.Greater(vb)
	default:
		m = va.GreaterEqual(vb)
	}
	return uint64(m.ToBits())
}

func (avx2F64) Blend(dst, src Reg256, mask uint64) Reg256 {
	loadF64x4(&src).Merge(loadF64x4(&dst), archsimd.Mask64x4FromBits(uint8(mask))).StoreSlice(regLanes[float64](&dst))
	return dst
}

type avx2I32 struct{}

func (avx2I32) Name() string { return "avx2" }

func (avx2I32) Add(a, b Reg256) (out Reg256) {
	loadI32x8(&a).Add(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx2I32) Sub(a, b Reg256) (out Reg256) {
	loadI32x8(&a).Sub(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx2I32) Mul(a, b Reg256) (out Reg256) {
	loadI32x8(&a).Mul(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

// Div has no AVX2 instruction; it keeps Go semantics, including the panic on
// division by zero.
func (avx2I32) Div(a, b Reg256) (out Reg256) {
	dst, x, y := regLanes[int32](&out), regLanes[int32](&a), regLanes[int32](&b)
	for i := range dst {
		dst[i] = x[i] / y[i]
	}
	return out
}

func (avx2I32) Compare(op CmpOp, a, b Reg256) uint64 {
	va, vb := loadI32x8(&a), loadI32x8(&b)
	var bits uint8
	switch op {
	case CmpEqual:
		bits = va.Equal(vb).ToBits()
	case CmpNotEqual:
		bits = ^va.Equal(vb).ToBits()
	case CmpLess:
		bits = va.Less(vb).ToBits()
	case CmpLessEqual:
		bits = ^va.Greater(vb).ToBits()
	case CmpGreater:
		bits = va.Greater(vb).ToBits()
	default:
		bits = ^va.Less(vb).ToBits()
	}
	return uint64(bits)
}

func (avx2I32) Blend(dst, src Reg256, mask uint64) Reg256 {
	loadI32x8(&src).Merge(loadI32x8(&dst), archsimd.Mask32x8FromBits(uint8(mask))).StoreSlice(regLanes[int32](&dst))
	return dst
}

func (avx2I32) And(a, b Reg256) (out Reg256) {
	loadI32x8(&a).And(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx2I32) Or(a, b Reg256) (out Reg256) {
	loadI32x8(&a).Or(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}

func (avx2I32) Xor(a, b Reg256) (out Reg256) {
	loadI32x8(&a).Xor(loadI32x8(&b)).StoreSlice(regLanes[int32](&out))
	return out
}
