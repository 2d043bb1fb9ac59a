//go:build amd64 && goexperiment.simd

package vc

import "simd/archsimd"

func detectCPU() (DispatchLevel, int) {
	switch {
	case archsimd.X86.AVX512():
		return DispatchAVX512, 64
	case archsimd.X86.AVX2():
		return DispatchAVX2, 32
	default:
		// AVX without AVX2 is treated as SSE2.
		return DispatchSSE2, 16
	}
}
