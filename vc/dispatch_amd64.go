//go:build amd64 && !goexperiment.simd

package vc

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd no native backend can be built, but the level is
// still reported from x/sys/cpu so that tools can describe the host.
func detectCPU() (DispatchLevel, int) {
	switch {
	case cpu.X86.HasAVX512F:
		return DispatchAVX512, 64
	case cpu.X86.HasAVX2:
		return DispatchAVX2, 32
	default:
		return DispatchSSE2, 16
	}
}
