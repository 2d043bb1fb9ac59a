//go:build arm64

package vc

import "golang.org/x/sys/cpu"

func detectCPU() (DispatchLevel, int) {
	// ASIMD is part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		return DispatchNEON, 16
	}
	return DispatchScalar, 16
}
