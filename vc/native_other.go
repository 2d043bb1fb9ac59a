//go:build !amd64

package vc

// NativeReg is the register type matching the target's usual SIMD width.
type NativeReg = Reg128
