//go:build amd64

package vc

// NativeReg is the register type matching the target's usual SIMD width.
// On amd64 that is AVX2's 256 bits.
type NativeReg = Reg256
