// Package vc provides portable fixed-width SIMD vectors with per-lane masks.
//
// A Vector[T, R] holds Size lanes of T packed into one register of type R
// (Reg128, Reg256 or Reg512), so the lane count is part of the type: mixing
// vectors of different widths is a compile error. Comparisons produce a
// Mask[T, R], and masks drive every conditional operation: masked writes
// through Vector.Masked, masked loads and stores, and masked gather/scatter.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vc/vc"
//
//	v := vc.Zero[float32, vc.Reg128]()               // [0 0 0 0]
//	idx := vc.IndexesFromZero[int32, vc.Reg128]()    // [0 1 2 3]
//	m := vc.CastMask[float32](vc.Less(idx, vc.Broadcast[int32, vc.Reg128](2)))
//	v.Masked(m).SetScalar(1)                         // [1 1 0 0]
//
// The arithmetic itself is delegated to a Native backend registered per lane
// type and register width. A portable backend is always installed; faster
// ones replace it at init time when the CPU supports them.
//
// Several operations are undefined by contract rather than checked: loading
// or storing with Aligned from a misaligned slice, and gathering or
// scattering through an invalid index in an active lane. Build with
// -tags vccheck to turn those contracts into assertions.
package vc

import "unsafe"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
//
// The set is closed (no ~ approximations) because backends are looked up by
// the exact lane type.
type Lanes interface {
	Floats | Integers
}

// Indexes is a constraint for the lane types accepted as gather/scatter
// indices.
type Indexes interface {
	Integers
}

// Reg128 is the storage of a 128-bit register (SSE2, NEON).
type Reg128 [2]uint64

// Reg256 is the storage of a 256-bit register (AVX2).
type Reg256 [4]uint64

// Reg512 is the storage of a 512-bit register (AVX-512).
type Reg512 [8]uint64

// Register is a constraint for the supported register widths.
type Register interface {
	Reg128 | Reg256 | Reg512
}

// maxLanes is the lane count of the widest vector: int8 lanes in a Reg512.
// Masks store one bit per lane in a uint64.
const maxLanes = 64

// Vector is a fixed-width vector of LanesOf[T, R]() lanes of type T.
//
// The zero value is a valid vector whose contents callers must treat as
// unspecified; use Zero to request zeroed lanes.
type Vector[T Lanes, R Register] struct {
	reg R
}

// LanesOf returns the number of T lanes in a register of type R.
//
// For example LanesOf[float32, Reg256]() is 8 and LanesOf[float64, Reg128]()
// is 2.
func LanesOf[T Lanes, R Register]() int {
	var r R
	var t T
	return int(unsafe.Sizeof(r) / unsafe.Sizeof(t))
}

// RegisterBytes returns the width of R in bytes.
func RegisterBytes[R Register]() int {
	var r R
	return int(unsafe.Sizeof(r))
}

// Size returns the number of lanes in v.
func (v Vector[T, R]) Size() int {
	return LanesOf[T, R]()
}

// lanes views the register as a slice of Size lanes.
func (v *Vector[T, R]) lanes() []T {
	return regLanes[T](&v.reg)
}

// regLanes views r as a slice of T lanes. The slice aliases r.
func regLanes[T Lanes, R Register](r *R) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(r)), LanesOf[T, R]())
}

// Lane returns lane i. The index is not validated beyond Go's own bounds
// check; i must be in [0, Size).
func (v Vector[T, R]) Lane(i int) T {
	checkLane(i, LanesOf[T, R]())
	return v.lanes()[i]
}

// SetLane overwrites lane i with x.
//
// Writing lanes one at a time defeats the purpose of a vector type; prefer
// building values in a Memory and loading them, or whole-vector operations.
func (v *Vector[T, R]) SetLane(i int, x T) {
	checkLane(i, LanesOf[T, R]())
	v.lanes()[i] = x
}

// Data returns a copy of the lanes of v.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vector[T, R]) Data() []T {
	out := make([]T, LanesOf[T, R]())
	copy(out, v.lanes())
	return out
}
