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

// CmpOp selects the comparison performed by Native.Compare.
type CmpOp int

const (
	CmpEqual CmpOp = iota
	CmpNotEqual
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
)

// String returns the Go operator for op.
func (op CmpOp) String() string {
	switch op {
	case CmpEqual:
		return "=="
	case CmpNotEqual:
		return "!="
	case CmpLess:
		return "<"
	case CmpLessEqual:
		return "<="
	case CmpGreater:
		return ">"
	case CmpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Native is the set of primitive operations a backend supplies for T lanes
// held in R registers. Registers are passed and returned by value, so a call
// through the interface never makes a vector escape to the heap.
//
// Masks are passed as bitsets: bit i set means lane i is active.
type Native[T Lanes, R Register] interface {
	// Name identifies the backend ("portable", "avx2", ...).
	Name() string

	Add(a, b R) R
	Sub(a, b R) R
	Mul(a, b R) R
	// Div follows Go semantics for T, so integer division by zero panics.
	Div(a, b R) R

	// Compare evaluates op on every lane and returns the lanes where it holds.
	Compare(op CmpOp, a, b R) uint64

	// Blend returns dst with every active lane replaced by the same lane of
	// src.
	Blend(dst, src R, mask uint64) R
}

// NativeBits extends Native with the bitwise operations of integer lanes.
type NativeBits[T Integers, R Register] interface {
	Native[T, R]

	And(a, b R) R
	Or(a, b R) R
	Xor(a, b R) R
}

// laneKind identifies a lane type in the backend table.
type laneKind int

const (
	kindFloat32 laneKind = iota
	kindFloat64
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindUint8
	kindUint16
	kindUint32
	kindUint64
	numKinds
)

func kindOf[T Lanes]() laneKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return kindFloat32
	case float64:
		return kindFloat64
	case int8:
		return kindInt8
	case int16:
		return kindInt16
	case int32:
		return kindInt32
	case int64:
		return kindInt64
	case uint8:
		return kindUint8
	case uint16:
		return kindUint16
	case uint32:
		return kindUint32
	default:
		return kindUint64
	}
}

// natives holds the active backend per lane kind and register width.
// It starts out fully portable and is only modified by init functions.
var natives = portableTable()

func portableTable() (t [numKinds][numWidths]any) {
	portableWidth[Reg128](&t)
	portableWidth[Reg256](&t)
	portableWidth[Reg512](&t)
	return t
}

func portableWidth[R Register](t *[numKinds][numWidths]any) {
	w := widthIndex[R]()
	t[kindFloat32][w] = portable[float32, R]{}
	t[kindFloat64][w] = portable[float64, R]{}
	t[kindInt8][w] = portableBits[int8, R]{}
	t[kindInt16][w] = portableBits[int16, R]{}
	t[kindInt32][w] = portableBits[int32, R]{}
	t[kindInt64][w] = portableBits[int64, R]{}
	t[kindUint8][w] = portableBits[uint8, R]{}
	t[kindUint16][w] = portableBits[uint16, R]{}
	t[kindUint32][w] = portableBits[uint32, R]{}
	t[kindUint64][w] = portableBits[uint64, R]{}
}

// Install makes n the backend for T lanes in R registers.
//
// It must only be called from an init function: the backend table is read
// without synchronization. Backends for integer lane types must also
// implement NativeBits.
func Install[T Lanes, R Register](n Native[T, R]) {
	k := kindOf[T]()
	if k != kindFloat32 && k != kindFloat64 {
		if _, ok := any(n).(interface {
			And(a, b R) R
			Or(a, b R) R
			Xor(a, b R) R
		}); !ok {
			panic("vc: integer backend " + n.Name() + " must implement NativeBits")
		}
	}
	natives[k][widthIndex[R]()] = n
}

// nativeFor returns the backend serving Vector[T, R].
func nativeFor[T Lanes, R Register]() Native[T, R] {
	return natives[kindOf[T]()][widthIndex[R]()].(Native[T, R])
}

// bitsFor returns the backend serving the bitwise operations of Vector[T, R].
func bitsFor[T Integers, R Register]() NativeBits[T, R] {
	return natives[kindOf[T]()][widthIndex[R]()].(NativeBits[T, R])
}

// NativeName returns the name of the backend serving Vector[T, R].
func NativeName[T Lanes, R Register]() string {
	return nativeFor[T, R]().Name()
}
