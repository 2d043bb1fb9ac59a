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

import "math/bits"

// AlignmentFlags tells Load and Store whether the memory they touch starts on
// a register-width boundary.
type AlignmentFlags int

const (
	// Aligned promises that the first element is aligned to the register
	// width of the vector. Breaking the promise is undefined behavior; it is
	// only detected in vccheck builds.
	Aligned AlignmentFlags = iota

	// Unaligned makes no assumption about the address. It may cost extra
	// instructions on some backends.
	Unaligned
)

// String returns "aligned" or "unaligned".
func (f AlignmentFlags) String() string {
	switch f {
	case Aligned:
		return "aligned"
	case Unaligned:
		return "unaligned"
	default:
		return "unknown"
	}
}

// VectorAlignment is the alignment in bytes of buffers returned by
// AllocAligned and Memory. It satisfies the Aligned contract for every
// register width.
const VectorAlignment = 64

// numWidths is the number of supported register widths.
const numWidths = 3

// widthIndex maps Reg128, Reg256, Reg512 to 0, 1, 2.
func widthIndex[R Register]() int {
	return bits.TrailingZeros(uint(RegisterBytes[R]() / 16))
}

// WidthName returns a human-readable name for R ("128bit", "256bit", "512bit").
func WidthName[R Register]() string {
	switch RegisterBytes[R]() {
	case 16:
		return "128bit"
	case 32:
		return "256bit"
	default:
		return "512bit"
	}
}
