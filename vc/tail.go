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

// AlignedSize rounds n up to a multiple of the lane count of Vector[T, R].
func AlignedSize[T Lanes, R Register](n int) int {
	size := LanesOf[T, R]()
	return (n + size - 1) / size * size
}

// TailMask creates a mask with the first count lanes active.
// It is FirstN under the name used for remainder handling.
func TailMask[T Lanes, R Register](count int) Mask[T, R] {
	return FirstN[T, R](count)
}

// ProcessWithTail is a helper for processing arrays with vectors that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of Size
//
// Example:
//
//	vc.ProcessWithTail[float32, vc.Reg256](len(data),
//	    func(offset int) {
//	        v := vc.Load[float32, vc.Reg256](data[offset:], vc.Unaligned)
//	        vc.Add(v, v).Store(output[offset:], vc.Unaligned)
//	    },
//	    func(offset, count int) {
//	        mask := vc.TailMask[float32, vc.Reg256](count)
//	        v := vc.MaskLoad(mask, data[offset:])
//	        vc.MaskStore(mask, vc.Add(v, v), output[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes, R Register](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := LanesOf[T, R]()

	fullVectors := size / n
	for i := range fullVectors {
		fullFn(i * n)
	}

	if remaining := size % n; remaining > 0 {
		tailFn(fullVectors*n, remaining)
	}
}
