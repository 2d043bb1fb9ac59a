package vc

import (
	"fmt"
	"unsafe"
)

// The assertions below compile to nothing unless the module is built with
// -tags vccheck.

func checkLane(i, n int) {
	if checked && (i < 0 || i >= n) {
		panic(fmt.Sprintf("vc: lane %d out of range [0, %d)", i, n))
	}
}

func checkAligned[T Lanes](p []T, align int, flags AlignmentFlags) {
	if !checked || flags != Aligned || len(p) == 0 {
		return
	}
	if addr := uintptr(unsafe.Pointer(&p[0])); addr%uintptr(align) != 0 {
		panic(fmt.Sprintf("vc: Aligned access at %#x is not %d-byte aligned", addr, align))
	}
}

func checkIndexes[I Indexes](idx []I, active uint64, limit int) {
	if !checked {
		return
	}
	for i, x := range idx {
		if active&(1<<uint(i)) != 0 && (x < 0 || uint64(x) >= uint64(limit)) {
			panic(fmt.Sprintf("vc: active lane %d has index %d outside [0, %d)", i, x, limit))
		}
	}
}
