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

import "fmt"

//go:generate go run ../cmd/vcgen -o family_gen.go

// FamilyInfo describes one named vector type and the backend serving it.
type FamilyInfo struct {
	Name    string // type name, e.g. "Float32x8"
	Lane    string // lane type, e.g. "float32"
	Width   string // register width, e.g. "256bit"
	Size    int    // number of lanes
	Backend string // Native backend name
}

func familyInfo[T Lanes, R Register](name string) FamilyInfo {
	var zero T
	return FamilyInfo{
		Name:    name,
		Lane:    fmt.Sprintf("%T", zero),
		Width:   WidthName[R](),
		Size:    LanesOf[T, R](),
		Backend: NativeName[T, R](),
	}
}
