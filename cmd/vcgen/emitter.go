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

package main

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// generatedName is the file name passed to the formatter.
const generatedName = "family_gen.go"

// Emit returns the formatted source of the family aliases for package vc.
func Emit() ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by vcgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package vc\n\n")

	for _, f := range Families() {
		fmt.Fprintf(&buf, "// %s holds %d %s lanes in a %d-bit register.\n", f.Name, f.Lanes, f.Lane, f.Bits)
		fmt.Fprintf(&buf, "type %s = Vector[%s, %s]\n", f.Name, f.Lane, f.Reg)
		fmt.Fprintf(&buf, "type %sMask = Mask[%s, %s]\n", f.Name, f.Lane, f.Reg)
		fmt.Fprintf(&buf, "type %sIndex = Vector[%s, %s]\n", f.Name, f.IndexLane, f.IndexReg)
		fmt.Fprintf(&buf, "type %sMemory = Memory[%s, %s]\n\n", f.Name, f.Lane, f.Reg)
	}

	for _, nf := range NativeFamilies() {
		fmt.Fprintf(&buf, "// %sV holds %s lanes in the target's native register.\n", nf.Prefix, nf.Lane)
		fmt.Fprintf(&buf, "type %sV = Vector[%s, NativeReg]\n", nf.Prefix, nf.Lane)
		fmt.Fprintf(&buf, "type %sM = Mask[%s, NativeReg]\n", nf.Prefix, nf.Lane)
		fmt.Fprintf(&buf, "type %sIndex = Vector[%s, NativeReg]\n", nf.Prefix, nf.IndexLane)
		fmt.Fprintf(&buf, "type %sMemory = Memory[%s, NativeReg]\n\n", nf.Prefix, nf.Lane)
	}

	fmt.Fprintf(&buf, "// Families describes every fixed-width vector type of the package.\n")
	fmt.Fprintf(&buf, "func Families() []FamilyInfo {\n")
	fmt.Fprintf(&buf, "\treturn []FamilyInfo{\n")
	for _, f := range Families() {
		fmt.Fprintf(&buf, "\t\tfamilyInfo[%s, %s](%q),\n", f.Lane, f.Reg, f.Name)
	}
	fmt.Fprintf(&buf, "\t}\n}\n")

	formatted, err := imports.Process(generatedName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}
