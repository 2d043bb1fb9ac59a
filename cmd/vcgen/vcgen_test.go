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
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFamilies(t *testing.T) {
	fams := Families()
	if len(fams) != len(laneTypes)*len(registers) {
		t.Fatalf("Families: got %d, want %d", len(fams), len(laneTypes)*len(registers))
	}

	tests := []struct {
		name      string
		lanes     int
		indexLane string
		indexReg  string
	}{
		{"Float32x4", 4, "uint32", "Reg128"},
		{"Float32x16", 16, "uint32", "Reg512"},
		{"Float64x2", 2, "uint32", "Reg128"},
		{"Float64x8", 8, "uint32", "Reg256"},
		{"Int8x64", 64, "uint8", "Reg512"},
		{"Uint8x16", 16, "uint8", "Reg128"},
		{"Uint16x16", 16, "uint16", "Reg256"},
		{"Uint64x4", 4, "uint32", "Reg128"},
	}
	byName := make(map[string]Family)
	for _, f := range fams {
		byName[f.Name] = f
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := byName[tt.name]
			if !ok {
				t.Fatalf("family %s not generated", tt.name)
			}
			if f.Lanes != tt.lanes {
				t.Errorf("Lanes = %d, want %d", f.Lanes, tt.lanes)
			}
			if f.IndexLane != tt.indexLane || f.IndexReg != tt.indexReg {
				t.Errorf("Index = %s/%s, want %s/%s", f.IndexLane, f.IndexReg, tt.indexLane, tt.indexReg)
			}
		})
	}
}

func TestNativeFamilies(t *testing.T) {
	var got []string
	for _, nf := range NativeFamilies() {
		got = append(got, nf.Prefix)
	}
	want := "Float Double Short Int Ushort Uint"
	if strings.Join(got, " ") != want {
		t.Errorf("NativeFamilies = %v, want %s", got, want)
	}
}

func TestEmit(t *testing.T) {
	src, err := Emit()
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	if !bytes.HasPrefix(src, []byte("// Code generated by vcgen. DO NOT EDIT.")) {
		t.Errorf("missing generated-code header")
	}
	if _, err := parser.ParseFile(token.NewFileSet(), generatedName, src, 0); err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("format.Source() error = %v", err)
	}
	if !bytes.Equal(formatted, src) {
		t.Errorf("generated code is not gofmt'd")
	}

	for _, f := range Families() {
		for _, suffix := range []string{"", "Mask", "Index", "Memory"} {
			if !bytes.Contains(src, []byte("type "+f.Name+suffix+" = ")) {
				t.Errorf("missing alias %s%s", f.Name, suffix)
			}
		}
	}
	for _, nf := range NativeFamilies() {
		for _, suffix := range []string{"V", "M", "Index", "Memory"} {
			if !bytes.Contains(src, []byte("type "+nf.Prefix+suffix+" = ")) {
				t.Errorf("missing alias %s%s", nf.Prefix, suffix)
			}
		}
	}

	again, err := Emit()
	if err != nil {
		t.Fatalf("second Emit() error = %v", err)
	}
	if !bytes.Equal(src, again) {
		t.Errorf("Emit is not deterministic")
	}
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, generatedName)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"-o", out})
	cmd.SetOut(new(bytes.Buffer))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}

	check := newRootCmd()
	check.SetArgs([]string{"-o", out, "--check"})
	if err := check.Execute(); err != nil {
		t.Errorf("--check on a fresh file: %v", err)
	}

	if err := os.WriteFile(out, []byte("package vc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := newRootCmd()
	stale.SetArgs([]string{"-o", out, "--check"})
	stale.SetErr(new(bytes.Buffer))
	if err := stale.Execute(); err == nil {
		t.Errorf("--check on a stale file succeeded")
	}
}

func TestCommandDocs(t *testing.T) {
	for _, dir := range []string{".", "../vcinfo"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		fset := token.NewFileSet()
		for _, name := range files {
			f, err := parser.ParseFile(fset, name, nil, parser.PackageClauseOnly|parser.ParseComments)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if f.Doc == nil {
				continue
			}
			if text := f.Doc.Text(); !strings.HasPrefix(text, "Command ") {
				t.Errorf("%s: package doc starts with %q, want a Command description", name, strings.SplitN(text, "\n", 2)[0])
			}
		}
	}
}
