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
	"fmt"

	"github.com/samber/lo"
)

// laneType describes one Go type that can be stored in vector lanes.
type laneType struct {
	Go    string // Go type name, e.g. "float32"
	Bytes int    // size in bytes
	Index string // lane type of the matching index vector
	Alias string // prefix of the native-width aliases, "" if none
}

// Index vectors use unsigned lanes so that every element addressable by the
// lane width is reachable; 8-bit lanes can index a full 256-entry table.
var laneTypes = []laneType{
	{Go: "float32", Bytes: 4, Index: "uint32", Alias: "Float"},
	{Go: "float64", Bytes: 8, Index: "uint32", Alias: "Double"},
	{Go: "int8", Bytes: 1, Index: "uint8"},
	{Go: "int16", Bytes: 2, Index: "uint16", Alias: "Short"},
	{Go: "int32", Bytes: 4, Index: "uint32", Alias: "Int"},
	{Go: "int64", Bytes: 8, Index: "uint32"},
	{Go: "uint8", Bytes: 1, Index: "uint8"},
	{Go: "uint16", Bytes: 2, Index: "uint16", Alias: "Ushort"},
	{Go: "uint32", Bytes: 4, Index: "uint32", Alias: "Uint"},
	{Go: "uint64", Bytes: 8, Index: "uint32"},
}

// register describes one supported register width.
type register struct {
	Go    string
	Bytes int
}

var registers = []register{
	{Go: "Reg128", Bytes: 16},
	{Go: "Reg256", Bytes: 32},
	{Go: "Reg512", Bytes: 64},
}

// Family is one fixed-width vector type and its companions.
type Family struct {
	Name      string // e.g. "Float32x8"
	Lane      string
	Reg       string
	Bits      int
	Lanes     int
	IndexLane string
	IndexReg  string
}

// NativeFamily is a vector type sized to the target's native register.
type NativeFamily struct {
	Prefix    string // e.g. "Float"
	Lane      string
	IndexLane string
}

// Families returns every lane type in every register width, lane types in
// declaration order and widths from narrow to wide.
func Families() []Family {
	return lo.FlatMap(laneTypes, func(lt laneType, _ int) []Family {
		return lo.Map(registers, func(r register, _ int) Family {
			lanes := r.Bytes / lt.Bytes
			return Family{
				Name:      fmt.Sprintf("%sx%d", title(lt.Go), lanes),
				Lane:      lt.Go,
				Reg:       r.Go,
				Bits:      r.Bytes * 8,
				Lanes:     lanes,
				IndexLane: lt.Index,
				IndexReg:  indexRegister(lt.Index, lanes),
			}
		})
	})
}

// NativeFamilies returns the lane types with native-width aliases.
func NativeFamilies() []NativeFamily {
	named := lo.Filter(laneTypes, func(lt laneType, _ int) bool { return lt.Alias != "" })
	return lo.Map(named, func(lt laneType, _ int) NativeFamily {
		return NativeFamily{Prefix: lt.Alias, Lane: lt.Go, IndexLane: lt.Index}
	})
}

// indexRegister returns the narrowest register holding lanes index lanes.
func indexRegister(index string, lanes int) string {
	lt, ok := lo.Find(laneTypes, func(lt laneType) bool { return lt.Go == index })
	if !ok {
		panic("vcgen: unknown index type " + index)
	}
	r, ok := lo.Find(registers, func(r register) bool { return r.Bytes >= lanes*lt.Bytes })
	if !ok {
		panic(fmt.Sprintf("vcgen: no register holds %d %s lanes", lanes, index))
	}
	return r.Go
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
