// Copyright 2026 The Quiver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import "fmt"

// T is the type id of a column.
type T uint8

const (
	T_any T = iota

	// fixed-width numerics
	T_int8
	T_int16
	T_int32
	T_int64
	T_uint8
	T_uint16
	T_uint32
	T_uint64
	T_float32
	T_float64

	// variable-length
	T_varchar
	T_varbinary
)

// Type describes a column type.
type Type struct {
	Oid T
	// Size is the byte width of one value, -1 for variable-length types.
	Size int32
}

func New(oid T) Type {
	return Type{Oid: oid, Size: int32(oid.FixedLength())}
}

func (t Type) String() string {
	return t.Oid.String()
}

// FixedLength returns the byte width of the type, -1 for varlen types.
func (t T) FixedLength() int {
	switch t {
	case T_int8, T_uint8:
		return 1
	case T_int16, T_uint16:
		return 2
	case T_int32, T_uint32, T_float32:
		return 4
	case T_int64, T_uint64, T_float64:
		return 8
	}
	return -1
}

func (t T) IsFixed() bool {
	return t.FixedLength() >= 0
}

func (t T) String() string {
	switch t {
	case T_any:
		return "any"
	case T_int8:
		return "int8"
	case T_int16:
		return "int16"
	case T_int32:
		return "int32"
	case T_int64:
		return "int64"
	case T_uint8:
		return "uint8"
	case T_uint16:
		return "uint16"
	case T_uint32:
		return "uint32"
	case T_uint64:
		return "uint64"
	case T_float32:
		return "float32"
	case T_float64:
		return "float64"
	case T_varchar:
		return "varchar"
	case T_varbinary:
		return "varbinary"
	}
	return fmt.Sprintf("unknown type %d", uint8(t))
}

// TypeOf maps a type name back to its id, the inverse of T.String.
func TypeOf(name string) (T, bool) {
	for t := T_int8; t <= T_varbinary; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return T_any, false
}

// FixedSizeT constrains the Go element types a fixed-width vector can hold.
type FixedSizeT interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// OrderedT constrains the element types with a total order, for min/max.
type OrderedT interface {
	FixedSizeT
}

// Field is a named, typed column of an output schema.
type Field struct {
	Name string
	Typ  Type
}
