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

package vector

import (
	"strings"

	"github.com/quiverdb/quiver/pkg/container/nulls"
	"github.com/quiverdb/quiver/pkg/container/types"
)

// Vector represents one column. Fixed-width types store a typed slice
// in Col; varlen types store a *types.Bytes.
type Vector struct {
	Typ types.Type
	Col any
	Nsp *nulls.Nulls
}

func New(typ types.Type) *Vector {
	v := &Vector{Typ: typ, Nsp: nulls.New()}
	switch typ.Oid {
	case types.T_int8:
		v.Col = []int8{}
	case types.T_int16:
		v.Col = []int16{}
	case types.T_int32:
		v.Col = []int32{}
	case types.T_int64:
		v.Col = []int64{}
	case types.T_uint8:
		v.Col = []uint8{}
	case types.T_uint16:
		v.Col = []uint16{}
	case types.T_uint32:
		v.Col = []uint32{}
	case types.T_uint64:
		v.Col = []uint64{}
	case types.T_float32:
		v.Col = []float32{}
	case types.T_float64:
		v.Col = []float64{}
	case types.T_varchar, types.T_varbinary:
		v.Col = new(types.Bytes)
	}
	return v
}

func (v *Vector) Length() int {
	if col, ok := v.Col.(*types.Bytes); ok {
		return col.Len()
	}
	switch col := v.Col.(type) {
	case []int8:
		return len(col)
	case []int16:
		return len(col)
	case []int32:
		return len(col)
	case []int64:
		return len(col)
	case []uint8:
		return len(col)
	case []uint16:
		return len(col)
	case []uint32:
		return len(col)
	case []uint64:
		return len(col)
	case []float32:
		return len(col)
	case []float64:
		return len(col)
	}
	return 0
}

// MustFixedCol returns the typed slice of a fixed-width vector.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	return v.Col.([]T)
}

// MustBytesCol returns the storage of a varlen vector.
func MustBytesCol(v *Vector) *types.Bytes {
	return v.Col.(*types.Bytes)
}

// AppendFixed appends values to a fixed-width vector.
func AppendFixed[T types.FixedSizeT](v *Vector, vals ...T) {
	v.Col = append(v.Col.([]T), vals...)
}

// AppendBytes appends values to a varlen vector.
func AppendBytes(v *Vector, vals ...[]byte) {
	v.Col.(*types.Bytes).Append(vals...)
}

// AppendNull appends one null row: the zero value plus a null mark.
func AppendNull(v *Vector) {
	row := int64(v.Length())
	switch col := v.Col.(type) {
	case *types.Bytes:
		col.Append([]byte{})
	case []int8:
		v.Col = append(col, 0)
	case []int16:
		v.Col = append(col, 0)
	case []int32:
		v.Col = append(col, 0)
	case []int64:
		v.Col = append(col, 0)
	case []uint8:
		v.Col = append(col, 0)
	case []uint16:
		v.Col = append(col, 0)
	case []uint32:
		v.Col = append(col, 0)
	case []uint64:
		v.Col = append(col, 0)
	case []float32:
		v.Col = append(col, 0)
	case []float64:
		v.Col = append(col, 0)
	}
	v.Nsp.Add(row)
}

// GetValue extracts row i as a typed scalar.
func (v *Vector) GetValue(i int64) types.Value {
	if v.Nsp.Contains(i) {
		return types.NewNullValue(v.Typ.Oid)
	}
	switch col := v.Col.(type) {
	case *types.Bytes:
		b := col.Get(i)
		cp := make([]byte, len(b))
		copy(cp, b)
		return types.NewValue(v.Typ.Oid, cp)
	case []int8:
		return types.NewValue(v.Typ.Oid, col[i])
	case []int16:
		return types.NewValue(v.Typ.Oid, col[i])
	case []int32:
		return types.NewValue(v.Typ.Oid, col[i])
	case []int64:
		return types.NewValue(v.Typ.Oid, col[i])
	case []uint8:
		return types.NewValue(v.Typ.Oid, col[i])
	case []uint16:
		return types.NewValue(v.Typ.Oid, col[i])
	case []uint32:
		return types.NewValue(v.Typ.Oid, col[i])
	case []uint64:
		return types.NewValue(v.Typ.Oid, col[i])
	case []float32:
		return types.NewValue(v.Typ.Oid, col[i])
	case []float64:
		return types.NewValue(v.Typ.Oid, col[i])
	}
	return types.NewNullValue(v.Typ.Oid)
}

func takeFixed[T types.FixedSizeT](col []T, sels []int64) []T {
	r := make([]T, len(sels))
	for i, sel := range sels {
		r[i] = col[sel]
	}
	return r
}

// Take returns a new vector holding exactly the rows picked by sels,
// in sels order. The result does not alias v.
func (v *Vector) Take(sels []int64) *Vector {
	w := &Vector{Typ: v.Typ, Nsp: v.Nsp.Filter(sels)}
	switch col := v.Col.(type) {
	case *types.Bytes:
		w.Col = col.Window(sels)
	case []int8:
		w.Col = takeFixed(col, sels)
	case []int16:
		w.Col = takeFixed(col, sels)
	case []int32:
		w.Col = takeFixed(col, sels)
	case []int64:
		w.Col = takeFixed(col, sels)
	case []uint8:
		w.Col = takeFixed(col, sels)
	case []uint16:
		w.Col = takeFixed(col, sels)
	case []uint32:
		w.Col = takeFixed(col, sels)
	case []uint64:
		w.Col = takeFixed(col, sels)
	case []float32:
		w.Col = takeFixed(col, sels)
	case []float64:
		w.Col = takeFixed(col, sels)
	}
	return w
}

func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(v.Typ.String())
	sb.WriteString("[")
	n := v.Length()
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.GetValue(int64(i)).String())
	}
	sb.WriteString("]")
	return sb.String()
}
