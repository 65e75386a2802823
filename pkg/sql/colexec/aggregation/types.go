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

package aggregation

import (
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
)

const (
	Avg = iota
	Max
	Min
	Sum
	Count
	StarCount
	ApproxCountDistinct
)

var AggName = [...]string{
	Avg:                 "avg",
	Max:                 "max",
	Min:                 "min",
	Sum:                 "sum",
	Count:               "count",
	StarCount:           "starcount",
	ApproxCountDistinct: "approx_count_distinct",
}

// Aggregation is one group's running state of an aggregate function.
// Repeated Fill calls must be equivalent to a single Fill over the
// concatenation of the inputs, so partial results from any batch split
// merge to the same answer.
type Aggregation interface {
	// Reset clears the state for reuse.
	Reset()
	// Type is the type of the finalized result.
	Type() types.Type
	// Dup returns a fresh accumulator of the same function and type.
	Dup() Aggregation
	// Fill accumulates rows of the argument columns.
	Fill(vecs []*vector.Vector, rows int64) error
	// State returns the partial state tuple to hand to the merge stage.
	State() ([]types.Value, error)
	// Eval finalizes the accumulator to its result value.
	Eval() (types.Value, error)
}

// Extend is one aggregate expression of a query: a function applied to
// argument columns, aliased into the output schema.
type Extend struct {
	// Name is the aggregate function name, a registry key.
	Name string
	// Alias is the output column name.
	Alias string
	// Args are the argument column names resolved against gathered
	// batches, empty for starcount.
	Args []string
}

var sumReturnTypes = map[types.T]types.Type{
	types.T_int8:    {Oid: types.T_int64, Size: 8},
	types.T_int16:   {Oid: types.T_int64, Size: 8},
	types.T_int32:   {Oid: types.T_int64, Size: 8},
	types.T_int64:   {Oid: types.T_int64, Size: 8},
	types.T_uint8:   {Oid: types.T_uint64, Size: 8},
	types.T_uint16:  {Oid: types.T_uint64, Size: 8},
	types.T_uint32:  {Oid: types.T_uint64, Size: 8},
	types.T_uint64:  {Oid: types.T_uint64, Size: 8},
	types.T_float32: {Oid: types.T_float64, Size: 8},
	types.T_float64: {Oid: types.T_float64, Size: 8},
}

// ReturnType gives the finalized result type of an aggregate over an
// input of the given type.
func ReturnType(op int, typ types.Type) types.Type {
	switch op {
	case Avg:
		return types.New(types.T_float64)
	case Max, Min:
		return typ
	case Sum:
		return sumReturnTypes[typ.Oid]
	case Count, StarCount, ApproxCountDistinct:
		return types.New(types.T_int64)
	}
	return types.Type{}
}
