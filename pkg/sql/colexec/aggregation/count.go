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
	"github.com/quiverdb/quiver/pkg/vectorize/count"
)

func newCount(typ types.Type) (Aggregation, error) {
	return &countAgg{typ: typ}, nil
}

// countAgg counts non-null argument rows.
type countAgg struct {
	typ types.Type
	cnt int64
}

func (a *countAgg) Reset() {
	a.cnt = 0
}

func (a *countAgg) Type() types.Type {
	return ReturnType(Count, a.typ)
}

func (a *countAgg) Dup() Aggregation {
	return &countAgg{typ: a.typ}
}

func (a *countAgg) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[Count])
	if err != nil {
		return err
	}
	a.cnt += count.NonNull(int(rows), vec.Nsp)
	return nil
}

func (a *countAgg) State() ([]types.Value, error) {
	return []types.Value{types.NewValue(types.T_int64, a.cnt)}, nil
}

func (a *countAgg) Eval() (types.Value, error) {
	return types.NewValue(types.T_int64, a.cnt), nil
}

func newStarCount(typ types.Type) (Aggregation, error) {
	return &starCount{typ: typ}, nil
}

// starCount counts rows, nulls included. It takes no argument column.
type starCount struct {
	typ types.Type
	cnt int64
}

func (a *starCount) Reset() {
	a.cnt = 0
}

func (a *starCount) Type() types.Type {
	return ReturnType(StarCount, a.typ)
}

func (a *starCount) Dup() Aggregation {
	return &starCount{typ: a.typ}
}

func (a *starCount) Fill(_ []*vector.Vector, rows int64) error {
	a.cnt += rows
	return nil
}

func (a *starCount) State() ([]types.Value, error) {
	return []types.Value{types.NewValue(types.T_int64, a.cnt)}, nil
}

func (a *starCount) Eval() (types.Value, error) {
	return types.NewValue(types.T_int64, a.cnt), nil
}
