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
	"context"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vectorize/count"
	"github.com/quiverdb/quiver/pkg/vectorize/sum"
)

func newSum(typ types.Type) (Aggregation, error) {
	switch typ.Oid {
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return &intSum{typ: typ}, nil
	case types.T_uint8, types.T_uint16, types.T_uint32, types.T_uint64:
		return &uintSum{typ: typ}, nil
	case types.T_float32, types.T_float64:
		return &floatSum{typ: typ}, nil
	}
	return nil, qerr.NewType(context.Background(), "sum is not defined on %s", typ.Oid)
}

type intSum struct {
	typ types.Type
	sum int64
	cnt int64
}

func (a *intSum) Reset() {
	a.sum = 0
	a.cnt = 0
}

func (a *intSum) Type() types.Type {
	return ReturnType(Sum, a.typ)
}

func (a *intSum) Dup() Aggregation {
	return &intSum{typ: a.typ}
}

func (a *intSum) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[Sum])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_int8:
		a.sum += sum.Sum[int8, int64](vector.MustFixedCol[int8](vec), vec.Nsp)
	case types.T_int16:
		a.sum += sum.Sum[int16, int64](vector.MustFixedCol[int16](vec), vec.Nsp)
	case types.T_int32:
		a.sum += sum.Sum[int32, int64](vector.MustFixedCol[int32](vec), vec.Nsp)
	case types.T_int64:
		a.sum += sum.Sum[int64, int64](vector.MustFixedCol[int64](vec), vec.Nsp)
	default:
		return qerr.NewEval(context.Background(), "sum fed a %s column", vec.Typ.Oid)
	}
	a.cnt += count.NonNull(int(rows), vec.Nsp)
	return nil
}

func (a *intSum) State() ([]types.Value, error) {
	v, err := a.Eval()
	if err != nil {
		return nil, err
	}
	return []types.Value{v}, nil
}

func (a *intSum) Eval() (types.Value, error) {
	if a.cnt == 0 {
		return types.NewNullValue(types.T_int64), nil
	}
	return types.NewValue(types.T_int64, a.sum), nil
}

type uintSum struct {
	typ types.Type
	sum uint64
	cnt int64
}

func (a *uintSum) Reset() {
	a.sum = 0
	a.cnt = 0
}

func (a *uintSum) Type() types.Type {
	return ReturnType(Sum, a.typ)
}

func (a *uintSum) Dup() Aggregation {
	return &uintSum{typ: a.typ}
}

func (a *uintSum) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[Sum])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_uint8:
		a.sum += sum.Sum[uint8, uint64](vector.MustFixedCol[uint8](vec), vec.Nsp)
	case types.T_uint16:
		a.sum += sum.Sum[uint16, uint64](vector.MustFixedCol[uint16](vec), vec.Nsp)
	case types.T_uint32:
		a.sum += sum.Sum[uint32, uint64](vector.MustFixedCol[uint32](vec), vec.Nsp)
	case types.T_uint64:
		a.sum += sum.Sum[uint64, uint64](vector.MustFixedCol[uint64](vec), vec.Nsp)
	default:
		return qerr.NewEval(context.Background(), "sum fed a %s column", vec.Typ.Oid)
	}
	a.cnt += count.NonNull(int(rows), vec.Nsp)
	return nil
}

func (a *uintSum) State() ([]types.Value, error) {
	v, err := a.Eval()
	if err != nil {
		return nil, err
	}
	return []types.Value{v}, nil
}

func (a *uintSum) Eval() (types.Value, error) {
	if a.cnt == 0 {
		return types.NewNullValue(types.T_uint64), nil
	}
	return types.NewValue(types.T_uint64, a.sum), nil
}

type floatSum struct {
	typ types.Type
	sum float64
	cnt int64
}

func (a *floatSum) Reset() {
	a.sum = 0
	a.cnt = 0
}

func (a *floatSum) Type() types.Type {
	return ReturnType(Sum, a.typ)
}

func (a *floatSum) Dup() Aggregation {
	return &floatSum{typ: a.typ}
}

func (a *floatSum) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[Sum])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_float32:
		a.sum += sum.Sum[float32, float64](vector.MustFixedCol[float32](vec), vec.Nsp)
	case types.T_float64:
		a.sum += sum.Sum[float64, float64](vector.MustFixedCol[float64](vec), vec.Nsp)
	default:
		return qerr.NewEval(context.Background(), "sum fed a %s column", vec.Typ.Oid)
	}
	a.cnt += count.NonNull(int(rows), vec.Nsp)
	return nil
}

func (a *floatSum) State() ([]types.Value, error) {
	v, err := a.Eval()
	if err != nil {
		return nil, err
	}
	return []types.Value{v}, nil
}

func (a *floatSum) Eval() (types.Value, error) {
	if a.cnt == 0 {
		return types.NewNullValue(types.T_float64), nil
	}
	return types.NewValue(types.T_float64, a.sum), nil
}

// oneArg checks the single-argument contract shared by most functions.
func oneArg(vecs []*vector.Vector, name string) (*vector.Vector, error) {
	if len(vecs) != 1 || vecs[0] == nil {
		return nil, qerr.NewEval(context.Background(), "%s expects exactly one argument column, got %d", name, len(vecs))
	}
	return vecs[0], nil
}
