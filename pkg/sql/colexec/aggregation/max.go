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
	"bytes"
	"context"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vectorize/max"
)

func newMax(typ types.Type) (Aggregation, error) {
	switch typ.Oid {
	case types.T_any:
		return nil, qerr.NewType(context.Background(), "max is not defined on %s", typ.Oid)
	}
	return &maxAgg{typ: typ, res: types.NewNullValue(typ.Oid)}, nil
}

type maxAgg struct {
	typ types.Type
	res types.Value
}

func (a *maxAgg) Reset() {
	a.res = types.NewNullValue(a.typ.Oid)
}

func (a *maxAgg) Type() types.Type {
	return ReturnType(Max, a.typ)
}

func (a *maxAgg) Dup() Aggregation {
	return &maxAgg{typ: a.typ, res: types.NewNullValue(a.typ.Oid)}
}

func fillMax[T types.OrderedT](a *maxAgg, vec *vector.Vector) {
	if v, ok := max.Max[T](vector.MustFixedCol[T](vec), vec.Nsp); ok {
		if a.res.IsNull || v > a.res.V.(T) {
			a.res = types.NewValue(a.typ.Oid, v)
		}
	}
}

func (a *maxAgg) Fill(vecs []*vector.Vector, _ int64) error {
	vec, err := oneArg(vecs, AggName[Max])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_int8:
		fillMax[int8](a, vec)
	case types.T_int16:
		fillMax[int16](a, vec)
	case types.T_int32:
		fillMax[int32](a, vec)
	case types.T_int64:
		fillMax[int64](a, vec)
	case types.T_uint8:
		fillMax[uint8](a, vec)
	case types.T_uint16:
		fillMax[uint16](a, vec)
	case types.T_uint32:
		fillMax[uint32](a, vec)
	case types.T_uint64:
		fillMax[uint64](a, vec)
	case types.T_float32:
		fillMax[float32](a, vec)
	case types.T_float64:
		fillMax[float64](a, vec)
	case types.T_varchar, types.T_varbinary:
		if v, ok := max.MaxBytes(vector.MustBytesCol(vec), vec.Nsp); ok {
			if a.res.IsNull || bytes.Compare(v, a.res.V.([]byte)) > 0 {
				cp := make([]byte, len(v))
				copy(cp, v)
				a.res = types.NewValue(a.typ.Oid, cp)
			}
		}
	default:
		return qerr.NewEval(context.Background(), "max fed a %s column", vec.Typ.Oid)
	}
	return nil
}

func (a *maxAgg) State() ([]types.Value, error) {
	return []types.Value{a.res}, nil
}

func (a *maxAgg) Eval() (types.Value, error) {
	return a.res, nil
}
