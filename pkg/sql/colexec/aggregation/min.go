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
	"github.com/quiverdb/quiver/pkg/vectorize/min"
)

func newMin(typ types.Type) (Aggregation, error) {
	switch typ.Oid {
	case types.T_any:
		return nil, qerr.NewType(context.Background(), "min is not defined on %s", typ.Oid)
	}
	return &minAgg{typ: typ, res: types.NewNullValue(typ.Oid)}, nil
}

type minAgg struct {
	typ types.Type
	res types.Value
}

func (a *minAgg) Reset() {
	a.res = types.NewNullValue(a.typ.Oid)
}

func (a *minAgg) Type() types.Type {
	return ReturnType(Min, a.typ)
}

func (a *minAgg) Dup() Aggregation {
	return &minAgg{typ: a.typ, res: types.NewNullValue(a.typ.Oid)}
}

func fillMin[T types.OrderedT](a *minAgg, vec *vector.Vector) {
	if v, ok := min.Min[T](vector.MustFixedCol[T](vec), vec.Nsp); ok {
		if a.res.IsNull || v < a.res.V.(T) {
			a.res = types.NewValue(a.typ.Oid, v)
		}
	}
}

func (a *minAgg) Fill(vecs []*vector.Vector, _ int64) error {
	vec, err := oneArg(vecs, AggName[Min])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_int8:
		fillMin[int8](a, vec)
	case types.T_int16:
		fillMin[int16](a, vec)
	case types.T_int32:
		fillMin[int32](a, vec)
	case types.T_int64:
		fillMin[int64](a, vec)
	case types.T_uint8:
		fillMin[uint8](a, vec)
	case types.T_uint16:
		fillMin[uint16](a, vec)
	case types.T_uint32:
		fillMin[uint32](a, vec)
	case types.T_uint64:
		fillMin[uint64](a, vec)
	case types.T_float32:
		fillMin[float32](a, vec)
	case types.T_float64:
		fillMin[float64](a, vec)
	case types.T_varchar, types.T_varbinary:
		if v, ok := min.MinBytes(vector.MustBytesCol(vec), vec.Nsp); ok {
			if a.res.IsNull || bytes.Compare(v, a.res.V.([]byte)) < 0 {
				cp := make([]byte, len(v))
				copy(cp, v)
				a.res = types.NewValue(a.typ.Oid, cp)
			}
		}
	default:
		return qerr.NewEval(context.Background(), "min fed a %s column", vec.Typ.Oid)
	}
	return nil
}

func (a *minAgg) State() ([]types.Value, error) {
	return []types.Value{a.res}, nil
}

func (a *minAgg) Eval() (types.Value, error) {
	return a.res, nil
}
