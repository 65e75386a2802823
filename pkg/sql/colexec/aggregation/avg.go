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

func newAvg(typ types.Type) (Aggregation, error) {
	if _, ok := sumReturnTypes[typ.Oid]; !ok {
		return nil, qerr.NewType(context.Background(), "avg is not defined on %s", typ.Oid)
	}
	return &avg{typ: typ}, nil
}

// avg keeps the (sum, count) pair; the pair is the partial state and
// the merge stage combines pairs before dividing.
type avg struct {
	typ types.Type
	sum float64
	cnt int64
}

func (a *avg) Reset() {
	a.sum = 0
	a.cnt = 0
}

func (a *avg) Type() types.Type {
	return ReturnType(Avg, a.typ)
}

func (a *avg) Dup() Aggregation {
	return &avg{typ: a.typ}
}

func (a *avg) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[Avg])
	if err != nil {
		return err
	}
	switch vec.Typ.Oid {
	case types.T_int8:
		a.sum += sum.Sum[int8, float64](vector.MustFixedCol[int8](vec), vec.Nsp)
	case types.T_int16:
		a.sum += sum.Sum[int16, float64](vector.MustFixedCol[int16](vec), vec.Nsp)
	case types.T_int32:
		a.sum += sum.Sum[int32, float64](vector.MustFixedCol[int32](vec), vec.Nsp)
	case types.T_int64:
		a.sum += sum.Sum[int64, float64](vector.MustFixedCol[int64](vec), vec.Nsp)
	case types.T_uint8:
		a.sum += sum.Sum[uint8, float64](vector.MustFixedCol[uint8](vec), vec.Nsp)
	case types.T_uint16:
		a.sum += sum.Sum[uint16, float64](vector.MustFixedCol[uint16](vec), vec.Nsp)
	case types.T_uint32:
		a.sum += sum.Sum[uint32, float64](vector.MustFixedCol[uint32](vec), vec.Nsp)
	case types.T_uint64:
		a.sum += sum.Sum[uint64, float64](vector.MustFixedCol[uint64](vec), vec.Nsp)
	case types.T_float32:
		a.sum += sum.Sum[float32, float64](vector.MustFixedCol[float32](vec), vec.Nsp)
	case types.T_float64:
		a.sum += sum.Sum[float64, float64](vector.MustFixedCol[float64](vec), vec.Nsp)
	default:
		return qerr.NewEval(context.Background(), "avg fed a %s column", vec.Typ.Oid)
	}
	a.cnt += count.NonNull(int(rows), vec.Nsp)
	return nil
}

func (a *avg) State() ([]types.Value, error) {
	return []types.Value{
		types.NewValue(types.T_float64, a.sum),
		types.NewValue(types.T_int64, a.cnt),
	}, nil
}

func (a *avg) Eval() (types.Value, error) {
	if a.cnt == 0 {
		return types.NewNullValue(types.T_float64), nil
	}
	return types.NewValue(types.T_float64, a.sum/float64(a.cnt)), nil
}
