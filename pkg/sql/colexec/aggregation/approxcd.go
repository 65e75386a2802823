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
	"encoding/binary"
	"math"

	"github.com/axiomhq/hyperloglog"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
)

func newApproxCountDistinct(typ types.Type) (Aggregation, error) {
	return &approxCountDistinct{typ: typ, sk: hyperloglog.New14()}, nil
}

// approxCountDistinct keeps a hyperloglog sketch of the argument
// values. The sketch itself is the partial state: sketches from
// different partitions merge losslessly at the merge stage.
type approxCountDistinct struct {
	typ types.Type
	sk  *hyperloglog.Sketch
}

func (a *approxCountDistinct) Reset() {
	a.sk = hyperloglog.New14()
}

func (a *approxCountDistinct) Type() types.Type {
	return ReturnType(ApproxCountDistinct, a.typ)
}

func (a *approxCountDistinct) Dup() Aggregation {
	return &approxCountDistinct{typ: a.typ, sk: hyperloglog.New14()}
}

func (a *approxCountDistinct) Fill(vecs []*vector.Vector, rows int64) error {
	vec, err := oneArg(vecs, AggName[ApproxCountDistinct])
	if err != nil {
		return err
	}
	var buf [8]byte
	for i := int64(0); i < rows; i++ {
		if vec.Nsp.Contains(i) {
			continue
		}
		b, err := hashBytes(vec, i, buf[:])
		if err != nil {
			return err
		}
		a.sk.Insert(b)
	}
	return nil
}

// hashBytes yields a canonical byte string for one row, equal values
// of one type always producing equal bytes.
func hashBytes(vec *vector.Vector, i int64, buf []byte) ([]byte, error) {
	switch col := vec.Col.(type) {
	case *types.Bytes:
		return col.Get(i), nil
	case []int8:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []int16:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []int32:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []int64:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []uint8:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []uint16:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []uint32:
		binary.LittleEndian.PutUint64(buf, uint64(col[i]))
	case []uint64:
		binary.LittleEndian.PutUint64(buf, col[i])
	case []float32:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(float64(col[i])))
	case []float64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(col[i]))
	default:
		return nil, qerr.NewEval(context.Background(), "approx_count_distinct fed a %s column", vec.Typ.Oid)
	}
	return buf, nil
}

func (a *approxCountDistinct) State() ([]types.Value, error) {
	data, err := a.sk.MarshalBinary()
	if err != nil {
		return nil, qerr.NewSerialization(context.Background(), "cannot serialize sketch: %v", err)
	}
	return []types.Value{types.NewValue(types.T_varbinary, data)}, nil
}

func (a *approxCountDistinct) Eval() (types.Value, error) {
	return types.NewValue(types.T_int64, int64(a.sk.Estimate())), nil
}
