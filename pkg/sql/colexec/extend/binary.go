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

package extend

import (
	"fmt"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/nulls"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend/overload"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func NewBinaryExtend(op int, left, right Extend) *BinaryExtend {
	return &BinaryExtend{Op: op, Left: left, Right: right}
}

func (e *BinaryExtend) Attributes() []string {
	return append(e.Left.Attributes(), e.Right.Attributes()...)
}

func (e *BinaryExtend) ReturnType() types.T {
	return e.Left.ReturnType()
}

func (e *BinaryExtend) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, error) {
	lv, err := e.Left.Eval(bat, proc)
	if err != nil {
		return nil, err
	}
	rv, err := e.Right.Eval(bat, proc)
	if err != nil {
		return nil, err
	}
	if lv.Typ.Oid != rv.Typ.Oid {
		return nil, qerr.NewType(proc.Ctx, "mismatched operand types %s and %s for '%s'",
			lv.Typ.Oid, rv.Typ.Oid, overload.OpName[e.Op])
	}

	res := &vector.Vector{Typ: lv.Typ, Nsp: nulls.Or(lv.Nsp, rv.Nsp)}
	switch lv.Typ.Oid {
	case types.T_int8:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[int8](lv), vector.MustFixedCol[int8](rv), res.Nsp)
	case types.T_int16:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[int16](lv), vector.MustFixedCol[int16](rv), res.Nsp)
	case types.T_int32:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[int32](lv), vector.MustFixedCol[int32](rv), res.Nsp)
	case types.T_int64:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[int64](lv), vector.MustFixedCol[int64](rv), res.Nsp)
	case types.T_uint8:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[uint8](lv), vector.MustFixedCol[uint8](rv), res.Nsp)
	case types.T_uint16:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[uint16](lv), vector.MustFixedCol[uint16](rv), res.Nsp)
	case types.T_uint32:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[uint32](lv), vector.MustFixedCol[uint32](rv), res.Nsp)
	case types.T_uint64:
		res.Col, err = applyInt(proc, e.Op, vector.MustFixedCol[uint64](lv), vector.MustFixedCol[uint64](rv), res.Nsp)
	case types.T_float32:
		res.Col, err = applyFloat(proc, e.Op, vector.MustFixedCol[float32](lv), vector.MustFixedCol[float32](rv))
	case types.T_float64:
		res.Col, err = applyFloat(proc, e.Op, vector.MustFixedCol[float64](lv), vector.MustFixedCol[float64](rv))
	default:
		return nil, qerr.NewType(proc.Ctx, "operator '%s' is not defined on %s",
			overload.OpName[e.Op], lv.Typ.Oid)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

type intT interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floatT interface {
	~float32 | ~float64
}

func applyInt[T intT](proc *process.Process, op int, l, r []T, nsp *nulls.Nulls) ([]T, error) {
	res := make([]T, len(l))
	for i := range l {
		switch op {
		case overload.Plus:
			res[i] = l[i] + r[i]
		case overload.Minus:
			res[i] = l[i] - r[i]
		case overload.Mult:
			res[i] = l[i] * r[i]
		case overload.Div, overload.Mod:
			if r[i] == 0 {
				// null rows carry a zero filler, they are not a division
				if nsp.Contains(int64(i)) {
					continue
				}
				return nil, qerr.NewInvalidInput(proc.Ctx, "division by zero")
			}
			if op == overload.Div {
				res[i] = l[i] / r[i]
			} else {
				res[i] = l[i] % r[i]
			}
		}
	}
	return res, nil
}

func applyFloat[T floatT](proc *process.Process, op int, l, r []T) ([]T, error) {
	res := make([]T, len(l))
	for i := range l {
		switch op {
		case overload.Plus:
			res[i] = l[i] + r[i]
		case overload.Minus:
			res[i] = l[i] - r[i]
		case overload.Mult:
			res[i] = l[i] * r[i]
		case overload.Div:
			res[i] = l[i] / r[i]
		case overload.Mod:
			return nil, qerr.NewType(proc.Ctx, "operator '%%' is not defined on floats")
		}
	}
	return res, nil
}

func (e *BinaryExtend) Eq(o Extend) bool {
	if b, ok := o.(*BinaryExtend); ok {
		return e.Op == b.Op && e.Left.Eq(b.Left) && e.Right.Eq(b.Right)
	}
	return false
}

func (e *BinaryExtend) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, overload.OpName[e.Op], e.Right)
}
