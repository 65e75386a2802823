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
	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func NewValueExtend(v types.Value) *ValueExtend {
	return &ValueExtend{V: v}
}

func (e *ValueExtend) Attributes() []string {
	return nil
}

func (e *ValueExtend) ReturnType() types.T {
	return e.V.Typ
}

// Eval broadcasts the constant to the batch's row count.
func (e *ValueExtend) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, error) {
	rows := bat.RowCount()
	vec := vector.New(types.New(e.V.Typ))
	if e.V.IsNull {
		for i := 0; i < rows; i++ {
			vector.AppendNull(vec)
		}
		return vec, nil
	}
	for i := 0; i < rows; i++ {
		switch e.V.Typ {
		case types.T_int8:
			vector.AppendFixed(vec, e.V.V.(int8))
		case types.T_int16:
			vector.AppendFixed(vec, e.V.V.(int16))
		case types.T_int32:
			vector.AppendFixed(vec, e.V.V.(int32))
		case types.T_int64:
			vector.AppendFixed(vec, e.V.V.(int64))
		case types.T_uint8:
			vector.AppendFixed(vec, e.V.V.(uint8))
		case types.T_uint16:
			vector.AppendFixed(vec, e.V.V.(uint16))
		case types.T_uint32:
			vector.AppendFixed(vec, e.V.V.(uint32))
		case types.T_uint64:
			vector.AppendFixed(vec, e.V.V.(uint64))
		case types.T_float32:
			vector.AppendFixed(vec, e.V.V.(float32))
		case types.T_float64:
			vector.AppendFixed(vec, e.V.V.(float64))
		case types.T_varchar, types.T_varbinary:
			vector.AppendBytes(vec, e.V.V.([]byte))
		default:
			return nil, qerr.NewType(proc.Ctx, "constant of type %s is not supported", e.V.Typ)
		}
	}
	return vec, nil
}

func (e *ValueExtend) Eq(o Extend) bool {
	if b, ok := o.(*ValueExtend); ok {
		return e.V.String() == b.V.String() && e.V.Typ == b.V.Typ
	}
	return false
}

func (e *ValueExtend) String() string {
	return e.V.String()
}
