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
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend/overload"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func newTestBatch(vals ...int64) *batch.Batch {
	bat := batch.New([]string{"a"})
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed(vec, vals...)
	bat.SetVector(0, vec)
	bat.SetRowCount(len(vals))
	return bat
}

func TestAttributeEval(t *testing.T) {
	proc := process.New(context.Background(), "t")
	bat := newTestBatch(1, 2, 3)

	a := &Attribute{Name: "a", Type: types.T_int64}
	vec, err := a.Eval(bat, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, vector.MustFixedCol[int64](vec))
	require.Equal(t, "a", a.String())

	missing := &Attribute{Name: "b", Type: types.T_int64}
	_, err = missing.Eval(bat, proc)
	require.True(t, qerr.IsErrCode(err, qerr.ErrEval))
}

func TestBinaryEvalMod(t *testing.T) {
	proc := process.New(context.Background(), "t")
	bat := newTestBatch(1, 2, 3, 4, 5)

	e := NewBinaryExtend(overload.Mod,
		&Attribute{Name: "a", Type: types.T_int64},
		NewValueExtend(types.NewValue(types.T_int64, int64(3))))
	require.Equal(t, "a % 3", e.String())
	require.Equal(t, types.T_int64, e.ReturnType())
	require.Equal(t, []string{"a"}, e.Attributes())

	vec, err := e.Eval(bat, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 0, 1, 2}, vector.MustFixedCol[int64](vec))
}

func TestBinaryEvalNullPropagation(t *testing.T) {
	proc := process.New(context.Background(), "t")
	bat := newTestBatch(1, 2, 3)
	bat.Vecs[0].Nsp.Add(1)

	e := NewBinaryExtend(overload.Plus,
		&Attribute{Name: "a", Type: types.T_int64},
		NewValueExtend(types.NewValue(types.T_int64, int64(10))))
	vec, err := e.Eval(bat, proc)
	require.NoError(t, err)
	require.True(t, vec.Nsp.Contains(1))
	require.False(t, vec.Nsp.Contains(0))
}

func TestBinaryEvalDivByZero(t *testing.T) {
	proc := process.New(context.Background(), "t")
	bat := newTestBatch(1, 2)

	e := NewBinaryExtend(overload.Div,
		&Attribute{Name: "a", Type: types.T_int64},
		NewValueExtend(types.NewValue(types.T_int64, int64(0))))
	_, err := e.Eval(bat, proc)
	require.True(t, qerr.IsErrCode(err, qerr.ErrInvalidInput))
}

func TestBinaryEvalTypeMismatch(t *testing.T) {
	proc := process.New(context.Background(), "t")
	bat := newTestBatch(1)

	e := NewBinaryExtend(overload.Plus,
		&Attribute{Name: "a", Type: types.T_int64},
		NewValueExtend(types.NewValue(types.T_int32, int32(1))))
	_, err := e.Eval(bat, proc)
	require.True(t, qerr.IsErrCode(err, qerr.ErrType))
}
