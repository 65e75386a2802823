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

package group

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/sql/colexec/aggregation"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend/overload"
	"github.com/quiverdb/quiver/pkg/vm/pipeline"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func int64Batch(vals ...int64) *batch.Batch {
	bat := batch.New([]string{"a"})
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed(vec, vals...)
	bat.SetVector(0, vec)
	bat.SetRowCount(len(vals))
	return bat
}

// groupRow is one decoded output row: the typed key tuple and the
// serialized accumulator states, keyed by alias.
type groupRow struct {
	keys   []types.Value
	states map[string][]types.Value
}

func decodeOutput(t *testing.T, bat *batch.Batch, aliases []string) []groupRow {
	t.Helper()
	keysVec := batch.GetVector(bat, GroupKeysAttr)
	require.NotNil(t, keysVec)
	require.NotNil(t, batch.GetVector(bat, GroupKeyAttr))

	rows := make([]groupRow, bat.RowCount())
	for i := 0; i < bat.RowCount(); i++ {
		row := groupRow{states: make(map[string][]types.Value)}
		raw := keysVec.GetValue(int64(i))
		require.NoError(t, json.Unmarshal(raw.V.([]byte), &row.keys))
		for _, alias := range aliases {
			vec := batch.GetVector(bat, alias)
			require.NotNil(t, vec)
			var states []types.Value
			require.NoError(t, json.Unmarshal(vec.GetValue(int64(i)).V.([]byte), &states))
			row.states[alias] = states
		}
		rows[i] = row
	}
	return rows
}

func runPartial(t *testing.T, op *Partial) []*batch.Batch {
	t.Helper()
	proc := process.New(context.Background(), "t")
	out, err := pipeline.Run(proc, op)
	require.NoError(t, err)
	return out
}

func TestPartialSumByModulo(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{extend.NewBinaryExtend(overload.Mod,
			&extend.Attribute{Name: "a", Type: types.T_int64},
			extend.NewValueExtend(types.NewValue(types.T_int64, int64(3))))},
		[]aggregation.Extend{{Name: "sum", Alias: "sum_a", Args: []string{"a"}}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{
		int64Batch(1, 2, 3, 4, 5),
	})))

	out := runPartial(t, op)
	require.Len(t, out, 1)
	require.Equal(t, 3, out[0].RowCount())

	got := make(map[int64]int64)
	for _, row := range decodeOutput(t, out[0], []string{"sum_a"}) {
		require.Len(t, row.keys, 1)
		state := row.states["sum_a"]
		require.Len(t, state, 1)
		got[row.keys[0].V.(int64)] = state[0].V.(int64)
	}
	require.Equal(t, map[int64]int64{0: 3, 1: 5, 2: 7}, got)
}

func TestPartialCountAcrossBatches(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "starcount", Alias: "cnt"}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{
		int64Batch(7, 7, 8),
		int64Batch(7, 7),
	})))

	out := runPartial(t, op)
	require.Len(t, out, 1)

	got := make(map[int64]int64)
	for _, row := range decodeOutput(t, out[0], []string{"cnt"}) {
		got[row.keys[0].V.(int64)] = row.states["cnt"][0].V.(int64)
	}
	require.Equal(t, map[int64]int64{7: 4, 8: 1}, got)
}

func TestPartialNullGroup(t *testing.T) {
	bat := int64Batch(0, 0, 5)
	bat.Vecs[0].Nsp.Add(1)

	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "starcount", Alias: "cnt"}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{bat})))

	out := runPartial(t, op)
	require.Len(t, out, 1)
	// zero, null and five are three distinct groups
	require.Equal(t, 3, out[0].RowCount())

	var sawNull bool
	for _, row := range decodeOutput(t, out[0], []string{"cnt"}) {
		if row.keys[0].IsNull {
			sawNull = true
			require.Equal(t, int64(1), row.states["cnt"][0].V.(int64))
		}
	}
	require.True(t, sawNull)
}

func TestPartialEmptyInput(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "sum", Alias: "s", Args: []string{"a"}}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", nil)))

	out := runPartial(t, op)
	require.Empty(t, out)
}

func TestPartialNotReusable(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "starcount", Alias: "cnt"}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{int64Batch(1)})))

	proc := process.New(context.Background(), "t")
	_, err := op.Execute(proc)
	require.NoError(t, err)
	_, err = op.Execute(proc)
	require.True(t, qerr.IsErrCode(err, qerr.ErrInvalidState))
}

func TestPartialNoInput(t *testing.T) {
	op := NewPartial(nil, nil)
	_, err := op.Execute(process.New(context.Background(), "t"))
	require.True(t, qerr.IsErrCode(err, qerr.ErrInvalidState))
}

func TestPartialMissingArgColumn(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "sum", Alias: "s", Args: []string{"nope"}}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{int64Batch(1)})))

	_, err := op.Execute(process.New(context.Background(), "t"))
	require.True(t, qerr.IsErrCode(err, qerr.ErrEval))
}

func sumByKey(t *testing.T, bats []*batch.Batch) map[int64]int64 {
	t.Helper()
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "sum", Alias: "s", Args: []string{"a"}}},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", bats)))

	out := runPartial(t, op)
	require.Len(t, out, 1)
	got := make(map[int64]int64)
	for _, row := range decodeOutput(t, out[0], []string{"s"}) {
		got[row.keys[0].V.(int64)] = row.states["s"][0].V.(int64)
	}
	return got
}

func TestPartialBatchSplitInvariance(t *testing.T) {
	whole := sumByKey(t, []*batch.Batch{int64Batch(1, 2, 1, 2, 3, 1)})
	split := sumByKey(t, []*batch.Batch{int64Batch(1, 2), int64Batch(1, 2, 3), int64Batch(1)})
	require.Equal(t, whole, split)
}

func TestPartialConcurrentProducers(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "sum", Alias: "s", Args: []string{"a"}}},
	)
	op.SetParallelism(4)
	for i := int64(0); i < 8; i++ {
		src := pipeline.NewBatchSource("src", []*batch.Batch{
			int64Batch(i%3, i%3, 10),
		})
		require.NoError(t, op.ConnectTo(src))
	}

	out := runPartial(t, op)
	require.Len(t, out, 1)

	got := make(map[int64]int64)
	for _, row := range decodeOutput(t, out[0], []string{"s"}) {
		got[row.keys[0].V.(int64)] = row.states["s"][0].V.(int64)
	}
	// 8 sources: a%3 cycles 0,1,2,0,1,2,0,1 with each value twice,
	// plus a 10 per source
	require.Equal(t, map[int64]int64{0: 0, 1: 6, 2: 8, 10: 80}, got)
}

func TestPartialOutputSchema(t *testing.T) {
	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{
			{Name: "sum", Alias: "s", Args: []string{"a"}},
			{Name: "avg", Alias: "m", Args: []string{"a"}},
		},
	)
	require.NoError(t, op.ConnectTo(pipeline.NewBatchSource("src", []*batch.Batch{int64Batch(1, 2)})))

	fields := op.Fields()
	require.Len(t, fields, 4)
	require.Equal(t, "s", fields[0].Name)
	require.Equal(t, "m", fields[1].Name)
	require.Equal(t, GroupKeysAttr, fields[2].Name)
	require.Equal(t, GroupKeyAttr, fields[3].Name)

	keyFields := op.KeyFields()
	require.Len(t, keyFields, 1)
	require.Equal(t, "a", keyFields[0].Name)
	require.Equal(t, types.T_int64, keyFields[0].Typ.Oid)

	out := runPartial(t, op)
	require.Len(t, out, 1)
	require.Equal(t, []string{"s", "m", GroupKeysAttr, GroupKeyAttr}, out[0].Attrs)
	require.Equal(t, types.T_varbinary, batch.GetVector(out[0], GroupKeyAttr).Typ.Oid)
}

func TestPartialUpstreamErrorPropagates(t *testing.T) {
	proc := process.New(context.Background(), "t")
	wantErr := qerr.NewInternal(proc.Ctx, "disk gone")

	op := NewPartial(
		[]extend.Extend{&extend.Attribute{Name: "a", Type: types.T_int64}},
		[]aggregation.Extend{{Name: "starcount", Alias: "cnt"}},
	)
	require.NoError(t, op.ConnectTo(errProcessor{err: wantErr}))

	_, err := op.Execute(proc)
	require.ErrorIs(t, err, wantErr)
}

// errProcessor fails on first pull.
type errProcessor struct {
	err error
}

func (p errProcessor) Name() string                       { return "err" }
func (p errProcessor) ConnectTo(pipeline.Processor) error { return p.err }
func (p errProcessor) Inputs() []pipeline.Processor       { return nil }

func (p errProcessor) Execute(*process.Process) (pipeline.Stream, error) {
	return pipeline.NewErrStream(p.err), nil
}
