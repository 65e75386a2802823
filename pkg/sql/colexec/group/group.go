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
	"encoding/json"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/logutil"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend"
	"github.com/quiverdb/quiver/pkg/vm/pipeline"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func (op *Partial) Name() string {
	return "group_by_partial"
}

func (op *Partial) ConnectTo(in pipeline.Processor) error {
	op.inputs = append(op.inputs, in)
	return nil
}

func (op *Partial) Inputs() []pipeline.Processor {
	return op.inputs
}

// Execute drains every input, grouping and accumulating batch by
// batch, then emits the whole table as one output batch. With several
// inputs the producers run concurrently against the shared table.
//
// For example, with column A = [1 2 3 4 5], grouping by A % 3 and
// aggregating SUM(A):
//
//	key 0 gathers rows [2]    -> sum 3
//	key 1 gathers rows [0 3]  -> sum 5
//	key 2 gathers rows [1 4]  -> sum 7
func (op *Partial) Execute(proc *process.Process) (pipeline.Stream, error) {
	if !atomic.CompareAndSwapInt32(&op.state, stateIdle, stateStreaming) {
		return nil, qerr.NewInvalidState(proc.Ctx, "operator '%s' is not reusable", op.Name())
	}
	if len(op.inputs) == 0 {
		atomic.StoreInt32(&op.state, stateFinished)
		return nil, qerr.NewInvalidState(proc.Ctx, "operator '%s' has no input", op.Name())
	}

	start := time.Now()
	streams := make([]pipeline.Stream, len(op.inputs))
	for i, in := range op.inputs {
		s, err := in.Execute(proc)
		if err != nil {
			atomic.StoreInt32(&op.state, stateFinished)
			return nil, err
		}
		streams[i] = s
	}

	var err error
	if len(streams) == 1 {
		err = op.consumeStream(proc, streams[0])
	} else {
		err = pipeline.RunProducers(proc.Ctx, op.parallelism, streams, func(bat *batch.Batch) error {
			return op.processBatch(proc, bat)
		})
	}
	if err != nil {
		atomic.StoreInt32(&op.state, stateFinished)
		return nil, err
	}
	logutil.Info("group by partial cost",
		zap.String("query", proc.Id),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("groups", op.table.Len()))

	atomic.StoreInt32(&op.state, stateDraining)
	bat, err := op.buildOutput(proc)
	atomic.StoreInt32(&op.state, stateFinished)
	if err != nil {
		return nil, err
	}
	if bat == nil {
		return pipeline.NewStream(), nil
	}
	return pipeline.NewStream(bat), nil
}

func (op *Partial) consumeStream(proc *process.Process, s pipeline.Stream) error {
	for {
		bat, err := s.Next(proc.Ctx)
		if err != nil {
			return err
		}
		if bat == nil {
			return nil
		}
		if bat.RowCount() == 0 {
			continue
		}
		if err := op.processBatch(proc, bat); err != nil {
			return err
		}
	}
}

// processBatch runs one batch through the grouping chain: evaluate the
// group-by expressions, cluster rows by key, gather each local group
// once, and upsert it into the shared table.
func (op *Partial) processBatch(proc *process.Process, bat *batch.Batch) error {
	vecs := make([]*vector.Vector, len(op.groupExprs))
	for i, e := range op.groupExprs {
		vec, err := e.Eval(bat, proc)
		if err != nil {
			return err
		}
		vecs[i] = vec
	}

	groups, err := buildLocalGroups(proc, bat.RowCount(), vecs)
	if err != nil {
		return err
	}

	for key, g := range groups {
		gathered := bat.Take(g.sels)
		if err := op.table.Upsert(proc, key, g.keys, op.aggExprs, gathered); err != nil {
			return err
		}
	}
	return nil
}

// Fields is the output schema: one serialized-state column per
// aggregate, the typed keys record, and the raw group key.
func (op *Partial) Fields() []types.Field {
	fields := make([]types.Field, 0, len(op.aggExprs)+2)
	for _, ae := range op.aggExprs {
		fields = append(fields, types.Field{Name: ae.Alias, Typ: types.New(types.T_varchar)})
	}
	fields = append(fields, types.Field{Name: GroupKeysAttr, Typ: types.New(types.T_varchar)})
	fields = append(fields, types.Field{Name: GroupKeyAttr, Typ: types.New(types.T_varbinary)})
	return fields
}

// KeyFields maps the group-by expressions to the typed fields the
// final projection will rebuild from the keys record.
func (op *Partial) KeyFields() []types.Field {
	fields := make([]types.Field, len(op.groupExprs))
	for i, e := range op.groupExprs {
		fields[i] = extend.ToField(e)
	}
	return fields
}

func (op *Partial) buildOutput(proc *process.Process) (*batch.Batch, error) {
	n := op.table.Len()
	if n == 0 {
		return nil, nil
	}

	fields := op.Fields()
	attrs := make([]string, len(fields))
	for i, f := range fields {
		attrs[i] = f.Name
	}
	bat := batch.New(attrs)
	for i, f := range fields {
		bat.Vecs[i] = vector.New(f.Typ)
	}

	aggLen := len(op.aggExprs)
	err := op.table.Range(func(key string, entry *GroupEntry) error {
		for i := range entry.Slots {
			states, err := entry.Slots[i].Agg.State()
			if err != nil {
				return err
			}
			data, err := json.Marshal(states)
			if err != nil {
				return qerr.NewSerialization(proc.Ctx, "cannot serialize state of '%s': %v", entry.Slots[i].Alias, err)
			}
			vector.AppendBytes(bat.Vecs[i], data)
		}
		keysData, err := json.Marshal(entry.Keys)
		if err != nil {
			return qerr.NewSerialization(proc.Ctx, "cannot serialize group keys: %v", err)
		}
		vector.AppendBytes(bat.Vecs[aggLen], keysData)
		vector.AppendBytes(bat.Vecs[aggLen+1], []byte(key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	bat.SetRowCount(n)
	return bat, nil
}
