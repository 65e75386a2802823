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
	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/sql/colexec/aggregation"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func NewPartialTable() *PartialTable {
	return &PartialTable{groups: make(map[string]*GroupEntry)}
}

func (tbl *PartialTable) Len() int {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	return len(tbl.groups)
}

// Upsert feeds one gathered sub-batch into the entry for key, creating
// the entry with fresh accumulators on first sight. Entry creation and
// its first accumulation happen in the same critical section, so no
// reader can observe a half-built entry.
func (tbl *PartialTable) Upsert(proc *process.Process, key string, keys []types.Value,
	aggExprs []aggregation.Extend, gathered *batch.Batch) error {
	rows := int64(gathered.RowCount())

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	entry, ok := tbl.groups[key]
	if !ok {
		slots := make([]AggregateSlot, len(aggExprs))
		for i, ae := range aggExprs {
			argVecs, argTyp, err := resolveArgs(proc, gathered, ae.Args)
			if err != nil {
				return err
			}
			ag, err := aggregation.New(proc.Ctx, ae.Name, argTyp)
			if err != nil {
				return err
			}
			if err := ag.Fill(argVecs, rows); err != nil {
				return err
			}
			slots[i] = AggregateSlot{Agg: ag, Alias: ae.Alias, Args: ae.Args}
		}
		tbl.groups[key] = &GroupEntry{Slots: slots, Keys: keys}
		return nil
	}

	for i := range entry.Slots {
		slot := &entry.Slots[i]
		argVecs, _, err := resolveArgs(proc, gathered, slot.Args)
		if err != nil {
			return err
		}
		if err := slot.Agg.Fill(argVecs, rows); err != nil {
			return err
		}
	}
	return nil
}

// resolveArgs binds argument column names against a gathered batch. A
// missing column is an upstream schema mismatch and aborts the run.
func resolveArgs(proc *process.Process, bat *batch.Batch, args []string) ([]*vector.Vector, types.Type, error) {
	if len(args) == 0 {
		// no-argument function, starcount
		return nil, types.New(types.T_any), nil
	}
	vecs := make([]*vector.Vector, len(args))
	for i, arg := range args {
		vec := batch.GetVector(bat, arg)
		if vec == nil {
			return nil, types.Type{}, qerr.NewEval(proc.Ctx, "aggregate argument column '%s' not found in batch", arg)
		}
		vecs[i] = vec
	}
	return vecs, vecs[0].Typ, nil
}

// Range drains the table under the exclusive lock so no producer can
// race the iteration. fn must not call back into the table.
func (tbl *PartialTable) Range(fn func(key string, entry *GroupEntry) error) error {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	for key, entry := range tbl.groups {
		if err := fn(key, entry); err != nil {
			return err
		}
	}
	return nil
}
