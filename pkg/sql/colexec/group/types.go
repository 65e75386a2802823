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

// Package group implements the partial stage of hash aggregation: rows
// are grouped by the byte encoding of their group-by values and fed
// into per-group accumulators, one compact state row per distinct key
// going out for the cross-partition merge stage.
package group

import (
	"sync"

	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/sql/colexec/aggregation"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend"
	"github.com/quiverdb/quiver/pkg/vm/pipeline"
)

// Output column names of the partial stage. The merge stage
// re-associates partial results by the raw group key and rebuilds
// typed group columns from the keys record.
const (
	GroupKeysAttr = "_group_keys"
	GroupKeyAttr  = "_group_by_key"
)

// Operator states.
const (
	stateIdle int32 = iota
	stateStreaming
	stateDraining
	stateFinished
)

// AggregateSlot is one aggregate expression instantiated for one
// group: the running accumulator, its output column name, and the
// argument column names it re-resolves against every gathered batch.
type AggregateSlot struct {
	Agg   aggregation.Aggregation
	Alias string
	Args  []string
}

// GroupEntry is the per-group state: one slot per aggregate expression
// plus the first-seen typed key values.
type GroupEntry struct {
	Slots []AggregateSlot
	Keys  []types.Value
}

// PartialTable is the shared key-indexed store of group entries,
// mutated across all input batches of one operator instance. The
// RW lock admits concurrent producers; every upsert and the final
// drain are single critical sections.
type PartialTable struct {
	mu     sync.RWMutex
	groups map[string]*GroupEntry
}

// localGroup is the block-local grouping of one input batch: the row
// indices carrying one key, plus that key's typed values.
type localGroup struct {
	sels []int64
	keys []types.Value
}

// Partial is the partial group-by operator.
type Partial struct {
	state       int32
	parallelism int

	groupExprs []extend.Extend
	aggExprs   []aggregation.Extend
	inputs     []pipeline.Processor
	table      *PartialTable
}

// NewPartial builds the operator in its Idle state with an empty table.
func NewPartial(groupExprs []extend.Extend, aggExprs []aggregation.Extend) *Partial {
	return &Partial{
		groupExprs: groupExprs,
		aggExprs:   aggExprs,
		table:      NewPartialTable(),
	}
}

// SetParallelism bounds the number of concurrent producers when the
// operator has several inputs. Zero means one producer per input.
func (op *Partial) SetParallelism(n int) {
	op.parallelism = n
}
