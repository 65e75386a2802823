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
)

// Constructor builds a fresh accumulator for an input of the given type.
type Constructor func(typ types.Type) (Aggregation, error)

var registry = map[string]Constructor{}

func init() {
	Register(AggName[Sum], newSum)
	Register(AggName[Avg], newAvg)
	Register(AggName[Min], newMin)
	Register(AggName[Max], newMax)
	Register(AggName[Count], newCount)
	Register(AggName[StarCount], newStarCount)
	Register(AggName[ApproxCountDistinct], newApproxCountDistinct)
}

// Register installs a constructor under a function name. Built-ins are
// registered at init; user-defined aggregates hook in the same way.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// New builds an accumulator by function name. The name is the registry
// key; an unknown name or an unsupported input type is a type error.
func New(ctx context.Context, name string, typ types.Type) (Aggregation, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, qerr.NewType(ctx, "unknown aggregate function '%s'", name)
	}
	return ctor(typ)
}
