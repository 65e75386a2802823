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

func (a *Attribute) Attributes() []string {
	return []string{a.Name}
}

func (a *Attribute) ReturnType() types.T {
	return a.Type
}

func (a *Attribute) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, error) {
	if vec := batch.GetVector(bat, a.Name); vec != nil {
		return vec, nil
	}
	return nil, qerr.NewEval(proc.Ctx, "column '%s' not found in batch", a.Name)
}

func (a *Attribute) Eq(e Extend) bool {
	if b, ok := e.(*Attribute); ok {
		return a.Name == b.Name && a.Type == b.Type
	}
	return false
}

func (a *Attribute) String() string {
	return a.Name
}
