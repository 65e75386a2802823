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
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

// buildLocalGroups makes one linear pass over the evaluated group-by
// columns of a batch, clustering row indices by key. A miss records
// the row's typed key values; a hit only appends the row index. Every
// row lands in exactly one local group.
func buildLocalGroups(proc *process.Process, rows int, vecs []*vector.Vector) (map[string]*localGroup, error) {
	groups := make(map[string]*localGroup)
	enc := newKeyEncoder(vecs)
	for row := 0; row < rows; row++ {
		key, err := enc.encodeRow(proc, vecs, int64(row))
		if err != nil {
			return nil, err
		}
		if g, ok := groups[string(key)]; ok {
			g.sels = append(g.sels, int64(row))
			continue
		}
		groups[string(key)] = &localGroup{
			sels: []int64{int64(row)},
			keys: rowValues(vecs, int64(row)),
		}
	}
	return groups, nil
}
