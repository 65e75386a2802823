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

package min

import (
	"bytes"

	"github.com/quiverdb/quiver/pkg/container/nulls"
	"github.com/quiverdb/quiver/pkg/container/types"
)

// Min returns the smallest non-null element; ok is false when every
// element is null.
func Min[T types.OrderedT](xs []T, nsp *nulls.Nulls) (T, bool) {
	var res T
	found := false
	for i, x := range xs {
		if nsp.Contains(int64(i)) {
			continue
		}
		if !found || x < res {
			res = x
			found = true
		}
	}
	return res, found
}

// MinBytes is Min for varlen columns, ordered by bytes.Compare.
func MinBytes(col *types.Bytes, nsp *nulls.Nulls) ([]byte, bool) {
	var res []byte
	found := false
	for i, n := 0, col.Len(); i < n; i++ {
		if nsp.Contains(int64(i)) {
			continue
		}
		v := col.Get(int64(i))
		if !found || bytes.Compare(v, res) < 0 {
			res = v
			found = true
		}
	}
	return res, found
}
