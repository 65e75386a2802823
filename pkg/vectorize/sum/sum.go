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

package sum

import (
	"github.com/quiverdb/quiver/pkg/container/nulls"
	"github.com/quiverdb/quiver/pkg/container/types"
)

// Sum adds up all non-null elements, widened to R.
func Sum[T types.FixedSizeT, R types.FixedSizeT](xs []T, nsp *nulls.Nulls) R {
	var res R
	if !nsp.Any() {
		for _, x := range xs {
			res += R(x)
		}
		return res
	}
	for i, x := range xs {
		if nsp.Contains(int64(i)) {
			continue
		}
		res += R(x)
	}
	return res
}
