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

// Package nulls wraps the roaring bitmap library for the manipulation
// of a column's null set. All functions are safe on a nil receiver,
// which stands for "no nulls".
package nulls

import (
	"github.com/RoaringBitmap/roaring"
)

// Nulls records the row positions holding NULL within one vector.
type Nulls struct {
	Np *roaring.Bitmap
}

func New() *Nulls {
	return &Nulls{}
}

// Any reports whether any null exists.
func (nsp *Nulls) Any() bool {
	return nsp != nil && nsp.Np != nil && !nsp.Np.IsEmpty()
}

func (nsp *Nulls) Add(rows ...int64) {
	if len(rows) == 0 {
		return
	}
	if nsp.Np == nil {
		nsp.Np = roaring.New()
	}
	for _, row := range rows {
		nsp.Np.Add(uint32(row))
	}
}

func (nsp *Nulls) Contains(row int64) bool {
	return nsp != nil && nsp.Np != nil && nsp.Np.Contains(uint32(row))
}

// Count returns the number of nulls.
func (nsp *Nulls) Count() int {
	if nsp == nil || nsp.Np == nil {
		return 0
	}
	return int(nsp.Np.GetCardinality())
}

// FilterCount returns how many of the given rows are null.
func (nsp *Nulls) FilterCount(sels []int64) int {
	if !nsp.Any() {
		return 0
	}
	var cnt int
	for _, sel := range sels {
		if nsp.Np.Contains(uint32(sel)) {
			cnt++
		}
	}
	return cnt
}

// Filter builds the null set of a gather: result position i is null
// iff row sels[i] is null here.
func (nsp *Nulls) Filter(sels []int64) *Nulls {
	r := New()
	if !nsp.Any() {
		return r
	}
	for i, sel := range sels {
		if nsp.Np.Contains(uint32(sel)) {
			r.Add(int64(i))
		}
	}
	return r
}

func (nsp *Nulls) Clone() *Nulls {
	if nsp == nil || nsp.Np == nil {
		return New()
	}
	return &Nulls{Np: nsp.Np.Clone()}
}

// Or unions two null sets into a fresh one.
func Or(a, b *Nulls) *Nulls {
	r := New()
	if a.Any() {
		r.Np = a.Np.Clone()
	}
	if b.Any() {
		if r.Np == nil {
			r.Np = b.Np.Clone()
		} else {
			r.Np.Or(b.Np)
		}
	}
	return r
}
