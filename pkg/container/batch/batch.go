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

package batch

import (
	"bytes"
	"fmt"

	"github.com/quiverdb/quiver/pkg/container/vector"
)

// Batch is an immutable columnar record set: named, typed vectors of
// equal length. Operators consume batches read-only.
type Batch struct {
	Attrs []string
	Vecs  []*vector.Vector

	rowCount int
}

func New(attrs []string) *Batch {
	return &Batch{
		Attrs: attrs,
		Vecs:  make([]*vector.Vector, len(attrs)),
	}
}

func NewWithSize(n int) *Batch {
	return &Batch{
		Attrs: make([]string, n),
		Vecs:  make([]*vector.Vector, n),
	}
}

// GetVector returns the column with the given name, nil if absent.
func GetVector(bat *Batch, name string) *vector.Vector {
	for i, attr := range bat.Attrs {
		if attr == name {
			return bat.Vecs[i]
		}
	}
	return nil
}

func (bat *Batch) RowCount() int {
	return bat.rowCount
}

func (bat *Batch) SetRowCount(rows int) {
	bat.rowCount = rows
}

func (bat *Batch) VectorCount() int {
	return len(bat.Vecs)
}

func (bat *Batch) SetVector(pos int32, vec *vector.Vector) {
	bat.Vecs[pos] = vec
}

func (bat *Batch) GetVector(pos int32) *vector.Vector {
	return bat.Vecs[pos]
}

// Take materializes a new batch holding exactly the rows picked by
// sels, in order, all columns. The result's row count equals len(sels).
func (bat *Batch) Take(sels []int64) *Batch {
	rbat := New(bat.Attrs)
	for i, vec := range bat.Vecs {
		rbat.Vecs[i] = vec.Take(sels)
	}
	rbat.rowCount = len(sels)
	return rbat
}

func (bat *Batch) String() string {
	var buf bytes.Buffer

	for i, vec := range bat.Vecs {
		buf.WriteString(fmt.Sprintf("%s : %s\n", bat.Attrs[i], vec.String()))
	}
	return buf.String()
}
