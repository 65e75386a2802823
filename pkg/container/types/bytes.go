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

package types

// Bytes is the storage of a variable-length column: one flat data
// buffer plus per-row offset and length slices.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

func (b *Bytes) Len() int {
	return len(b.Offsets)
}

func (b *Bytes) Get(i int64) []byte {
	return b.Data[b.Offsets[i] : b.Offsets[i]+b.Lengths[i]]
}

func (b *Bytes) Append(vs ...[]byte) {
	o := uint32(len(b.Data))
	for _, v := range vs {
		b.Offsets = append(b.Offsets, o)
		b.Lengths = append(b.Lengths, uint32(len(v)))
		b.Data = append(b.Data, v...)
		o += uint32(len(v))
	}
}

// Window returns a new Bytes holding the rows picked by sels, in order.
// The data buffer is copied so the result does not alias b.
func (b *Bytes) Window(sels []int64) *Bytes {
	r := &Bytes{
		Offsets: make([]uint32, 0, len(sels)),
		Lengths: make([]uint32, 0, len(sels)),
	}
	for _, sel := range sels {
		r.Append(b.Get(sel))
	}
	return r
}
