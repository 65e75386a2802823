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
	"encoding/binary"
	"math"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

// Key encoding tags. A null encodes to the bare null tag, so it can
// never collide with a value of the same column.
const (
	keyTagNull  byte = 0
	keyTagValue byte = 1
)

// keyEncoder renders one row's group-by values into a canonical byte
// key: per column a tag byte, then the value in its native width for
// fixed types or length-prefixed for varlen types. The length prefix
// keeps the concatenation injective across any mix of column types.
// The buffer is reused row to row.
type keyEncoder struct {
	buf []byte
}

func newKeyEncoder(vecs []*vector.Vector) *keyEncoder {
	// a grow-once guess: tag plus width per fixed column, tag plus
	// prefix per varlen one; real varlen content grows it on demand
	size := 0
	for _, vec := range vecs {
		if w := vec.Typ.Oid.FixedLength(); w > 0 {
			size += 1 + w
		} else {
			size += 1 + 4
		}
	}
	return &keyEncoder{buf: make([]byte, 0, size)}
}

// encodeRow returns the key bytes of one row. The result aliases the
// encoder's buffer and is only valid until the next call.
func (e *keyEncoder) encodeRow(proc *process.Process, vecs []*vector.Vector, row int64) ([]byte, error) {
	e.buf = e.buf[:0]
	for _, vec := range vecs {
		if vec.Nsp.Contains(row) {
			e.buf = append(e.buf, keyTagNull)
			continue
		}
		e.buf = append(e.buf, keyTagValue)
		switch col := vec.Col.(type) {
		case *types.Bytes:
			v := col.Get(row)
			e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(v)))
			e.buf = append(e.buf, v...)
		case []int8:
			e.buf = append(e.buf, byte(col[row]))
		case []uint8:
			e.buf = append(e.buf, col[row])
		case []int16:
			e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(col[row]))
		case []uint16:
			e.buf = binary.LittleEndian.AppendUint16(e.buf, col[row])
		case []int32:
			e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(col[row]))
		case []uint32:
			e.buf = binary.LittleEndian.AppendUint32(e.buf, col[row])
		case []float32:
			e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(col[row]))
		case []int64:
			e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(col[row]))
		case []uint64:
			e.buf = binary.LittleEndian.AppendUint64(e.buf, col[row])
		case []float64:
			e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(col[row]))
		default:
			return nil, qerr.NewType(proc.Ctx, "no group key encoding for type %s", vec.Typ.Oid)
		}
	}
	return e.buf, nil
}

// rowValues extracts the typed key tuple of one row, kept verbatim for
// the output so the merge stage need not re-parse the byte key.
func rowValues(vecs []*vector.Vector, row int64) []types.Value {
	vals := make([]types.Value, len(vecs))
	for i, vec := range vecs {
		vals[i] = vec.GetValue(row)
	}
	return vals
}
