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
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

func encodeKeys(t *testing.T, vecs []*vector.Vector, rows int) []string {
	t.Helper()
	proc := process.New(context.Background(), "t")
	enc := newKeyEncoder(vecs)
	keys := make([]string, rows)
	for i := 0; i < rows; i++ {
		key, err := enc.encodeRow(proc, vecs, int64(i))
		require.NoError(t, err)
		keys[i] = string(key)
	}
	return keys
}

func TestKeyEncoderFixedTypes(t *testing.T) {
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed[int64](vec, 1, 2, 1, -1)

	keys := encodeKeys(t, []*vector.Vector{vec}, 4)
	require.Equal(t, keys[0], keys[2])
	require.NotEqual(t, keys[0], keys[1])
	require.NotEqual(t, keys[0], keys[3])
	// tag byte plus eight value bytes
	require.Len(t, keys[0], 9)
}

func TestKeyEncoderNullDistinctFromZero(t *testing.T) {
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed[int64](vec, 0, 0, 0)
	vec.Nsp.Add(1)

	keys := encodeKeys(t, []*vector.Vector{vec}, 3)
	require.Equal(t, keys[0], keys[2])
	require.NotEqual(t, keys[0], keys[1])
	require.Equal(t, string([]byte{keyTagNull}), keys[1])
}

func TestKeyEncoderVarlenBoundaries(t *testing.T) {
	// ("ab","c") and ("a","bc") concatenate to the same bytes; the
	// length prefixes must keep them apart.
	left := vector.New(types.New(types.T_varchar))
	vector.AppendBytes(left, []byte("ab"), []byte("a"))
	right := vector.New(types.New(types.T_varchar))
	vector.AppendBytes(right, []byte("c"), []byte("bc"))

	keys := encodeKeys(t, []*vector.Vector{left, right}, 2)
	require.NotEqual(t, keys[0], keys[1])
}

func TestKeyEncoderMixedColumns(t *testing.T) {
	a := vector.New(types.New(types.T_int32))
	vector.AppendFixed[int32](a, 7, 7, 8)
	b := vector.New(types.New(types.T_varchar))
	vector.AppendBytes(b, []byte("x"), []byte("x"), []byte("x"))

	keys := encodeKeys(t, []*vector.Vector{a, b}, 3)
	require.Equal(t, keys[0], keys[1])
	require.NotEqual(t, keys[0], keys[2])
}

func TestKeyEncoderFloats(t *testing.T) {
	vec := vector.New(types.New(types.T_float64))
	vector.AppendFixed(vec, 1.5, 1.5, 2.5)

	keys := encodeKeys(t, []*vector.Vector{vec}, 3)
	require.Equal(t, keys[0], keys[1])
	require.NotEqual(t, keys[0], keys[2])
}

func TestKeyEncoderUnsupportedType(t *testing.T) {
	proc := process.New(context.Background(), "t")
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed[int64](vec, 1)
	vec.Col = []bool{true}

	enc := newKeyEncoder([]*vector.Vector{vec})
	_, err := enc.encodeRow(proc, []*vector.Vector{vec}, 0)
	require.True(t, qerr.IsErrCode(err, qerr.ErrType))
}

func TestBuildLocalGroups(t *testing.T) {
	proc := process.New(context.Background(), "t")
	vec := vector.New(types.New(types.T_int64))
	vector.AppendFixed[int64](vec, 1, 2, 0, 1, 2)

	groups, err := buildLocalGroups(proc, 5, []*vector.Vector{vec})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	var total int
	for _, g := range groups {
		total += len(g.sels)
		require.Len(t, g.keys, 1)
		require.Equal(t, types.T_int64, g.keys[0].Typ)
		// key values come from the group's first row
		require.Equal(t, vec.GetValue(g.sels[0]), g.keys[0])
	}
	require.Equal(t, 5, total)
}
