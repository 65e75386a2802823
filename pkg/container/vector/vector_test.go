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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/container/types"
)

func TestAppendAndGet(t *testing.T) {
	v := New(types.New(types.T_int64))
	AppendFixed[int64](v, 1, 2, 3)
	AppendNull(v)
	require.Equal(t, 4, v.Length())
	require.Equal(t, []int64{1, 2, 3, 0}, MustFixedCol[int64](v))

	require.Equal(t, types.NewValue(types.T_int64, int64(2)), v.GetValue(1))
	got := v.GetValue(3)
	require.True(t, got.IsNull)
	require.Equal(t, types.T_int64, got.Typ)
}

func TestVarlenAppendAndGet(t *testing.T) {
	v := New(types.New(types.T_varchar))
	AppendBytes(v, []byte("foo"), []byte("ba"))
	require.Equal(t, 2, v.Length())
	require.Equal(t, types.NewValue(types.T_varchar, []byte("ba")), v.GetValue(1))
}

func TestTake(t *testing.T) {
	v := New(types.New(types.T_int32))
	AppendFixed[int32](v, 10, 20, 30, 40)
	v.Nsp.Add(2)

	w := v.Take([]int64{3, 2, 0})
	require.Equal(t, 3, w.Length())
	require.Equal(t, []int32{40, 30, 10}, MustFixedCol[int32](w))
	require.False(t, w.Nsp.Contains(0))
	require.True(t, w.Nsp.Contains(1))
	require.False(t, w.Nsp.Contains(2))

	// mutating the gather must not touch the source
	MustFixedCol[int32](w)[0] = 99
	require.Equal(t, int32(40), MustFixedCol[int32](v)[3])
}

func TestTakeVarlen(t *testing.T) {
	v := New(types.New(types.T_varchar))
	AppendBytes(v, []byte("a"), []byte("bb"), []byte("ccc"))

	w := v.Take([]int64{2, 0})
	require.Equal(t, 2, w.Length())
	require.Equal(t, []byte("ccc"), MustBytesCol(w).Get(0))
	require.Equal(t, []byte("a"), MustBytesCol(w).Get(1))
}
