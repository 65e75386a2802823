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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedLength(t *testing.T) {
	require.Equal(t, 8, T_int64.FixedLength())
	require.Equal(t, 4, T_float32.FixedLength())
	require.Equal(t, -1, T_varchar.FixedLength())
	require.True(t, T_uint16.IsFixed())
	require.False(t, T_varbinary.IsFixed())
}

func TestTypeOf(t *testing.T) {
	typ, ok := TypeOf("int32")
	require.True(t, ok)
	require.Equal(t, T_int32, typ)
	_, ok = TypeOf("decimal")
	require.False(t, ok)
}

func TestBytesAppendGet(t *testing.T) {
	b := new(Bytes)
	b.Append([]byte("ab"), []byte(""), []byte("xyz"))
	require.Equal(t, 3, b.Len())
	require.Equal(t, []byte("ab"), b.Get(0))
	require.Equal(t, []byte(""), b.Get(1))
	require.Equal(t, []byte("xyz"), b.Get(2))

	w := b.Window([]int64{2, 0})
	require.Equal(t, 2, w.Len())
	require.Equal(t, []byte("xyz"), w.Get(0))
	require.Equal(t, []byte("ab"), w.Get(1))
}

func TestValueJSON(t *testing.T) {
	vs := []Value{
		NewValue(T_int64, int64(-7)),
		NewValue(T_uint32, uint32(42)),
		NewValue(T_float64, 2.5),
		NewValue(T_varchar, []byte("abc")),
		NewValue(T_varbinary, []byte{0x00, 0xff}),
		NewNullValue(T_int8),
	}
	for _, v := range vs {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, v.Typ, got.Typ)
		require.Equal(t, v.IsNull, got.IsNull)
		require.Equal(t, v.V, got.V)
	}
}

func TestValueJSONSelfDescribing(t *testing.T) {
	data, err := json.Marshal(NewValue(T_int64, int64(5)))
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"int64","value":5}`, string(data))

	data, err = json.Marshal(NewNullValue(T_varchar))
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"varchar","null":true}`, string(data))
}
