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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is one typed, possibly null scalar. The partial aggregation
// operator carries group-key tuples and accumulator states as Values,
// and serializes them with the self-describing JSON encoding below so
// the merge stage can rebuild typed columns without re-parsing byte keys.
type Value struct {
	Typ    T
	IsNull bool
	// V holds the native Go value: int8..float64 for numerics, []byte
	// for varchar and varbinary. nil when IsNull.
	V any
}

func NewValue(typ T, v any) Value {
	return Value{Typ: typ, V: v}
}

func NewNullValue(typ T) Value {
	return Value{Typ: typ, IsNull: true}
}

func (v Value) String() string {
	if v.IsNull {
		return "null"
	}
	if v.Typ == T_varchar {
		return string(v.V.([]byte))
	}
	return fmt.Sprintf("%v", v.V)
}

type valueJSON struct {
	Type  string          `json:"type"`
	Null  bool            `json:"null,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Type: v.Typ.String()}
	if v.IsNull {
		out.Null = true
		return json.Marshal(out)
	}
	var raw any = v.V
	switch v.Typ {
	case T_varchar:
		raw = string(v.V.([]byte))
	case T_varbinary:
		raw = base64.StdEncoding.EncodeToString(v.V.([]byte))
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	out.Value = data
	return json.Marshal(out)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var in valueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	typ, ok := TypeOf(in.Type)
	if !ok {
		return fmt.Errorf("unknown value type %q", in.Type)
	}
	v.Typ = typ
	if in.Null {
		v.IsNull = true
		v.V = nil
		return nil
	}
	v.IsNull = false
	switch typ {
	case T_varchar:
		var s string
		if err := json.Unmarshal(in.Value, &s); err != nil {
			return err
		}
		v.V = []byte(s)
	case T_varbinary:
		var s string
		if err := json.Unmarshal(in.Value, &s); err != nil {
			return err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return err
		}
		v.V = b
	case T_float32, T_float64:
		f, err := strconv.ParseFloat(string(in.Value), 64)
		if err != nil {
			return err
		}
		if typ == T_float32 {
			v.V = float32(f)
		} else {
			v.V = f
		}
	case T_uint8, T_uint16, T_uint32, T_uint64:
		u, err := strconv.ParseUint(string(in.Value), 10, 64)
		if err != nil {
			return err
		}
		switch typ {
		case T_uint8:
			v.V = uint8(u)
		case T_uint16:
			v.V = uint16(u)
		case T_uint32:
			v.V = uint32(u)
		default:
			v.V = u
		}
	default:
		i, err := strconv.ParseInt(string(in.Value), 10, 64)
		if err != nil {
			return err
		}
		switch typ {
		case T_int8:
			v.V = int8(i)
		case T_int16:
			v.V = int16(i)
		case T_int32:
			v.V = int32(i)
		default:
			v.V = i
		}
	}
	return nil
}
