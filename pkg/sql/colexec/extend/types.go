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

package extend

import (
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

// Extend is a bound expression that can be evaluated against a batch
// to yield one column. String() is the expression's column name in
// evaluated output, the way upstream projections materialize it.
type Extend interface {
	Eq(Extend) bool
	String() string
	ReturnType() types.T
	Attributes() []string
	Eval(*batch.Batch, *process.Process) (*vector.Vector, error)
}

// Attribute is a reference to an input column.
type Attribute struct {
	Name string
	Type types.T
}

// ValueExtend is a constant expression.
type ValueExtend struct {
	V types.Value
}

// BinaryExtend is an arithmetic expression over two operands of the
// same numeric type.
type BinaryExtend struct {
	Op          int
	Left, Right Extend
}

// ToField maps an expression to the typed output field it produces.
func ToField(e Extend) types.Field {
	return types.Field{Name: e.String(), Typ: types.New(e.ReturnType())}
}
