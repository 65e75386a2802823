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

package process

import "context"

// Limitation carries the per-query resource limits.
type Limitation struct {
	// BatchRows is the maximum number of rows per batch.
	BatchRows int64
}

// Process is the per-query execution context shared by the operators
// of one pipeline. One query has many pipelines, one pipeline has one
// process.
type Process struct {
	// Id is the query id.
	Id  string
	Ctx context.Context
	Lim Limitation
}

func New(ctx context.Context, id string) *Process {
	return &Process{
		Id:  id,
		Ctx: ctx,
		Lim: Limitation{BatchRows: 8192},
	}
}
