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

// Package pipeline defines the streaming contract between operators:
// a Processor pulls batches from its upstreams and exposes its own
// output as a Stream.
package pipeline

import (
	"context"

	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

// Stream is a single-pass, non-restartable sequence of batches.
// Next returns (nil, nil) at end of stream; a non-nil error is
// terminal and no further batches follow.
type Stream interface {
	Next(ctx context.Context) (*batch.Batch, error)
}

// Processor is one stage of a pipeline.
type Processor interface {
	Name() string
	ConnectTo(Processor) error
	Inputs() []Processor
	// Execute starts the stage and returns its output stream. The
	// stream may only be consumed once.
	Execute(proc *process.Process) (Stream, error)
}

// Run drains a processor's output into a slice, the terminal
// convenience used by tests and the demo binary.
func Run(proc *process.Process, p Processor) ([]*batch.Batch, error) {
	s, err := p.Execute(proc)
	if err != nil {
		return nil, err
	}
	var out []*batch.Batch
	for {
		bat, err := s.Next(proc.Ctx)
		if err != nil {
			return nil, err
		}
		if bat == nil {
			return out, nil
		}
		out = append(out, bat)
	}
}
