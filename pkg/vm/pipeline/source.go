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

package pipeline

import (
	"context"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

// BatchSource is a leaf processor replaying in-memory batches, the
// stand-in for the table-reader stage that is out of scope here.
type BatchSource struct {
	name string
	bats []*batch.Batch
}

func NewBatchSource(name string, bats []*batch.Batch) *BatchSource {
	return &BatchSource{name: name, bats: bats}
}

func (s *BatchSource) Name() string {
	return s.name
}

func (s *BatchSource) ConnectTo(Processor) error {
	return qerr.NewInvalidState(context.Background(), "source processor '%s' accepts no input", s.name)
}

func (s *BatchSource) Inputs() []Processor {
	return nil
}

func (s *BatchSource) Execute(*process.Process) (Stream, error) {
	return &sliceStream{bats: s.bats}, nil
}

// NewStream wraps batches as a Stream.
func NewStream(bats ...*batch.Batch) Stream {
	return &sliceStream{bats: bats}
}

type sliceStream struct {
	bats []*batch.Batch
	pos  int
}

func (s *sliceStream) Next(ctx context.Context) (*batch.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.bats) {
		return nil, nil
	}
	bat := s.bats[s.pos]
	s.pos++
	return bat, nil
}

// errStream yields a terminal error on first pull. Tests use it to
// exercise upstream failure propagation.
type errStream struct {
	err error
}

func NewErrStream(err error) Stream {
	return &errStream{err: err}
}

func (s *errStream) Next(context.Context) (*batch.Batch, error) {
	return nil, s.err
}
