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
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/quiverdb/quiver/pkg/container/batch"
)

// RunProducers drains every stream on a goroutine pool, handing each
// batch to consume. consume must be safe for concurrent calls. The
// first error cancels the remaining producers and is returned.
func RunProducers(ctx context.Context, parallelism int, streams []Stream, consume func(*batch.Batch) error) error {
	if len(streams) == 0 {
		return nil
	}
	if parallelism <= 0 || parallelism > len(streams) {
		parallelism = len(streams)
	}

	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return err
	}
	defer pool.Release()

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for _, s := range streams {
		s := s
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			for {
				bat, err := s.Next(cctx)
				if err != nil {
					fail(err)
					return
				}
				if bat == nil {
					return
				}
				if bat.RowCount() == 0 {
					continue
				}
				if err := consume(bat); err != nil {
					fail(err)
					return
				}
			}
		}); err != nil {
			wg.Done()
			fail(err)
		}
	}
	wg.Wait()
	return firstErr
}
