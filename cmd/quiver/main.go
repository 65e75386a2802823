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

// quiver runs one partial group-by aggregation over generated data and
// prints the partial-state batch, a smoke harness for the pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/quiverdb/quiver/pkg/config"
	"github.com/quiverdb/quiver/pkg/container/batch"
	"github.com/quiverdb/quiver/pkg/container/types"
	"github.com/quiverdb/quiver/pkg/container/vector"
	"github.com/quiverdb/quiver/pkg/logutil"
	"github.com/quiverdb/quiver/pkg/sql/colexec/aggregation"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend"
	"github.com/quiverdb/quiver/pkg/sql/colexec/extend/overload"
	"github.com/quiverdb/quiver/pkg/sql/colexec/group"
	"github.com/quiverdb/quiver/pkg/vm/pipeline"
	"github.com/quiverdb/quiver/pkg/vm/process"
)

var (
	configFile = flag.String("config", "", "toml configuration file")
	rows       = flag.Int64("rows", 100000, "rows of generated input")
	groups     = flag.Int64("groups", 10, "distinct group keys")
	sources    = flag.Int("sources", 4, "concurrent input sources")
)

func main() {
	flag.Parse()
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "quiver: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(ctx, *configFile); err != nil {
			return err
		}
	}
	logutil.Setup(cfg.Log)

	proc := process.New(ctx, "quiver-demo")
	proc.Lim.BatchRows = cfg.Pipeline.BatchRows

	op := group.NewPartial(
		[]extend.Extend{extend.NewBinaryExtend(overload.Mod,
			&extend.Attribute{Name: "a", Type: types.T_int64},
			extend.NewValueExtend(types.NewValue(types.T_int64, *groups)))},
		[]aggregation.Extend{
			{Name: "sum", Alias: "sum_a", Args: []string{"a"}},
			{Name: "starcount", Alias: "cnt"},
			{Name: "approx_count_distinct", Alias: "approx_a", Args: []string{"a"}},
		},
	)
	op.SetParallelism(cfg.Pipeline.Parallelism)

	for i := 0; i < *sources; i++ {
		src := pipeline.NewBatchSource(fmt.Sprintf("gen-%d", i),
			generate(int64(i), *rows / int64(*sources), proc.Lim.BatchRows))
		if err := op.ConnectTo(src); err != nil {
			return err
		}
	}

	out, err := pipeline.Run(proc, op)
	if err != nil {
		return err
	}
	for _, bat := range out {
		fmt.Print(bat.String())
	}
	logutil.Infof("partial aggregation produced %d batch(es)", len(out))
	return nil
}

// generate packs sequential values into batches of at most batchRows.
func generate(seed, rows, batchRows int64) []*batch.Batch {
	var bats []*batch.Batch
	for off := int64(0); off < rows; off += batchRows {
		n := batchRows
		if rows-off < n {
			n = rows - off
		}
		bat := batch.New([]string{"a"})
		vec := vector.New(types.New(types.T_int64))
		for i := int64(0); i < n; i++ {
			vector.AppendFixed(vec, seed+off+i)
		}
		bat.SetVector(0, vec)
		bat.SetRowCount(int(n))
		bats = append(bats, bat)
	}
	return bats
}
