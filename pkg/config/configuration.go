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

package config

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/quiverdb/quiver/pkg/common/qerr"
	"github.com/quiverdb/quiver/pkg/logutil"
)

// PipelineParameters controls the execution pipeline.
type PipelineParameters struct {
	// BatchRows is the maximum number of rows an upstream source packs
	// into one batch.
	BatchRows int64 `toml:"batch-rows"`

	// Parallelism is the number of concurrent producers a parallel run
	// may schedule. Zero means one producer per input.
	Parallelism int `toml:"parallelism"`
}

// Configuration is the root of the engine's TOML configuration file.
type Configuration struct {
	Log      logutil.LogConfig  `toml:"log"`
	Pipeline PipelineParameters `toml:"pipeline"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Log: logutil.LogConfig{
			Level: "info",
		},
		Pipeline: PipelineParameters{
			BatchRows:   8192,
			Parallelism: 0,
		},
	}
}

// Load parses the TOML file at path on top of the defaults.
func Load(ctx context.Context, path string) (*Configuration, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, qerr.NewBadConfig(ctx, "cannot parse %s: %v", path, err)
	}
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate(ctx context.Context) error {
	if c.Pipeline.BatchRows <= 0 {
		return qerr.NewBadConfig(ctx, "pipeline.batch-rows must be positive, got %d", c.Pipeline.BatchRows)
	}
	if c.Pipeline.Parallelism < 0 {
		return qerr.NewBadConfig(ctx, "pipeline.parallelism cannot be negative, got %d", c.Pipeline.Parallelism)
	}
	return nil
}
