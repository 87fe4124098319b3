// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/go-kit/log/level"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

type verifyCmd struct {
	Jobs   int    `help:"Kernels simulated in parallel (0 means GOMAXPROCS)." default:"0"`
	Seed   uint64 `help:"Seed for the random test blocks." default:"1"`
	Rounds int    `help:"Random blocks per kernel." default:"4"`
}

func (c *verifyCmd) Run(g *Globals, ctx context.Context) error {
	if err := g.config.Validate(); err != nil {
		return err
	}
	// Check covers both directions, so one config per (word size, width, delta).
	configs, err := synth.Enumerate(synth.Pack, lo.Uniq(g.config.WordSizes), lo.Uniq(g.config.Delta))
	if err != nil {
		return err
	}
	checked, err := verifyKernels(ctx, g, configs, c.Jobs, c.Seed, c.Rounds)
	if err != nil {
		return err
	}
	level.Info(g.logger).Log("msg", "all kernels match the portable implementation", "kernels", 2*checked, "rounds", c.Rounds)
	return nil
}

func verifyKernels(ctx context.Context, g *Globals, configs []synth.Config, jobs int, seed uint64, rounds int) (int, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	rounds = max(rounds, 1)
	opts := g.config.Options()

	var checked atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, k := range configs {
		eg.Go(func() error {
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			for range rounds {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := synth.Check(k, opts, r); err != nil {
					return err
				}
			}
			checked.Add(1)
			level.Debug(g.logger).Log("msg", "kernel verified", "pack", k.Name(), "unpack", synth.Config{
				Direction: synth.Unpack, WordSize: k.WordSize, BitWidth: k.BitWidth, Delta: k.Delta,
			}.Name())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return int(checked.Load()), err
	}
	return int(checked.Load()), nil
}
