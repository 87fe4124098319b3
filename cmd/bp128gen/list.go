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
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

type listCmd struct {
	Match string `arg:"" optional:"" help:"Only list kernels whose name contains this string."`
	Width int    `help:"Only list kernels with this bit width."`
}

type kernelRow struct {
	synth.Stats
	Config      synth.Config
	Fingerprint uint64
}

func (c *listCmd) Run(g *Globals, ctx context.Context) error {
	if err := g.config.Validate(); err != nil {
		return err
	}
	configs, err := g.config.Kernels()
	if err != nil {
		return err
	}
	configs = lo.Filter(configs, func(k synth.Config, _ int) bool {
		return strings.Contains(k.Name(), c.Match) && (c.Width == 0 || k.BitWidth == c.Width)
	})

	rows := make([]kernelRow, 0, len(configs))
	for _, k := range configs {
		if err := ctx.Err(); err != nil {
			return err
		}
		kernel, stats, err := synth.Build(k, g.config.Options())
		if err != nil {
			return err
		}
		rows = append(rows, kernelRow{Stats: stats, Config: k, Fingerprint: kernel.Fingerprint()})
	}

	t := table.NewWriter()
	t.SetOutputMirror(g.stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kernel", "Word", "Bits", "Delta", "Insts", "Loads", "Stores", "Peak X", "Packed", "Fingerprint"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Name, r.Config.WordSize, r.Config.BitWidth, r.Config.Delta,
			r.Instructions, r.Loads, r.Stores, r.PeakVector,
			humanize.Bytes(uint64(r.Config.BitWidth * 16)),
			fmt.Sprintf("%016x", r.Fingerprint),
		})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d kernels", len(rows)), "", "", "",
		humanize.Comma(int64(lo.SumBy(rows, func(r kernelRow) int { return r.Instructions }))),
		"", "", lo.Max(lo.Map(rows, func(r kernelRow, _ int) int { return r.PeakVector })),
		"", "",
	})
	t.Render()
	return nil
}
