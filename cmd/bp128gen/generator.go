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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/asm"
	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

// buildConstraint guards every generated file.
const buildConstraint = "amd64,!purego"

type genCmd struct {
	Output  string `help:"Output directory (overrides the config file)." placeholder:"DIR"`
	Package string `help:"Go package of the generated files (overrides the config file)." placeholder:"NAME"`
}

func (c *genCmd) Run(g *Globals, ctx context.Context) error {
	cfg := *g.config
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.Package != "" {
		cfg.Package = c.Package
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := &Generator{Config: &cfg, Logger: g.logger, Argv: append([]string{"bp128gen"}, os.Args[1:]...)}
	files, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	level.Info(g.logger).Log("msg", "generation complete", "files", len(files), "dir", cfg.Output)
	return nil
}

// Generator writes one assembly file and stub file per direction, then the
// file that installs the kernels into the bp128 dispatch tables.
type Generator struct {
	Config *Config
	Logger log.Logger

	// Argv is recorded in the "Code generated" headers.
	Argv []string
}

// Generate writes every file and returns their paths.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	dirs, err := g.Config.directions()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.Config.Output, 0o755); err != nil {
		return nil, err
	}

	kernels := make([][]synth.Config, len(dirs))
	written := make([][]string, len(dirs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, d := range dirs {
		eg.Go(func() error {
			configs, err := synth.Enumerate(d, lo.Uniq(g.Config.WordSizes), lo.Uniq(g.Config.Delta))
			if err != nil {
				return err
			}
			files, err := g.writeDirection(ctx, d, configs)
			if err != nil {
				return fmt.Errorf("%s kernels: %w", d, err)
			}
			kernels[i], written[i] = configs, files
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []synth.Config
	var files []string
	for i := range dirs {
		all = append(all, kernels[i]...)
		files = append(files, written[i]...)
	}
	path, err := g.writeInstaller(all)
	if err != nil {
		return nil, err
	}
	return append(files, path), nil
}

func (g *Generator) writeDirection(ctx context.Context, d synth.Direction, configs []synth.Config) ([]string, error) {
	f := asm.NewFile(buildConstraint)
	opts := g.Config.Options()
	instructions := 0
	for _, c := range configs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats, err := synth.Synthesize(c, f, opts)
		if err != nil {
			return nil, err
		}
		instructions += stats.Instructions
		level.Debug(g.Logger).Log("msg", "synthesized kernel", "kernel", stats.Name,
			"instructions", stats.Instructions, "peak_vector", stats.PeakVector)
	}

	out, err := f.Render(g.Config.Package, g.Argv)
	if err != nil {
		return nil, err
	}
	base := filepath.Join(g.Config.Output, d.String()+"_amd64")
	stubs, err := imports.Process(base+".go", out.Stubs, nil)
	if err != nil {
		return nil, fmt.Errorf("formatting stubs: %w", err)
	}
	if err := writeFile(base+".s", out.Asm); err != nil {
		return nil, err
	}
	if err := writeFile(base+".go", stubs); err != nil {
		return nil, err
	}
	level.Info(g.Logger).Log("msg", "wrote kernels", "file", base+".s", "kernels", len(f.Kernels()),
		"instructions", instructions, "size", humanize.Bytes(uint64(len(out.Asm))))
	return []string{base + ".s", base + ".go"}, nil
}

// installer is one assignment in kernels_amd64.go.
type installer struct {
	Table    string
	BitWidth int
	Params   string
	Call     string
}

func newInstaller(c synth.Config) installer {
	elem := c.ElemType()
	table := strings.TrimSuffix(c.Name(), fmt.Sprintf("_%d", c.BitWidth)) + "Kernels"

	dst, src := "[]byte", "[]"+elem
	if c.Direction == synth.Unpack {
		dst, src = src, dst
	}
	seedParam, seedArg := "_", "nil"
	if c.Delta {
		seedParam, seedArg = "seed", "(*byte)(unsafe.Pointer(&seed[0]))"
	}
	return installer{
		Table:    table,
		BitWidth: c.BitWidth,
		Params:   fmt.Sprintf("dst %s, src %s, %s []%s", dst, src, seedParam, elem),
		Call:     fmt.Sprintf("%s(&src[0], &dst[0], 0, %s)", c.Name(), seedArg),
	}
}

var installerTemplate = template.Must(template.New("installer").Parse(`// Code generated by command: {{.Command}}. DO NOT EDIT.

//go:build amd64 && !purego

package {{.Package}}

import "unsafe"

func init() {
	if !useSIMD {
		return
	}
{{- range .Kernels}}
	{{.Table}}[{{.BitWidth}}] = func({{.Params}}) { {{.Call}} }
{{- end}}
	implementation = "{{.Implementation}}"
}
`))

// kernelFamilies is the number of dispatch tables in package bp128.
const kernelFamilies = 8

// implementationName reports "sse2" when every table is generated, and the
// generated families otherwise, e.g. "sse2:pack32,dpack32".
func implementationName(installers []installer) string {
	tables := lo.Uniq(lo.Map(installers, func(in installer, _ int) string {
		return strings.TrimSuffix(in.Table, "Kernels")
	}))
	if len(tables) == kernelFamilies {
		return "sse2"
	}
	return "sse2:" + strings.Join(tables, ",")
}

func (g *Generator) writeInstaller(configs []synth.Config) (string, error) {
	installers := make([]installer, len(configs))
	for i, c := range configs {
		installers[i] = newInstaller(c)
	}

	var buf bytes.Buffer
	err := installerTemplate.Execute(&buf, struct {
		Command        string
		Package        string
		Kernels        []installer
		Implementation string
	}{
		Command:        strings.Join(g.Argv, " "),
		Package:        g.Config.Package,
		Kernels:        installers,
		Implementation: implementationName(installers),
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.Config.Output, "kernels_amd64.go")
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("formatting %s: %w", path, err)
	}
	if err := writeFile(path, src); err != nil {
		return "", err
	}
	level.Info(g.Logger).Log("msg", "wrote dispatch", "file", path, "kernels", len(configs))
	return path, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
