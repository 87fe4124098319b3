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

// Command bp128gen synthesizes the SSE2 bit-packing kernels used by package bp128.
//
// Usage:
//
//	bp128gen gen --output ./bp128 --package bp128   # write the assembly and wrappers
//	bp128gen list --width 5                         # show instruction counts
//	bp128gen verify                                 # simulate every kernel
//
// Or via go:generate from the bp128 package:
//
//	//go:generate go run ../cmd/bp128gen gen --output . --package bp128
//
// For every word size W (32 or 64), bit width B in 1..W and delta setting,
// gen emits one straight-line pack kernel and one unpack kernel:
//  1. pack_amd64.s / pack_amd64.go with pack{W}_B and dpack{W}_B
//  2. unpack_amd64.s / unpack_amd64.go with unpack{W}_B and dunpack{W}_B
//  3. kernels_amd64.go, which installs them into the bp128 dispatch tables
//
// The set of kernels and the register budget can be narrowed with a YAML file
// passed as --config:
//
//	package: bp128
//	output: ./bp128
//	word_sizes: [32, 64]
//	delta: [false, true]
//	directions: [pack, unpack]
//	buffer_depth: 4
//	vector_registers: 16
//	general_registers: 14
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Globals are the flags shared by every command.
type Globals struct {
	ConfigFile string `name:"config" help:"YAML configuration file." type:"existingfile" placeholder:"FILE"`
	ExpandEnv  bool   `name:"config.expand-env" help:"Expand environment variable references in the configuration file."`
	LogLevel   string `name:"log.level" help:"Only log records at or above this level." default:"info" enum:"debug,info,warn,error"`

	logger log.Logger `kong:"-"`
	config *Config    `kong:"-"`
	stdout io.Writer  `kong:"-"`
}

func (g *Globals) setup() error {
	logger, err := newLogger(os.Stderr, g.LogLevel)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(g.ConfigFile, g.ExpandEnv)
	if err != nil {
		return err
	}
	g.logger, g.config, g.stdout = logger, cfg, os.Stdout
	return nil
}

type cli struct {
	Globals

	Gen    genCmd    `cmd:"" help:"Generate the assembly kernels and their Go wrappers."`
	List   listCmd   `cmd:"" help:"List kernels with their instruction counts and fingerprints."`
	Verify verifyCmd `cmd:"" help:"Simulate every kernel and compare it with the portable Go kernels."`
}

func main() {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("bp128gen"),
		kong.Description("Synthesizes SSE2 bit-packing kernels for package bp128."),
		kong.UsageOnError(),
	)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(c.Globals.setup())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(&c.Globals); err != nil {
		level.Error(c.logger).Log("msg", "bp128gen failed", "cmd", kctx.Command(), "err", err)
		stop()
		os.Exit(1)
	}
}
