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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bp128gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testGlobals(cfg *Config) (*Globals, *bytes.Buffer) {
	var out bytes.Buffer
	return &Globals{logger: log.NewNopLogger(), config: cfg, stdout: &out}, &out
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	kernels, err := cfg.Kernels()
	require.NoError(t, err)
	assert.Len(t, kernels, 384)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, "word_sizes: [32]\ndelta: [true]\nbuffer_depth: 2\n")
	cfg, err := LoadConfig(path, false)
	require.NoError(t, err)

	assert.Equal(t, []int{32}, cfg.WordSizes)
	assert.Equal(t, []bool{true}, cfg.Delta)
	assert.Equal(t, 2, cfg.BufferDepth)
	assert.Equal(t, "bp128", cfg.Package)
	assert.Equal(t, synth.DefaultOptions().VectorRegisters, cfg.VectorRegisters)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "word_size: [32]\n")
	_, err := LoadConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadConfigExpandEnv(t *testing.T) {
	t.Setenv("BP128_PACKAGE", "kernels")
	path := writeConfig(t, "package: ${BP128_PACKAGE}\n")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "kernels", cfg.Package)

	cfg, err = LoadConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, "${BP128_PACKAGE}", cfg.Package)
	assert.ErrorIs(t, cfg.Validate(), synth.ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordSizes = []int{16}
	cfg.Directions = []string{"sideways"}
	cfg.VectorRegisters = 17

	err := cfg.Validate()
	require.ErrorIs(t, err, synth.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "word size 16")
	assert.Contains(t, err.Error(), "sideways")
	assert.Contains(t, err.Error(), "vector registers 17")
}

func TestConfigKernelsDeduplicates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordSizes = []int{64, 64}
	cfg.Delta = []bool{false, false}
	cfg.Directions = []string{"unpack", "unpack"}

	kernels, err := cfg.Kernels()
	require.NoError(t, err)
	require.Len(t, kernels, 64)
	assert.Equal(t, "unpack64_1", kernels[0].Name())
	assert.Equal(t, "unpack64_64", kernels[63].Name())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	require.NoError(t, level.Info(logger).Log("msg", "hidden"))
	assert.Empty(t, buf.String())

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = t.TempDir()
	cfg.WordSizes = []int{32}
	require.NoError(t, cfg.Validate())

	gen := &Generator{Config: cfg, Logger: log.NewNopLogger(), Argv: []string{"bp128gen", "gen"}}
	files, err := gen.Generate(context.Background())
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{
		"pack_amd64.s", "pack_amd64.go",
		"unpack_amd64.s", "unpack_amd64.go",
		"kernels_amd64.go",
	}, names)

	asm, err := os.ReadFile(filepath.Join(cfg.Output, "pack_amd64.s"))
	require.NoError(t, err)
	assert.Contains(t, string(asm), "TEXT ·pack32_5(SB)")
	assert.Contains(t, string(asm), "TEXT ·dpack32_32(SB)")

	stubs, err := os.ReadFile(filepath.Join(cfg.Output, "unpack_amd64.go"))
	require.NoError(t, err)
	assert.Contains(t, string(stubs), "package bp128")
	assert.Contains(t, string(stubs), "func dunpack32_7(")

	installer, err := os.ReadFile(filepath.Join(cfg.Output, "kernels_amd64.go"))
	require.NoError(t, err)
	src := string(installer)
	assert.True(t, strings.HasPrefix(src, "// Code generated by command: bp128gen gen. DO NOT EDIT."))
	assert.Contains(t, src, "dpack32Kernels[7] = func(")
	assert.Contains(t, src, "unpack32Kernels[32] = func(")
	assert.Contains(t, src, `"unsafe"`)
	assert.NotContains(t, src, "pack64Kernels")
	assert.Contains(t, src, `implementation = "sse2:pack32,dpack32,unpack32,dunpack32"`)
}

func TestGenerateWithoutDelta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = t.TempDir()
	cfg.Delta = []bool{false}
	cfg.Directions = []string{"pack"}

	gen := &Generator{Config: cfg, Logger: log.NewNopLogger(), Argv: []string{"bp128gen"}}
	files, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, files, 3)

	installer, err := os.ReadFile(filepath.Join(cfg.Output, "kernels_amd64.go"))
	require.NoError(t, err)
	assert.Contains(t, string(installer), "pack64Kernels[64] = func(")
	assert.NotContains(t, string(installer), "dpack")
	assert.NotContains(t, string(installer), "unsafe")
	assert.Contains(t, string(installer), `implementation = "sse2:pack32,pack64"`)
}

func TestImplementationName(t *testing.T) {
	var all []installer
	for _, table := range []string{"pack32", "dpack32", "pack64", "dpack64", "unpack32", "dunpack32", "unpack64", "dunpack64"} {
		for b := 1; b <= 2; b++ {
			all = append(all, installer{Table: table + "Kernels", BitWidth: b})
		}
	}
	assert.Equal(t, "sse2", implementationName(all))
	assert.Equal(t, "sse2:pack32,dpack32", implementationName(all[:4]))
	assert.Equal(t, "sse2:unpack64", implementationName(all[12:14]))
}

func TestGenerateCanceled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := &Generator{Config: cfg, Logger: log.NewNopLogger()}
	_, err := gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directions = []string{"pack"}
	g, out := testGlobals(cfg)

	cmd := &listCmd{Match: "pack32", Width: 5}
	require.NoError(t, cmd.Run(g, context.Background()))
	assert.Contains(t, out.String(), "pack32_5")
	assert.Contains(t, out.String(), "dpack32_5")
	assert.NotContains(t, out.String(), "pack32_6")
	assert.NotContains(t, out.String(), "pack64_5")
	assert.Contains(t, strings.ToLower(out.String()), "2 kernels")
}

func TestVerifyCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordSizes = []int{32}
	g, _ := testGlobals(cfg)

	configs, err := synth.Enumerate(synth.Pack, cfg.WordSizes, cfg.Delta)
	require.NoError(t, err)
	checked, err := verifyKernels(context.Background(), g, configs, 4, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, len(configs), checked)

	cmd := &verifyCmd{Jobs: 2, Seed: 1, Rounds: 1}
	require.NoError(t, cmd.Run(g, context.Background()))
}
