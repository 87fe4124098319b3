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

package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

func render(t *testing.T, configs ...synth.Config) Output {
	t.Helper()
	f := NewFile("amd64")
	for _, cfg := range configs {
		_, err := synth.Synthesize(cfg, f, synth.DefaultOptions())
		require.NoError(t, err, cfg.Name())
	}
	out, err := f.Render("bp128", []string{"bp128gen", "gen"})
	require.NoError(t, err)
	return out
}

func TestRenderPackKernels(t *testing.T) {
	out := render(t,
		synth.Config{Direction: synth.Pack, WordSize: 32, BitWidth: 5},
		synth.Config{Direction: synth.Pack, WordSize: 64, BitWidth: 40, Delta: true},
	)
	src := string(out.Asm)
	assert.Contains(t, src, "Code generated")
	assert.Contains(t, src, "textflag.h")
	assert.Contains(t, src, "·pack32_5(SB)")
	assert.Contains(t, src, "·dpack64_40(SB)")
	for _, m := range []string{"MOVOU", "POR", "PSLLL", "PSRLL", "PSLLQ", "PSUBQ", "SHLQ", "ADDQ"} {
		assert.Contains(t, src, m)
	}
	assert.Equal(t, 2, strings.Count(src, "RET"))

	stubs := string(out.Stubs)
	assert.Contains(t, stubs, "package bp128")
	assert.Contains(t, stubs, "func pack32_5(in *uint32, out *byte, inOffset int, seed *byte)")
	assert.Contains(t, stubs, "func dpack64_40(in *uint64, out *byte, inOffset int, seed *byte)")
	assert.Contains(t, stubs, "amd64")
}

func TestRenderUnpackKernels(t *testing.T) {
	out := render(t,
		synth.Config{Direction: synth.Unpack, WordSize: 32, BitWidth: 7, Delta: true},
		synth.Config{Direction: synth.Unpack, WordSize: 64, BitWidth: 64},
	)
	src := string(out.Asm)
	for _, m := range []string{"PAND", "PCMPEQL", "PADDL"} {
		assert.Contains(t, src, m)
	}
	assert.Contains(t, string(out.Stubs), "func unpack64_64(in *byte, out *uint64, outOffset int, seed *byte)")
}

func TestFileKernels(t *testing.T) {
	f := NewFile("")
	f.Begin(ir.Signature{Name: "noop"})
	f.Emit(ir.Inst{Op: ir.OpRet})
	f.End()
	assert.Equal(t, []string{"noop"}, f.Kernels())
}

func TestRejectsBadRegister(t *testing.T) {
	f := NewFile("amd64")
	f.Begin(ir.Signature{Name: "bad", Params: []ir.Param{{Name: "in", Type: "*byte"}}})
	f.Emit(ir.Inst{Op: ir.OpLoad, Dst: ir.GP(0), Mem: ir.Mem{Base: ir.GP(0)}})
	f.Emit(ir.Inst{Op: ir.OpRet})
	_, err := f.Render("bp128", nil)
	require.Error(t, err)
}

func TestRenderImmediatesAndPragmas(t *testing.T) {
	out := render(t, synth.Config{Direction: synth.Pack, WordSize: 32, BitWidth: 5})
	src := string(out.Asm)
	assert.Contains(t, src, "$0x02, CX")
	assert.Contains(t, src, "$0x05, X1")
	assert.Contains(t, src, "TEXT ·pack32_5(SB), NOSPLIT, $0-32")
	assert.Contains(t, src, "// Requires: SSE2")
	assert.Contains(t, string(out.Stubs), "//go:noescape\nfunc pack32_5(")
}

func TestRejectsNegativeImmediate(t *testing.T) {
	f := NewFile("amd64")
	f.Begin(ir.Signature{Name: "bad"})
	f.Emit(ir.Inst{Op: ir.OpShl, Lane: ir.Lane32, Dst: ir.X(0), Imm: -1})
	f.Emit(ir.Inst{Op: ir.OpRet})
	_, err := f.Render("bp128", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative immediate")
}

func TestRejectsUnknownArgument(t *testing.T) {
	f := NewFile("amd64")
	f.Begin(ir.Signature{Name: "bad", Params: []ir.Param{{Name: "in", Type: "*byte"}}})
	f.Emit(ir.Inst{Op: ir.OpArg, Dst: ir.GP(0), Arg: "out"})
	f.Emit(ir.Inst{Op: ir.OpRet})
	_, err := f.Render("bp128", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no argument "out"`)
}
