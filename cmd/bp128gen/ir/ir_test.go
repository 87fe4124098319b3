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

package ir

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstString(t *testing.T) {
	tests := []struct {
		in   Inst
		want string
	}{
		{Inst{Op: OpArg, Dst: GP(2), Arg: "inOffset", Imm: 16}, "MOVQ inOffset+16(FP), CX"},
		{Inst{Op: OpShlGP, Dst: GP(2), Imm: 3}, "SHLQ $3, CX"},
		{Inst{Op: OpAddGP, Dst: GP(0), Src: GP(2)}, "ADDQ CX, AX"},
		{Inst{Op: OpLoad, Dst: X(3), Mem: Mem{Base: GP(0), Disp: 32}}, "MOVOU 32(AX), X3"},
		{Inst{Op: OpStore, Src: X(15), Mem: Mem{Base: GP(1)}}, "MOVOU X15, (BX)"},
		{Inst{Op: OpMove, Dst: X(1), Src: X(0)}, "MOVO X0, X1"},
		{Inst{Op: OpOr, Dst: X(1), Src: X(0)}, "POR X0, X1"},
		{Inst{Op: OpAnd, Dst: X(1), Src: X(9)}, "PAND X9, X1"},
		{Inst{Op: OpShl, Lane: Lane32, Dst: X(4), Imm: 5}, "PSLLL $5, X4"},
		{Inst{Op: OpShr, Lane: Lane64, Dst: X(4), Imm: 40}, "PSRLQ $40, X4"},
		{Inst{Op: OpSub, Lane: Lane64, Dst: X(2), Src: X(7)}, "PSUBQ X7, X2"},
		{Inst{Op: OpAdd, Lane: Lane32, Dst: X(2), Src: X(7)}, "PADDL X7, X2"},
		{Inst{Op: OpOnes, Dst: X(6)}, "PCMPEQL X6, X6"},
		{Inst{Op: OpRet}, "RET"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestRegAndMem(t *testing.T) {
	assert.Equal(t, "R15", GP(NumGeneral-1).String())
	assert.Equal(t, "X15", X(15).String())
	assert.Equal(t, "vector(16)", X(16).String())
	assert.Equal(t, Mem{Base: GP(0), Disp: 48}, Mem{Base: GP(0), Disp: 16}.Offset(32))
	assert.Equal(t, 4, Lane32.Count())
	assert.Equal(t, 2, Lane64.Count())
}

func TestSignature(t *testing.T) {
	sig := Signature{
		Name:   "pack32_3",
		Params: []Param{{Name: "in", Type: "*uint32"}, {Name: "out", Type: "*byte"}},
	}
	assert.Equal(t, "func(in *uint32, out *byte)", sig.GoType())
	p, ok := sig.Param("out")
	require.True(t, ok)
	assert.Equal(t, "*byte", p.Type)
	_, ok = sig.Param("seed")
	assert.False(t, ok)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	assert.Nil(t, b.Last())
	assert.Panics(t, func() { b.Emit(Inst{Op: OpRet}) })

	b.Begin(Signature{Name: "abandoned"})
	b.Emit(Inst{Op: OpMove, Dst: X(0), Src: X(1)})
	b.Begin(Signature{Name: "k"})
	b.Emit(Inst{Op: OpOr, Dst: X(0), Src: X(1)})
	b.Emit(Inst{Op: OpRet})
	b.End()
	b.End()

	require.Len(t, b.Kernels(), 1)
	k := b.Last()
	assert.Equal(t, "k", k.Name())
	assert.Equal(t, "TEXT ·k(SB), NOSPLIT, $0\n\tPOR X1, X0\n\tRET\n", k.Listing())
	assert.Equal(t, 1, k.Count(OpOr))
	assert.Zero(t, k.Count(OpMove))
}

func TestFingerprint(t *testing.T) {
	a := &Kernel{Signature: Signature{Name: "k"}, Insts: []Inst{{Op: OpShl, Lane: Lane32, Dst: X(0), Imm: 3}, {Op: OpRet}}}
	b := &Kernel{Signature: Signature{Name: "k"}, Insts: []Inst{{Op: OpShl, Lane: Lane32, Dst: X(0), Imm: 3}, {Op: OpRet}}}
	c := &Kernel{Signature: Signature{Name: "k"}, Insts: []Inst{{Op: OpShl, Lane: Lane32, Dst: X(0), Imm: 4}, {Op: OpRet}}}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func le32(vs ...uint32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[4*i:], v)
	}
	return b
}

func le64(vs ...uint64) []byte {
	b := make([]byte, 8*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint64(b[8*i:], v)
	}
	return b
}

func TestMachineLaneOps(t *testing.T) {
	// out = ((in << 4) | in) >> 2, then minus the seed vector, stored at out+16.
	k := &Kernel{
		Signature: Signature{Name: "lanes"},
		Insts: []Inst{
			{Op: OpArg, Dst: GP(0), Arg: "in", Imm: 0},
			{Op: OpArg, Dst: GP(1), Arg: "out", Imm: 8},
			{Op: OpArg, Dst: GP(2), Arg: "seed", Imm: 16},
			{Op: OpLoad, Dst: X(0), Mem: Mem{Base: GP(0)}},
			{Op: OpMove, Dst: X(1), Src: X(0)},
			{Op: OpShl, Lane: Lane32, Dst: X(1), Imm: 4},
			{Op: OpOr, Dst: X(1), Src: X(0)},
			{Op: OpShr, Lane: Lane32, Dst: X(1), Imm: 2},
			{Op: OpLoad, Dst: X(2), Mem: Mem{Base: GP(2)}},
			{Op: OpSub, Lane: Lane32, Dst: X(1), Src: X(2)},
			{Op: OpStore, Src: X(1), Mem: Mem{Base: GP(1), Disp: 16}},
			{Op: OpRet},
		},
	}
	m := NewMachine()
	out := make([]byte, 32)
	m.BindPointer("in", le32(1, 2, 0xF000_0000, 3))
	m.BindPointer("out", out)
	m.BindPointer("seed", le32(0, 10, 0, 1))
	require.NoError(t, m.Run(k))

	want := le32(
		(1<<4|1)>>2,
		^uint32(1), // 8 - 10 wraps
		0xF000_0000>>2,
		(3<<4|3)>>2-1,
	)
	if diff := cmp.Diff(append(make([]byte, 16), want...), out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(k.Insts), m.Executed)
}

func TestMachineWrapAndShiftOut(t *testing.T) {
	m := NewMachine()
	out := make([]byte, 16)
	m.BindPointer("in", le64(5, 1<<63))
	m.BindPointer("out", out)
	k := &Kernel{
		Signature: Signature{Name: "wrap"},
		Insts: []Inst{
			{Op: OpArg, Dst: GP(0), Arg: "in"},
			{Op: OpArg, Dst: GP(1), Arg: "out", Imm: 8},
			{Op: OpLoad, Dst: X(0), Mem: Mem{Base: GP(0)}},
			{Op: OpMove, Dst: X(1), Src: X(0)},
			{Op: OpAdd, Lane: Lane64, Dst: X(1), Src: X(0)},
			{Op: OpOnes, Dst: X(2)},
			{Op: OpShr, Lane: Lane64, Dst: X(2), Imm: 64},
			{Op: OpOr, Dst: X(1), Src: X(2)},
			{Op: OpStore, Src: X(1), Mem: Mem{Base: GP(1)}},
			{Op: OpRet},
		},
	}
	require.NoError(t, m.Run(k))
	assert.Equal(t, le64(10, 0), out)
}

func TestMachineOffsetArgument(t *testing.T) {
	m := NewMachine()
	in := le32(0, 0, 0, 7, 8, 9, 10)
	out := make([]byte, 16)
	m.BindPointer("in", in)
	m.BindPointer("out", out)
	m.BindInt("off", 3)
	k := &Kernel{
		Signature: Signature{Name: "offset"},
		Insts: []Inst{
			{Op: OpArg, Dst: GP(0), Arg: "in"},
			{Op: OpArg, Dst: GP(1), Arg: "out", Imm: 8},
			{Op: OpArg, Dst: GP(2), Arg: "off", Imm: 16},
			{Op: OpShlGP, Dst: GP(2), Imm: 2},
			{Op: OpAddGP, Dst: GP(0), Src: GP(2)},
			{Op: OpLoad, Dst: X(0), Mem: Mem{Base: GP(0)}},
			{Op: OpStore, Src: X(0), Mem: Mem{Base: GP(1)}},
			{Op: OpRet},
		},
	}
	require.NoError(t, m.Run(k))
	assert.Equal(t, le32(7, 8, 9, 10), out)
}

func TestMachineFaults(t *testing.T) {
	tests := []struct {
		name  string
		insts []Inst
	}{
		{
			name: "out of bounds",
			insts: []Inst{
				{Op: OpArg, Dst: GP(0), Arg: "in"},
				{Op: OpLoad, Dst: X(0), Mem: Mem{Base: GP(0), Disp: 16}},
				{Op: OpRet},
			},
		},
		{
			name: "unbound pointer",
			insts: []Inst{
				{Op: OpArg, Dst: GP(0), Arg: "seed"},
				{Op: OpLoad, Dst: X(0), Mem: Mem{Base: GP(0)}},
				{Op: OpRet},
			},
		},
		{
			name: "missing ret",
			insts: []Inst{
				{Op: OpArg, Dst: GP(0), Arg: "in"},
			},
		},
		{
			name: "shift pointer",
			insts: []Inst{
				{Op: OpArg, Dst: GP(0), Arg: "in"},
				{Op: OpShlGP, Dst: GP(0), Imm: 2},
				{Op: OpRet},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.BindPointer("in", make([]byte, 16))
			err := m.Run(&Kernel{Signature: Signature{Name: "bad"}, Insts: tt.insts})
			require.ErrorIs(t, err, ErrFault)
		})
	}
}

func TestMachineUnusedNilPointer(t *testing.T) {
	m := NewMachine()
	k := &Kernel{
		Signature: Signature{Name: "nilseed"},
		Insts: []Inst{
			{Op: OpArg, Dst: GP(3), Arg: "seed", Imm: 24},
			{Op: OpRet},
		},
	}
	require.NoError(t, m.Run(k))
}
