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

// Package asm lowers synthesized kernels to Go assembly with avo.
package asm

import (
	"bytes"
	"fmt"

	"github.com/klauspost/asmfmt"
	"github.com/mmcloughlin/avo/attr"
	"github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/pass"
	"github.com/mmcloughlin/avo/printer"
	"github.com/mmcloughlin/avo/reg"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

var gpRegs = [ir.NumGeneral]reg.GPPhysical{
	reg.RAX, reg.RBX, reg.RCX, reg.RDX,
	reg.RSI, reg.RDI, reg.R8, reg.R9,
	reg.R10, reg.R11, reg.R12, reg.R13,
	reg.R14, reg.R15,
}

var vecRegs = [ir.NumVector]reg.VecPhysical{
	reg.X0, reg.X1, reg.X2, reg.X3,
	reg.X4, reg.X5, reg.X6, reg.X7,
	reg.X8, reg.X9, reg.X10, reg.X11,
	reg.X12, reg.X13, reg.X14, reg.X15,
}

// File collects kernels into one avo build context. It implements
// synth.Emitter.
type File struct {
	ctx     *build.Context
	sig     ir.Signature
	kernels []string
	err     error
}

// NewFile returns an empty File whose output is guarded by the build
// constraint expression (for example "amd64").
func NewFile(constraint string) *File {
	ctx := build.NewContext()
	if constraint != "" {
		ctx.ConstraintExpr(constraint)
	}
	return &File{ctx: ctx}
}

// Kernels returns the names of the kernels added so far.
func (f *File) Kernels() []string {
	return f.kernels
}

// Begin starts a NOSPLIT, noescape function with sig's Go signature.
func (f *File) Begin(sig ir.Signature) {
	f.ctx.Function(sig.Name)
	f.ctx.Attributes(attr.NOSPLIT)
	f.ctx.SignatureExpr(sig.GoType())
	f.ctx.Pragma("noescape")
	if len(sig.Doc) > 0 {
		f.ctx.Doc(sig.Doc...)
	}
	f.sig = sig
	f.kernels = append(f.kernels, sig.Name)
}

// Emit lowers one instruction.
func (f *File) Emit(in ir.Inst) {
	if f.err != nil {
		return
	}
	c := f.ctx
	switch in.Op {
	case ir.OpArg:
		if _, ok := f.sig.Param(in.Arg); !ok {
			f.fail(fmt.Errorf("asm: %s has no argument %q", f.sig.Name, in.Arg))
			return
		}
		c.Load(c.Param(in.Arg), f.gp(in.Dst))
	case ir.OpShlGP:
		c.SHLQ(f.imm(in.Imm), f.gp(in.Dst))
	case ir.OpAddGP:
		c.ADDQ(f.gp(in.Src), f.gp(in.Dst))
	case ir.OpLoad:
		c.MOVOU(f.mem(in.Mem), f.vec(in.Dst))
	case ir.OpStore:
		c.MOVOU(f.vec(in.Src), f.mem(in.Mem))
	case ir.OpMove:
		c.MOVO(f.vec(in.Src), f.vec(in.Dst))
	case ir.OpOr:
		c.POR(f.vec(in.Src), f.vec(in.Dst))
	case ir.OpAnd:
		c.PAND(f.vec(in.Src), f.vec(in.Dst))
	case ir.OpShl:
		if in.Lane == ir.Lane64 {
			c.PSLLQ(f.imm(in.Imm), f.vec(in.Dst))
		} else {
			c.PSLLL(f.imm(in.Imm), f.vec(in.Dst))
		}
	case ir.OpShr:
		if in.Lane == ir.Lane64 {
			c.PSRLQ(f.imm(in.Imm), f.vec(in.Dst))
		} else {
			c.PSRLL(f.imm(in.Imm), f.vec(in.Dst))
		}
	case ir.OpSub:
		if in.Lane == ir.Lane64 {
			c.PSUBQ(f.vec(in.Src), f.vec(in.Dst))
		} else {
			c.PSUBL(f.vec(in.Src), f.vec(in.Dst))
		}
	case ir.OpAdd:
		if in.Lane == ir.Lane64 {
			c.PADDQ(f.vec(in.Src), f.vec(in.Dst))
		} else {
			c.PADDL(f.vec(in.Src), f.vec(in.Dst))
		}
	case ir.OpOnes:
		c.PCMPEQL(f.vec(in.Dst), f.vec(in.Dst))
	case ir.OpRet:
		c.RET()
	default:
		f.fail(fmt.Errorf("asm: cannot lower %v", in.Op))
	}
}

// End is a no-op: avo closes a function when the next one begins.
func (f *File) End() {}

func (f *File) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *File) gp(r ir.Reg) reg.Register {
	if r.Class != ir.ClassGeneral || r.Index < 0 || r.Index >= len(gpRegs) {
		f.fail(fmt.Errorf("asm: %s is not a general-purpose register", r))
		return reg.RAX
	}
	return gpRegs[r.Index]
}

func (f *File) vec(r ir.Reg) reg.Register {
	if r.Class != ir.ClassVector || r.Index < 0 || r.Index >= len(vecRegs) {
		f.fail(fmt.Errorf("asm: %s is not a vector register", r))
		return reg.X0
	}
	return vecRegs[r.Index]
}

// imm converts a shift count or argument offset. Both are never negative.
func (f *File) imm(n int) operand.Constant {
	if n < 0 {
		f.fail(fmt.Errorf("asm: negative immediate %d", n))
		return operand.Imm(0)
	}
	return operand.Imm(uint64(n))
}

func (f *File) mem(m ir.Mem) operand.Mem {
	return operand.Mem{Base: f.gp(m.Base), Disp: m.Disp}
}

// Output is a rendered assembly file and its Go declarations.
type Output struct {
	Asm   []byte
	Stubs []byte
}

// Render compiles the collected functions and prints them. pkg is the Go
// package of the stubs; argv is recorded in the "Code generated" header.
func (f *File) Render(pkg string, argv []string) (Output, error) {
	if f.err != nil {
		return Output{}, f.err
	}
	file, err := f.ctx.Result()
	if err != nil {
		return Output{}, fmt.Errorf("asm: build: %w", err)
	}
	if err := pass.Compile.Execute(file); err != nil {
		return Output{}, fmt.Errorf("asm: compile: %w", err)
	}

	cfg := printer.Config{Name: "bp128gen", Argv: argv, Pkg: pkg}
	src, err := printer.NewGoAsm(cfg).Print(file)
	if err != nil {
		return Output{}, fmt.Errorf("asm: print assembly: %w", err)
	}
	stubs, err := printer.NewStubs(cfg).Print(file)
	if err != nil {
		return Output{}, fmt.Errorf("asm: print stubs: %w", err)
	}
	formatted, err := asmfmt.Format(bytes.NewReader(src))
	if err != nil {
		return Output{}, fmt.Errorf("asm: format: %w", err)
	}
	return Output{Asm: formatted, Stubs: stubs}, nil
}
