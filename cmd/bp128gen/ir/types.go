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

// Package ir provides the instruction-level representation of a synthesized
// bp128 kernel: registers, memory operands, the straight-line instruction
// stream, a recording Builder and a Machine that interprets kernels.
package ir

import (
	"fmt"
	"strings"
)

// VectorBytes is the width of a vector register and of every vector load or store.
const VectorBytes = 16

// RegClass distinguishes general-purpose from vector registers.
type RegClass int

const (
	// ClassGeneral is a 64-bit general-purpose register.
	ClassGeneral RegClass = iota

	// ClassVector is a 128-bit SSE register.
	ClassVector
)

// String returns a human-readable name for the RegClass.
func (c RegClass) String() string {
	switch c {
	case ClassGeneral:
		return "general"
	case ClassVector:
		return "vector"
	default:
		return fmt.Sprintf("RegClass(%d)", c)
	}
}

// generalNames lists the allocatable amd64 general-purpose registers in pool order.
// SP and BP are never handed out.
var generalNames = [...]string{
	"AX", "BX", "CX", "DX",
	"SI", "DI", "R8", "R9",
	"R10", "R11", "R12", "R13",
	"R14", "R15",
}

// NumGeneral and NumVector are the sizes of the amd64 register files used by kernels.
const (
	NumGeneral = len(generalNames)
	NumVector  = 16
)

// Reg is a physical register.
type Reg struct {
	Class RegClass
	Index int
}

// GP returns general-purpose register i (0 is AX).
func GP(i int) Reg { return Reg{Class: ClassGeneral, Index: i} }

// X returns vector register Xi.
func X(i int) Reg { return Reg{Class: ClassVector, Index: i} }

// String returns the Go assembler name of the register.
func (r Reg) String() string {
	switch r.Class {
	case ClassGeneral:
		if r.Index >= 0 && r.Index < NumGeneral {
			return generalNames[r.Index]
		}
	case ClassVector:
		if r.Index >= 0 && r.Index < NumVector {
			return fmt.Sprintf("X%d", r.Index)
		}
	}
	return fmt.Sprintf("%s(%d)", r.Class, r.Index)
}

// Mem is a memory operand addressing Disp bytes past the pointer in Base.
type Mem struct {
	Base Reg
	Disp int
}

// Offset returns m displaced by n more bytes.
func (m Mem) Offset(n int) Mem {
	return Mem{Base: m.Base, Disp: m.Disp + n}
}

// String renders the operand in Go assembler syntax, e.g. "32(AX)".
func (m Mem) String() string {
	if m.Disp == 0 {
		return fmt.Sprintf("(%s)", m.Base)
	}
	return fmt.Sprintf("%d(%s)", m.Disp, m.Base)
}

// Lane is the element width, in bits, of lane-wise vector operations.
type Lane int

const (
	Lane32 Lane = 32
	Lane64 Lane = 64
)

// Bytes returns the lane width in bytes.
func (l Lane) Bytes() int { return int(l) / 8 }

// Count returns the number of lanes in one vector register.
func (l Lane) Count() int { return VectorBytes / l.Bytes() }

// Op is the operation performed by an instruction.
type Op int

const (
	// OpArg binds a function argument to a general-purpose register (Dst, Arg).
	// Imm holds the argument's frame offset.
	OpArg Op = iota

	// OpShlGP shifts a general-purpose register left by Imm.
	OpShlGP

	// OpAddGP adds Src into Dst (general-purpose).
	OpAddGP

	// OpLoad loads one vector from Mem into Dst.
	OpLoad

	// OpStore stores vector Src to Mem.
	OpStore

	// OpMove copies vector Src into Dst.
	OpMove

	// OpOr computes Dst |= Src.
	OpOr

	// OpAnd computes Dst &= Src.
	OpAnd

	// OpShl shifts every lane of Dst left by Imm bits.
	OpShl

	// OpShr shifts every lane of Dst right (logical) by Imm bits.
	OpShr

	// OpSub computes Dst -= Src lane-wise.
	OpSub

	// OpAdd computes Dst += Src lane-wise.
	OpAdd

	// OpOnes sets every bit of Dst.
	OpOnes

	// OpRet returns from the kernel.
	OpRet
)

// String returns a human-readable name for the Op.
func (o Op) String() string {
	switch o {
	case OpArg:
		return "Arg"
	case OpShlGP:
		return "ShlGP"
	case OpAddGP:
		return "AddGP"
	case OpLoad:
		return "Load"
	case OpStore:
		return "Store"
	case OpMove:
		return "Move"
	case OpOr:
		return "Or"
	case OpAnd:
		return "And"
	case OpShl:
		return "Shl"
	case OpShr:
		return "Shr"
	case OpSub:
		return "Sub"
	case OpAdd:
		return "Add"
	case OpOnes:
		return "Ones"
	case OpRet:
		return "Ret"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}

// Inst is a single emitted instruction. Which fields are meaningful depends on Op.
type Inst struct {
	Op   Op
	Lane Lane
	Dst  Reg
	Src  Reg
	Mem  Mem
	Imm  int
	Arg  string
}

// Mnemonic returns the Go assembler mnemonic for the instruction.
func (in Inst) Mnemonic() string {
	q := in.Lane == Lane64
	pick := func(d, qw string) string {
		if q {
			return qw
		}
		return d
	}
	switch in.Op {
	case OpArg:
		return "MOVQ"
	case OpShlGP:
		return "SHLQ"
	case OpAddGP:
		return "ADDQ"
	case OpLoad, OpStore:
		return "MOVOU"
	case OpMove:
		return "MOVO"
	case OpOr:
		return "POR"
	case OpAnd:
		return "PAND"
	case OpShl:
		return pick("PSLLL", "PSLLQ")
	case OpShr:
		return pick("PSRLL", "PSRLQ")
	case OpSub:
		return pick("PSUBL", "PSUBQ")
	case OpAdd:
		return pick("PADDL", "PADDQ")
	case OpOnes:
		return "PCMPEQL"
	case OpRet:
		return "RET"
	default:
		return in.Op.String()
	}
}

// String renders the instruction in Go assembler operand order (source first).
func (in Inst) String() string {
	m := in.Mnemonic()
	switch in.Op {
	case OpArg:
		return fmt.Sprintf("%s %s+%d(FP), %s", m, in.Arg, in.Imm, in.Dst)
	case OpShlGP, OpShl, OpShr:
		return fmt.Sprintf("%s $%d, %s", m, in.Imm, in.Dst)
	case OpLoad:
		return fmt.Sprintf("%s %s, %s", m, in.Mem, in.Dst)
	case OpStore:
		return fmt.Sprintf("%s %s, %s", m, in.Src, in.Mem)
	case OpOnes:
		return fmt.Sprintf("%s %s, %s", m, in.Dst, in.Dst)
	case OpRet:
		return m
	default:
		return fmt.Sprintf("%s %s, %s", m, in.Src, in.Dst)
	}
}

// Param is one kernel argument.
type Param struct {
	Name string
	Type string
}

// Signature names a kernel and declares its Go-visible arguments.
type Signature struct {
	Name   string
	Params []Param
	Doc    []string
}

// GoType returns the Go function type, e.g. "func(in *uint32, out *byte, inOffset int, seed *byte)".
func (s Signature) GoType() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return "func(" + strings.Join(parts, ", ") + ")"
}

// Param looks up an argument by name.
func (s Signature) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}
