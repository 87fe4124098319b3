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
	"errors"
	"fmt"
)

// ErrFault is returned when a kernel touches memory it was not given, or
// combines register values in a way no real pointer arithmetic allows.
var ErrFault = errors.New("machine fault")

// gpValue is the content of a general-purpose register: a plain integer, or a
// pointer into one of the bound regions.
type gpValue struct {
	ptr    bool
	region string
	off    int64
	val    int64
}

// Machine interprets kernels over byte slices bound to pointer arguments.
// It models SSE2 semantics: logical shifts that clear lanes when the count is
// at least the lane width, and wrap-around lane arithmetic.
type Machine struct {
	regions map[string][]byte
	ints    map[string]int64
	gp      [NumGeneral]gpValue
	vec     [NumVector][VectorBytes]byte

	// Executed counts instructions run since the Machine was created.
	Executed int
}

// NewMachine returns a Machine with no bound arguments.
func NewMachine() *Machine {
	return &Machine{
		regions: make(map[string][]byte),
		ints:    make(map[string]int64),
	}
}

// BindPointer makes the pointer argument name point at the start of mem.
// Stores through the pointer write into mem.
func (m *Machine) BindPointer(name string, mem []byte) {
	m.regions[name] = mem
}

// BindInt gives the integer argument name the value v.
func (m *Machine) BindInt(name string, v int64) {
	m.ints[name] = v
}

// Run executes k until its Ret instruction.
func (m *Machine) Run(k *Kernel) error {
	for pc, in := range k.Insts {
		m.Executed++
		if err := m.step(in); err != nil {
			return fmt.Errorf("%s: instruction %d (%s): %w", k.Signature.Name, pc, in, err)
		}
		if in.Op == OpRet {
			return nil
		}
	}
	return fmt.Errorf("%s: %w: fell off the end without RET", k.Signature.Name, ErrFault)
}

func (m *Machine) step(in Inst) error {
	switch in.Op {
	case OpArg:
		return m.bindArg(in)
	case OpShlGP:
		g := m.gpReg(in.Dst)
		if g == nil || g.ptr {
			return fmt.Errorf("%w: shift of pointer register %s", ErrFault, in.Dst)
		}
		g.val <<= uint(in.Imm)
	case OpAddGP:
		d, s := m.gpReg(in.Dst), m.gpReg(in.Src)
		if d == nil || s == nil {
			return fmt.Errorf("%w: bad general register", ErrFault)
		}
		switch {
		case d.ptr && s.ptr:
			return fmt.Errorf("%w: adding two pointers", ErrFault)
		case d.ptr:
			d.off += s.val
		case s.ptr:
			*d = gpValue{ptr: true, region: s.region, off: s.off + d.val}
		default:
			d.val += s.val
		}
	case OpLoad:
		src, err := m.address(in.Mem)
		if err != nil {
			return err
		}
		v := m.vecReg(in.Dst)
		if v == nil {
			return fmt.Errorf("%w: bad vector register %s", ErrFault, in.Dst)
		}
		copy(v[:], src)
	case OpStore:
		dst, err := m.address(in.Mem)
		if err != nil {
			return err
		}
		v := m.vecReg(in.Src)
		if v == nil {
			return fmt.Errorf("%w: bad vector register %s", ErrFault, in.Src)
		}
		copy(dst, v[:])
	case OpMove, OpOr, OpAnd, OpSub, OpAdd:
		d, s := m.vecReg(in.Dst), m.vecReg(in.Src)
		if d == nil || s == nil {
			return fmt.Errorf("%w: bad vector register", ErrFault)
		}
		m.binary(in, d, s)
	case OpShl, OpShr:
		d := m.vecReg(in.Dst)
		if d == nil {
			return fmt.Errorf("%w: bad vector register %s", ErrFault, in.Dst)
		}
		shiftLanes(d, in.Lane, in.Imm, in.Op == OpShl)
	case OpOnes:
		d := m.vecReg(in.Dst)
		if d == nil {
			return fmt.Errorf("%w: bad vector register %s", ErrFault, in.Dst)
		}
		for i := range d {
			d[i] = 0xff
		}
	case OpRet:
	default:
		return fmt.Errorf("%w: unknown op %v", ErrFault, in.Op)
	}
	return nil
}

func (m *Machine) bindArg(in Inst) error {
	g := m.gpReg(in.Dst)
	if g == nil {
		return fmt.Errorf("%w: bad general register %s", ErrFault, in.Dst)
	}
	if v, ok := m.ints[in.Arg]; ok {
		*g = gpValue{val: v}
		return nil
	}
	// Unbound pointers are nil: loading them is fine, dereferencing is not.
	*g = gpValue{ptr: true, region: in.Arg}
	return nil
}

// address resolves a memory operand to the 16 bytes it covers.
func (m *Machine) address(mem Mem) ([]byte, error) {
	g := m.gpReg(mem.Base)
	if g == nil || !g.ptr {
		return nil, fmt.Errorf("%w: %s is not a pointer", ErrFault, mem)
	}
	region, ok := m.regions[g.region]
	if !ok {
		return nil, fmt.Errorf("%w: %s dereferences unbound argument %q", ErrFault, mem, g.region)
	}
	off := g.off + int64(mem.Disp)
	if off < 0 || off+VectorBytes > int64(len(region)) {
		return nil, fmt.Errorf("%w: %s is outside %q (offset %d, size %d)", ErrFault, mem, g.region, off, len(region))
	}
	return region[off : off+VectorBytes], nil
}

func (m *Machine) gpReg(r Reg) *gpValue {
	if r.Class != ClassGeneral || r.Index < 0 || r.Index >= NumGeneral {
		return nil
	}
	return &m.gp[r.Index]
}

func (m *Machine) vecReg(r Reg) *[VectorBytes]byte {
	if r.Class != ClassVector || r.Index < 0 || r.Index >= NumVector {
		return nil
	}
	return &m.vec[r.Index]
}

func (m *Machine) binary(in Inst, d, s *[VectorBytes]byte) {
	switch in.Op {
	case OpMove:
		*d = *s
	case OpOr:
		for i := range d {
			d[i] |= s[i]
		}
	case OpAnd:
		for i := range d {
			d[i] &= s[i]
		}
	case OpSub, OpAdd:
		sub := in.Op == OpSub
		for l := 0; l < in.Lane.Count(); l++ {
			a, b := lane(d, in.Lane, l), lane(s, in.Lane, l)
			if sub {
				setLane(d, in.Lane, l, a-b)
			} else {
				setLane(d, in.Lane, l, a+b)
			}
		}
	}
}

func shiftLanes(d *[VectorBytes]byte, w Lane, n int, left bool) {
	for l := 0; l < w.Count(); l++ {
		v := lane(d, w, l)
		switch {
		case n >= int(w):
			v = 0
		case left:
			v <<= uint(n)
		default:
			v >>= uint(n)
		}
		setLane(d, w, l, v)
	}
}

func lane(v *[VectorBytes]byte, w Lane, l int) uint64 {
	if w == Lane64 {
		return binary.LittleEndian.Uint64(v[l*8:])
	}
	return uint64(binary.LittleEndian.Uint32(v[l*4:]))
}

// setLane truncates x to the lane width.
func setLane(v *[VectorBytes]byte, w Lane, l int, x uint64) {
	if w == Lane64 {
		binary.LittleEndian.PutUint64(v[l*8:], x)
		return
	}
	binary.LittleEndian.PutUint32(v[l*4:], uint32(x))
}
