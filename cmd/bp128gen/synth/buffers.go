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

package synth

import (
	"fmt"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

// Buffers owns the vector registers of one kernel that are not scratch:
// prefetched inputs, the pending values of the output word being built, and
// the delta predictor.
//
// Inputs are loaded depth at a time. Whenever the pool runs low, the pending
// list is OR-folded down to a single register to make room.
type Buffers struct {
	pool  *Pool
	emit  Emitter
	lane  ir.Lane
	depth int
	delta bool

	inputs  []ir.Mem
	buffer  []ir.Reg
	pending []ir.Reg

	out ir.Mem

	seed      ir.Mem
	predictor ir.Reg
	hasPred   bool
}

func newBuffers(pool *Pool, emit Emitter, lane ir.Lane, depth int, inputs []ir.Mem, out ir.Mem) *Buffers {
	return &Buffers{
		pool:   pool,
		emit:   emit,
		lane:   lane,
		depth:  depth,
		inputs: inputs,
		out:    out,
	}
}

// EnableDelta makes Code and Integrate use the vector at seed as the first
// predictor. The seed is loaded on first use.
func (b *Buffers) EnableDelta(seed ir.Mem) {
	b.delta = true
	b.seed = seed
}

// acquire returns a free vector register, folding the pending list first if
// the pool is empty.
func (b *Buffers) acquire() (ir.Reg, error) {
	if b.pool.Free(ir.ClassVector) == 0 {
		b.Fold()
	}
	return b.pool.AcquireVector()
}

func (b *Buffers) refill() error {
	n := min(b.depth, len(b.inputs))
	if n == 0 {
		return fmt.Errorf("%w: no input vectors left to load", ErrInvariant)
	}
	if b.pool.Free(ir.ClassVector) < n {
		b.Fold()
	}
	for range n {
		r, err := b.pool.AcquireVector()
		if err != nil {
			return err
		}
		b.emit.Emit(ir.Inst{Op: ir.OpLoad, Dst: r, Mem: b.inputs[0]})
		b.inputs = b.inputs[1:]
		b.buffer = append(b.buffer, r)
	}
	return nil
}

// Next hands out the next input vector in order. The caller owns it.
func (b *Buffers) Next() (ir.Reg, error) {
	if len(b.buffer) == 0 {
		if err := b.refill(); err != nil {
			return ir.Reg{}, err
		}
	}
	r := b.buffer[0]
	b.buffer = b.buffer[1:]
	return r, nil
}

// Fold ORs the pending list pairwise down to one register and returns it.
// ok is false when nothing is pending.
func (b *Buffers) Fold() (r ir.Reg, ok bool) {
	for len(b.pending) > 1 {
		src, dst := b.pending[0], b.pending[1]
		b.emit.Emit(ir.Inst{Op: ir.OpOr, Dst: dst, Src: src})
		b.pool.Release(src)
		b.pending = append(b.pending[2:], dst)
	}
	if len(b.pending) == 0 {
		return ir.Reg{}, false
	}
	return b.pending[0], true
}

// Copy duplicates v into a fresh register.
func (b *Buffers) Copy(v ir.Reg) (ir.Reg, error) {
	r, err := b.acquire()
	if err != nil {
		return ir.Reg{}, err
	}
	b.emit.Emit(ir.Inst{Op: ir.OpMove, Dst: r, Src: v})
	return r, nil
}

// Release returns a register the caller owns to the pool.
func (b *Buffers) Release(r ir.Reg) {
	b.pool.Release(r)
}

func (b *Buffers) loadPredictor() error {
	if b.hasPred {
		return nil
	}
	r, err := b.acquire()
	if err != nil {
		return err
	}
	b.emit.Emit(ir.Inst{Op: ir.OpLoad, Dst: r, Mem: b.seed})
	b.predictor, b.hasPred = r, true
	return nil
}

// Code replaces v by v minus the predictor and makes v's raw value the new
// predictor. It is a no-op without delta.
func (b *Buffers) Code(v ir.Reg) error {
	if !b.delta {
		return nil
	}
	if err := b.loadPredictor(); err != nil {
		return err
	}
	raw, err := b.Copy(v)
	if err != nil {
		return err
	}
	b.emit.Emit(ir.Inst{Op: ir.OpSub, Lane: b.lane, Dst: v, Src: b.predictor})
	b.pool.Release(b.predictor)
	b.predictor = raw
	return nil
}

// Integrate adds the predictor to v, which becomes the new predictor. It is a
// no-op without delta.
func (b *Buffers) Integrate(v ir.Reg) error {
	if !b.delta {
		return nil
	}
	if err := b.loadPredictor(); err != nil {
		return err
	}
	b.emit.Emit(ir.Inst{Op: ir.OpAdd, Lane: b.lane, Dst: v, Src: b.predictor})
	b.pool.Release(b.predictor)
	b.predictor = v
	return nil
}

// ShiftLeft shifts v left by n bits and appends it to the pending list.
func (b *Buffers) ShiftLeft(v ir.Reg, n int) {
	if n != 0 {
		b.emit.Emit(ir.Inst{Op: ir.OpShl, Lane: b.lane, Dst: v, Imm: n})
	}
	b.pending = append(b.pending, v)
}

// ShiftRight shifts v right by n bits and appends it to the pending list.
func (b *Buffers) ShiftRight(v ir.Reg, n int) {
	if n != 0 {
		b.emit.Emit(ir.Inst{Op: ir.OpShr, Lane: b.lane, Dst: v, Imm: n})
	}
	b.pending = append(b.pending, v)
}

// Store folds the pending list, writes the result to the next output vector
// and frees it.
func (b *Buffers) Store() error {
	r, ok := b.Fold()
	if !ok {
		return fmt.Errorf("%w: store with nothing pending at %s", ErrInvariant, b.out)
	}
	b.emit.Emit(ir.Inst{Op: ir.OpStore, Src: r, Mem: b.out})
	b.out = b.out.Offset(ir.VectorBytes)
	b.pool.Release(r)
	b.pending = b.pending[:0]
	return nil
}

// StoreValue writes v to the next output vector. v is freed unless it is the
// predictor.
func (b *Buffers) StoreValue(v ir.Reg) {
	b.emit.Emit(ir.Inst{Op: ir.OpStore, Src: v, Mem: b.out})
	b.out = b.out.Offset(ir.VectorBytes)
	if !b.hasPred || v != b.predictor {
		b.pool.Release(v)
	}
}

// Mask returns a register with the low bitWidth bits of every lane set.
func (b *Buffers) Mask(bitWidth int) (ir.Reg, error) {
	r, err := b.acquire()
	if err != nil {
		return ir.Reg{}, err
	}
	b.emit.Emit(ir.Inst{Op: ir.OpOnes, Dst: r})
	if n := int(b.lane) - bitWidth; n > 0 {
		b.emit.Emit(ir.Inst{Op: ir.OpShr, Lane: b.lane, Dst: r, Imm: n})
	}
	return r, nil
}

// Finish checks that every input was consumed and nothing is left pending,
// then writes the predictor back to the seed.
func (b *Buffers) Finish() error {
	if n := len(b.inputs) + len(b.buffer); n != 0 {
		return fmt.Errorf("%w: %d input vectors never consumed", ErrInvariant, n)
	}
	if len(b.pending) != 0 {
		return fmt.Errorf("%w: %d values pending after the last store", ErrInvariant, len(b.pending))
	}
	if b.delta {
		if err := b.loadPredictor(); err != nil {
			return err
		}
		b.emit.Emit(ir.Inst{Op: ir.OpStore, Src: b.predictor, Mem: b.seed})
		b.pool.Release(b.predictor)
		b.hasPred = false
	}
	return nil
}
