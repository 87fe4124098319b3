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

// Package synth generates straight-line SSE2 kernels that pack and unpack
// 128-integer blocks at a fixed bit width.
//
// A kernel is described by a Config and emitted instruction by instruction
// to an Emitter. The ir.Builder emitter records kernels for simulation with
// ir.Machine; the asm package emits Go assembly.
package synth

import (
	"fmt"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

// Emitter receives the instructions of one kernel at a time.
type Emitter interface {
	Begin(sig ir.Signature)
	Emit(in ir.Inst)
	End()
}

// Stats summarizes one synthesized kernel.
type Stats struct {
	Name         string
	Instructions int
	Loads        int
	Stores       int
	PeakVector   int
	PeakGeneral  int
}

type countingEmitter struct {
	Emitter
	stats *Stats
}

func (c countingEmitter) Emit(in ir.Inst) {
	c.stats.Instructions++
	switch in.Op {
	case ir.OpLoad:
		c.stats.Loads++
	case ir.OpStore:
		c.stats.Stores++
	}
	c.Emitter.Emit(in)
}

// Synthesize emits the kernel described by cfg to e.
//
// On error the kernel is left unfinished: End is not called.
func Synthesize(cfg Config, e Emitter, opts Options) (Stats, error) {
	stats := Stats{Name: cfg.Name()}
	if err := cfg.Validate(); err != nil {
		return stats, err
	}
	if opts.BufferDepth < 1 {
		return stats, fmt.Errorf("%w: buffer depth %d", ErrInvalidConfig, opts.BufferDepth)
	}

	pool := NewPool(opts.GeneralRegisters, opts.VectorRegisters)
	ce := countingEmitter{Emitter: e, stats: &stats}
	ce.Begin(cfg.Signature())

	f, err := prologue(cfg, pool, ce)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", cfg.Name(), err)
	}
	if cfg.Direction == Pack {
		err = packBody(cfg, f, pool, ce, opts)
	} else {
		err = unpackBody(cfg, f, pool, ce, opts)
	}
	if err != nil {
		return stats, fmt.Errorf("%s: %w", cfg.Name(), err)
	}
	if n := pool.Live(ir.ClassVector); n != 0 {
		return stats, fmt.Errorf("%s: %w: %d vector registers still live at return", cfg.Name(), ErrInvariant, n)
	}
	ce.Emit(ir.Inst{Op: ir.OpRet})
	ce.End()

	stats.PeakVector = pool.Peak(ir.ClassVector)
	stats.PeakGeneral = pool.Peak(ir.ClassGeneral)
	return stats, nil
}

// frame holds the registers the arguments were loaded into. The block
// pointer (in for pack, out for unpack) already includes the element offset.
type frame struct {
	in, out, seed ir.Reg
}

func prologue(cfg Config, pool *Pool, e Emitter) (frame, error) {
	sig := cfg.Signature()
	regs := make([]ir.Reg, len(sig.Params))
	for i, p := range sig.Params {
		r, err := pool.AcquireGeneral()
		if err != nil {
			return frame{}, err
		}
		e.Emit(ir.Inst{Op: ir.OpArg, Dst: r, Arg: p.Name, Imm: 8 * i})
		regs[i] = r
	}
	f := frame{in: regs[0], out: regs[1], seed: regs[3]}
	offset := regs[2]

	scale := 2
	if cfg.WordSize == 64 {
		scale = 3
	}
	base := f.in
	if cfg.Direction == Unpack {
		base = f.out
	}
	e.Emit(ir.Inst{Op: ir.OpShlGP, Dst: offset, Imm: scale})
	e.Emit(ir.Inst{Op: ir.OpAddGP, Dst: base, Src: offset})
	pool.Release(offset)
	return f, nil
}

func vectors(base ir.Reg, n int) []ir.Mem {
	mems := make([]ir.Mem, n)
	for i := range mems {
		mems[i] = ir.Mem{Base: base, Disp: i * ir.VectorBytes}
	}
	return mems
}

func packBody(cfg Config, f frame, pool *Pool, e Emitter, opts Options) error {
	steps, err := PackSchedule(cfg.WordSize, cfg.BitWidth)
	if err != nil {
		return err
	}
	b := newBuffers(pool, e, cfg.Lane(), opts.BufferDepth, vectors(f.in, cfg.WordSize), ir.Mem{Base: f.out})
	if cfg.Delta {
		b.EnableDelta(ir.Mem{Base: f.seed})
	}

	next := func() (ir.Reg, error) {
		v, err := b.Next()
		if err != nil {
			return v, err
		}
		return v, b.Code(v)
	}

	for _, s := range steps {
		switch s.Kind {
		case StepMerge:
			v, err := next()
			if err != nil {
				return err
			}
			b.ShiftLeft(v, s.Shift)
		case StepStore:
			if err := b.Store(); err != nil {
				return err
			}
		case StepSplit:
			v, err := next()
			if err != nil {
				return err
			}
			carry, err := b.Copy(v)
			if err != nil {
				return err
			}
			b.ShiftLeft(v, s.Shift)
			if err := b.Store(); err != nil {
				return err
			}
			b.ShiftRight(carry, s.Carry)
		}
	}
	return b.Finish()
}

func unpackBody(cfg Config, f frame, pool *Pool, e Emitter, opts Options) error {
	fields, err := UnpackSchedule(cfg.WordSize, cfg.BitWidth)
	if err != nil {
		return err
	}
	b := newBuffers(pool, e, cfg.Lane(), opts.BufferDepth, vectors(f.in, cfg.BitWidth), ir.Mem{Base: f.out})
	if cfg.Delta {
		b.EnableDelta(ir.Mem{Base: f.seed})
	}

	var mask ir.Reg
	masked := cfg.BitWidth < cfg.WordSize
	if masked {
		if mask, err = b.Mask(cfg.BitWidth); err != nil {
			return err
		}
	}

	var cur ir.Reg
	loaded := false
	for _, fd := range fields {
		if !loaded {
			if cur, err = b.Next(); err != nil {
				return err
			}
			loaded = true
		}

		v := cur
		if fd.Last {
			loaded = false
		} else if v, err = b.Copy(cur); err != nil {
			return err
		}
		if fd.Shift != 0 {
			e.Emit(ir.Inst{Op: ir.OpShr, Lane: cfg.Lane(), Dst: v, Imm: fd.Shift})
		}

		if fd.Straddle {
			if cur, err = b.Next(); err != nil {
				return err
			}
			loaded = true
			hi, err := b.Copy(cur)
			if err != nil {
				return err
			}
			e.Emit(ir.Inst{Op: ir.OpShl, Lane: cfg.Lane(), Dst: hi, Imm: cfg.WordSize - fd.Shift})
			e.Emit(ir.Inst{Op: ir.OpOr, Dst: v, Src: hi})
			b.Release(hi)
		}

		// A field ending exactly at the top of its word needs no mask.
		if masked && (fd.Straddle || !fd.Last) {
			e.Emit(ir.Inst{Op: ir.OpAnd, Dst: v, Src: mask})
		}
		if err := b.Integrate(v); err != nil {
			return err
		}
		b.StoreValue(v)
	}

	if loaded {
		return fmt.Errorf("%w: packed word still live after the last field", ErrInvariant)
	}
	if masked {
		b.Release(mask)
	}
	return b.Finish()
}
