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

// Pool tracks which physical registers are free while one kernel is emitted.
//
// Each class is a queue: Acquire takes the front register and Release appends
// to the back, so registers are recycled in the order they were freed.
// Release does not check for double frees or aliasing.
type Pool struct {
	free [2][]ir.Reg
	live [2]int
	peak [2]int
}

// NewPool returns a pool holding the first general GP registers and the
// first vector X registers. Counts are clamped to the register files.
func NewPool(general, vector int) *Pool {
	general = min(max(general, 0), ir.NumGeneral)
	vector = min(max(vector, 0), ir.NumVector)

	p := &Pool{}
	for i := range general {
		p.free[ir.ClassGeneral] = append(p.free[ir.ClassGeneral], ir.GP(i))
	}
	for i := range vector {
		p.free[ir.ClassVector] = append(p.free[ir.ClassVector], ir.X(i))
	}
	return p
}

func (p *Pool) acquire(c ir.RegClass) (ir.Reg, error) {
	q := p.free[c]
	if len(q) == 0 {
		return ir.Reg{}, fmt.Errorf("%w: %w: no free %s register (%d live)", ErrInvalidConfig, ErrPoolExhausted, c, p.live[c])
	}
	r := q[0]
	p.free[c] = q[1:]
	p.live[c]++
	p.peak[c] = max(p.peak[c], p.live[c])
	return r, nil
}

// AcquireVector pops the next free vector register.
func (p *Pool) AcquireVector() (ir.Reg, error) {
	return p.acquire(ir.ClassVector)
}

// AcquireGeneral pops the next free general-purpose register.
func (p *Pool) AcquireGeneral() (ir.Reg, error) {
	return p.acquire(ir.ClassGeneral)
}

// Release returns r to the back of its pool.
func (p *Pool) Release(r ir.Reg) {
	p.free[r.Class] = append(p.free[r.Class], r)
	p.live[r.Class]--
}

// Free returns the number of free registers of class c.
func (p *Pool) Free(c ir.RegClass) int {
	return len(p.free[c])
}

// Live returns the number of registers of class c currently handed out.
func (p *Pool) Live(c ir.RegClass) int {
	return p.live[c]
}

// Peak returns the largest number of registers of class c live at once.
func (p *Pool) Peak(c ir.RegClass) int {
	return p.peak[c]
}
