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
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kernel is the complete instruction stream of one synthesized function.
// It is not modified once the Builder hands it out.
type Kernel struct {
	Signature
	Insts []Inst
}

// Name returns the kernel's symbol name.
func (k *Kernel) Name() string { return k.Signature.Name }

// Listing renders the kernel as Go assembler text, one instruction per line.
func (k *Kernel) Listing() string {
	var b strings.Builder
	b.WriteString("TEXT ·")
	b.WriteString(k.Signature.Name)
	b.WriteString("(SB), NOSPLIT, $0\n")
	for _, in := range k.Insts {
		b.WriteByte('\t')
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint hashes the listing. Two kernels with the same fingerprint emit
// the same instructions in the same order.
func (k *Kernel) Fingerprint() uint64 {
	return xxhash.Sum64String(k.Listing())
}

// Count returns how many instructions use op.
func (k *Kernel) Count(op Op) int {
	n := 0
	for _, in := range k.Insts {
		if in.Op == op {
			n++
		}
	}
	return n
}

// Builder records kernels emitted by the synthesizer.
type Builder struct {
	cur     *Kernel
	kernels []*Kernel
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Begin starts a new kernel. An unfinished kernel is discarded.
func (b *Builder) Begin(sig Signature) {
	b.cur = &Kernel{Signature: sig}
}

// Emit appends one instruction to the current kernel.
func (b *Builder) Emit(in Inst) {
	if b.cur == nil {
		panic("ir: Emit called outside Begin/End")
	}
	b.cur.Insts = append(b.cur.Insts, in)
}

// End finishes the current kernel.
func (b *Builder) End() {
	if b.cur == nil {
		return
	}
	b.kernels = append(b.kernels, b.cur)
	b.cur = nil
}

// Kernels returns every finished kernel in emission order.
func (b *Builder) Kernels() []*Kernel {
	return b.kernels
}

// Last returns the most recently finished kernel, or nil.
func (b *Builder) Last() *Kernel {
	if len(b.kernels) == 0 {
		return nil
	}
	return b.kernels[len(b.kernels)-1]
}
