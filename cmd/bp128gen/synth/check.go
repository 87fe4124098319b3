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
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ajroetker/go-bp128/bp128"
	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

// checkOffset is the element offset passed to kernels under Check, so the
// offset scaling in the prologue is exercised.
const checkOffset = 3

// Build synthesizes cfg into a recorded kernel.
func Build(cfg Config, opts Options) (*ir.Kernel, Stats, error) {
	b := ir.NewBuilder()
	stats, err := Synthesize(cfg, b, opts)
	if err != nil {
		return nil, stats, err
	}
	return b.Last(), stats, nil
}

// Check synthesizes both the pack and the unpack kernel for cfg's word size,
// bit width and delta setting, runs them on an ir.Machine over a random block,
// and compares against the portable kernels in package bp128. cfg.Direction
// is ignored.
//
// The pack kernel must write exactly the reference bytes and nothing past
// them, and the unpack kernel must restore the block. With delta both must
// leave the last vector in the seed.
func Check(cfg Config, opts Options, r *rand.Rand) error {
	pk, _, err := Build(packConfig(cfg), opts)
	if err != nil {
		return err
	}
	uk, _, err := Build(unpackConfig(cfg), opts)
	if err != nil {
		return err
	}
	if cfg.WordSize == 32 {
		return check[uint32](cfg, pk, uk, r)
	}
	return check[uint64](cfg, pk, uk, r)
}

func check[T bp128.Word](cfg Config, pk, uk *ir.Kernel, r *rand.Rand) error {
	lanes := ir.VectorBytes * 8 / cfg.WordSize
	values, seed := randomBlock[T](cfg, lanes, r)

	want := make([]byte, bp128.PackedSize(cfg.BitWidth))
	var wantSeed []T
	if cfg.Delta {
		wantSeed = slices.Clone(seed)
	}
	bp128.PackGeneric(want, values, cfg.BitWidth, wantSeed)

	// Pack: input placed checkOffset elements in, one guard vector after the output.
	m := ir.NewMachine()
	in := encode(append(make([]T, checkOffset), values...))
	out := make([]byte, len(want)+ir.VectorBytes)
	seedMem := encode(seed)
	m.BindPointer(ArgIn, in)
	m.BindPointer(ArgOut, out)
	m.BindInt(packConfig(cfg).OffsetArg(), checkOffset)
	if cfg.Delta {
		m.BindPointer(ArgSeed, seedMem)
	}
	if err := m.Run(pk); err != nil {
		return err
	}
	if i := firstDiff(out[:len(want)], want); i >= 0 {
		return fmt.Errorf("%w: %s: packed byte %d is %#02x, want %#02x", ErrMismatch, pk.Name(), i, out[i], want[i])
	}
	if !isZero(out[len(want):]) {
		return fmt.Errorf("%w: %s wrote past %d packed bytes", ErrMismatch, pk.Name(), len(want))
	}
	if cfg.Delta && !bytes.Equal(seedMem, encode(wantSeed)) {
		return fmt.Errorf("%w: %s left seed %x, want %x", ErrMismatch, pk.Name(), seedMem, encode(wantSeed))
	}

	// Unpack into an output with checkOffset leading elements and a guard vector.
	m = ir.NewMachine()
	wb := cfg.WordSize / 8
	dec := make([]byte, (checkOffset+len(values))*wb+ir.VectorBytes)
	useed := encode(seed)
	m.BindPointer(ArgIn, want)
	m.BindPointer(ArgOut, dec)
	m.BindInt(unpackConfig(cfg).OffsetArg(), checkOffset)
	if cfg.Delta {
		m.BindPointer(ArgSeed, useed)
	}
	if err := m.Run(uk); err != nil {
		return err
	}
	body := dec[checkOffset*wb : (checkOffset+len(values))*wb]
	if i := firstDiff(body, encode(values)); i >= 0 {
		k := i / wb
		return fmt.Errorf("%w: %s: element %d (vector %d lane %d) decoded wrong", ErrMismatch, uk.Name(), k, k/lanes, k%lanes)
	}
	if !isZero(dec[:checkOffset*wb]) || !isZero(dec[(checkOffset+len(values))*wb:]) {
		return fmt.Errorf("%w: %s wrote outside its %d output elements", ErrMismatch, uk.Name(), len(values))
	}
	if cfg.Delta && !bytes.Equal(useed, encode(values[len(values)-lanes:])) {
		return fmt.Errorf("%w: %s left seed %x, want the last vector", ErrMismatch, uk.Name(), useed)
	}
	return nil
}

func packConfig(c Config) Config {
	c.Direction = Pack
	return c
}

func unpackConfig(c Config) Config {
	c.Direction = Unpack
	return c
}

// randomBlock returns a block whose values (or deltas, against the returned
// seed) fit in cfg.BitWidth bits.
func randomBlock[T bp128.Word](cfg Config, lanes int, r *rand.Rand) (values, seed []T) {
	values = make([]T, bp128.BlockSize)
	seed = make([]T, lanes)
	field := func() T { return T(r.Uint64() >> (64 - cfg.BitWidth)) }
	if !cfg.Delta {
		for i := range values {
			values[i] = field()
		}
		return values, seed
	}
	for l := range seed {
		seed[l] = T(r.Uint64())
	}
	prev := slices.Clone(seed)
	for i := range values {
		l := i % lanes
		values[i] = prev[l] + field()
		prev[l] = values[i]
	}
	return values, seed
}

func encode[T bp128.Word](vs []T) []byte {
	var z T
	size := binary.Size(z)
	b := make([]byte, len(vs)*size)
	for i, v := range vs {
		if size == 8 {
			binary.LittleEndian.PutUint64(b[i*8:], uint64(v))
		} else {
			binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
		}
	}
	return b
}

func firstDiff(a, b []byte) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
