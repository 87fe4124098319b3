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

package bp128

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func random32(r *rand.Rand, bitWidth int) []uint32 {
	in := make([]uint32, BlockSize)
	for i := range in {
		in[i] = r.Uint32() >> (32 - bitWidth)
	}
	return in
}

func random64(r *rand.Rand, bitWidth int) []uint64 {
	in := make([]uint64, BlockSize)
	for i := range in {
		in[i] = r.Uint64() >> (64 - bitWidth)
	}
	return in
}

func TestMaxBits32(t *testing.T) {
	tests := []struct {
		name string
		src  []uint32
		want int
	}{
		{name: "empty slice", src: []uint32{}, want: 1},
		{name: "all zeros", src: []uint32{0, 0, 0, 0}, want: 1},
		{name: "max 3 (2 bits)", src: []uint32{1, 2, 3, 0}, want: 2},
		{name: "max 15 (4 bits)", src: []uint32{5, 12, 3, 15, 7, 2, 9, 11}, want: 4},
		{name: "single element", src: []uint32{42}, want: 6},
		{name: "large values (32 bits)", src: []uint32{1 << 31, 100, 200}, want: 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxBits32(tt.src))
		})
	}
}

func TestMaxBits64(t *testing.T) {
	assert.Equal(t, 1, MaxBits64(nil))
	assert.Equal(t, 40, MaxBits64([]uint64{1<<39 + 5, 3}))
	assert.Equal(t, 64, MaxBits64([]uint64{1 << 63}))
}

func TestMaxDeltaBits(t *testing.T) {
	in := make([]uint32, BlockSize)
	for i := range in {
		in[i] = uint32(1000 + i*3)
	}
	// Consecutive vectors differ by 4*3 = 12 in every lane.
	var seed [Lanes32]uint32
	copy(seed[:], in[:Lanes32])
	assert.Equal(t, 4, MaxDeltaBits32(in, seed))

	in64 := make([]uint64, BlockSize)
	for i := range in64 {
		in64[i] = uint64(1<<40 + i)
	}
	assert.Equal(t, 41, MaxDeltaBits64(in64, [Lanes64]uint64{}))
}

func TestPackUnpack32(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 32))
	for b := 1; b <= 32; b++ {
		t.Run(fmt.Sprintf("bits=%d", b), func(t *testing.T) {
			in := random32(r, b)
			packed := make([]byte, PackedSize(b))
			Pack32(packed, in, b)

			out := make([]uint32, BlockSize)
			Unpack32(out, packed, b)
			require.Equal(t, in, out)
		})
	}
}

func TestPackUnpack64(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 64))
	for b := 1; b <= 64; b++ {
		t.Run(fmt.Sprintf("bits=%d", b), func(t *testing.T) {
			in := random64(r, b)
			packed := make([]byte, PackedSize(b))
			Pack64(packed, in, b)

			out := make([]uint64, BlockSize)
			Unpack64(out, packed, b)
			require.Equal(t, in, out)
		})
	}
}

func TestDeltaChain32(t *testing.T) {
	const blocks = 4
	r := rand.New(rand.NewPCG(7, 7))
	data := make([]uint32, blocks*BlockSize)
	for i := range data {
		data[i] = r.Uint32() >> 8
	}
	slices.Sort(data)

	var packSeed, unpackSeed [Lanes32]uint32
	out := make([]uint32, len(data))
	for n := 0; n < blocks; n++ {
		block := data[n*BlockSize : (n+1)*BlockSize]
		b := MaxDeltaBits32(block, packSeed)
		packed := make([]byte, PackedSize(b))
		DeltaPack32(packed, block, b, &packSeed)
		require.Equal(t, block[BlockSize-Lanes32:], packSeed[:], "seed must hold the last raw vector")

		DeltaUnpack32(out[n*BlockSize:], packed, b, &unpackSeed)
		require.Equal(t, packSeed, unpackSeed)
	}
	require.Equal(t, data, out)
}

func TestDeltaChain64(t *testing.T) {
	const blocks = 3
	data := make([]uint64, blocks*BlockSize)
	for i := range data {
		data[i] = uint64(i*i) + 1<<50
	}

	var packSeed, unpackSeed [Lanes64]uint64
	out := make([]uint64, len(data))
	for n := 0; n < blocks; n++ {
		block := data[n*BlockSize : (n+1)*BlockSize]
		b := MaxDeltaBits64(block, packSeed)
		packed := make([]byte, PackedSize(b))
		DeltaPack64(packed, block, b, &packSeed)
		DeltaUnpack64(out[n*BlockSize:], packed, b, &unpackSeed)
	}
	require.Equal(t, data, out)
	assert.Equal(t, data[len(data)-Lanes64:], unpackSeed[:])
}

func TestPackConstantOnes(t *testing.T) {
	in := make([]uint32, BlockSize)
	for i := range in {
		in[i] = 1
	}
	packed := make([]byte, PackedSize(5))
	Pack32(packed, in, 5)

	// Lane stream: a one at every bit position 5k, k < 32, spread over five 32-bit words.
	for j := 0; j < 5; j++ {
		var want uint32
		for k := 0; k < 32; k++ {
			if p := 5*k - 32*j; p >= 0 && p < 32 {
				want |= 1 << p
			}
		}
		for l := 0; l < Lanes32; l++ {
			got := binary.LittleEndian.Uint32(packed[(j*Lanes32+l)*4:])
			assert.Equalf(t, want, got, "word %d lane %d", j, l)
		}
	}

	out := make([]uint32, BlockSize)
	Unpack32(out, packed, 5)
	assert.Equal(t, in, out)
}

func TestPackFullWidthIsIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))
	in := random64(r, 64)
	packed := make([]byte, PackedSize(64))
	Pack64(packed, in, 64)
	for i, v := range in {
		assert.Equal(t, v, binary.LittleEndian.Uint64(packed[i*8:]))
	}
}

func TestPackWidthOne(t *testing.T) {
	in := make([]uint32, BlockSize)
	for i := range in {
		in[i] = uint32(i/Lanes32) & 1
	}
	packed := make([]byte, PackedSize(1))
	Pack32(packed, in, 1)
	for l := 0; l < Lanes32; l++ {
		// Bit k of the lane word is element k's bit: odd vectors are ones.
		assert.Equal(t, uint32(0xAAAAAAAA), binary.LittleEndian.Uint32(packed[l*4:]))
	}
}

func TestDelta64Width40(t *testing.T) {
	in := make([]uint64, BlockSize)
	lane0 := []uint64{100, 105, 110, 200}
	for k, v := range lane0 {
		in[k*Lanes64] = v
	}
	for k := len(lane0); k < BlockSize/Lanes64; k++ {
		in[k*Lanes64] = 200
	}
	var seed [Lanes64]uint64
	require.Equal(t, 7, MaxDeltaBits64(in, seed))

	packed := make([]byte, PackedSize(40))
	DeltaPack64(packed, in, 40, &seed)
	assert.Equal(t, [Lanes64]uint64{200, 0}, seed)

	// Lane 0 holds the 40-bit deltas 100, 5, 5, 90 at bits 0, 40, 80 and 120.
	word := func(j, l int) uint64 { return binary.LittleEndian.Uint64(packed[(j*Lanes64+l)*8:]) }
	field := func(k int) uint64 {
		pos := k * 40
		j, i := pos/64, pos%64
		v := word(j, 0) >> i
		if i+40 > 64 {
			v |= word(j+1, 0) << (64 - i)
		}
		return v & (1<<40 - 1)
	}
	for k, want := range []uint64{100, 5, 5, 90, 0} {
		assert.Equalf(t, want, field(k), "field %d", k)
	}
	assert.Equal(t, uint64(100|5<<40), word(0, 0))
	assert.Equal(t, uint64(5<<16|90<<56), word(1, 0))
	for j := 0; j < 40; j++ {
		assert.Zerof(t, word(j, 1), "lane 1 word %d", j)
	}

	var useed [Lanes64]uint64
	out := make([]uint64, BlockSize)
	DeltaUnpack64(out, packed, 40, &useed)
	assert.Equal(t, in, out)
	assert.Equal(t, seed, useed)
}

func TestDeltaNegativeAtFullWidth(t *testing.T) {
	in := make([]uint64, BlockSize)
	lane0 := []uint64{100, 105, 103, 200}
	for k, v := range lane0 {
		in[k*Lanes64] = v
	}
	for k := len(lane0); k < BlockSize/Lanes64; k++ {
		in[k*Lanes64] = 200
	}
	var seed [Lanes64]uint64
	packed := make([]byte, PackedSize(64))
	DeltaPack64(packed, in, 64, &seed)

	want := []uint64{100, 5, ^uint64(0) - 1, 97, 0}
	for k, d := range want {
		assert.Equalf(t, d, binary.LittleEndian.Uint64(packed[k*VectorBytes:]), "delta %d", k)
	}
	assert.Equal(t, uint64(200), seed[0])

	var useed [Lanes64]uint64
	out := make([]uint64, BlockSize)
	DeltaUnpack64(out, packed, 64, &useed)
	assert.Equal(t, in, out)
}

func TestPackedSize(t *testing.T) {
	for b := 1; b <= 64; b++ {
		assert.Equal(t, b*16, PackedSize(b))
	}
}

func TestPackPanicsOnBadInput(t *testing.T) {
	in := make([]uint32, BlockSize)
	assert.Panics(t, func() { Pack32(make([]byte, 16), in, 0) })
	assert.Panics(t, func() { Pack32(make([]byte, 33*16), in, 33) })
	assert.Panics(t, func() { Pack32(make([]byte, 15), in, 1) })
	assert.Panics(t, func() { Pack32(make([]byte, 16), in[:64], 1) })
}

func TestImplementation(t *testing.T) {
	if SIMDAvailable() {
		assert.Equal(t, "sse2", Implementation())
	} else {
		assert.Equal(t, "scalar", Implementation())
	}
}

func TestKernelsMatchGeneric(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 11))
	t.Run("32", func(t *testing.T) {
		for b := 1; b <= 32; b++ {
			// Full-range values: bits above b spill into the neighbouring field.
			in := random32(r, 32)
			seed := []uint32{r.Uint32(), r.Uint32(), r.Uint32(), r.Uint32()}

			got, want := make([]byte, PackedSize(b)), make([]byte, PackedSize(b))
			pack32Kernels[b](got, in, nil)
			PackGeneric(want, in, b, nil)
			require.Equal(t, want, got, "pack32_%d", b)

			gotSeed, wantSeed := slices.Clone(seed), slices.Clone(seed)
			dpack32Kernels[b](got, in, gotSeed)
			PackGeneric(want, in, b, wantSeed)
			require.Equal(t, want, got, "dpack32_%d", b)
			require.Equal(t, wantSeed, gotSeed, "dpack32_%d seed", b)

			gotOut, wantOut := make([]uint32, BlockSize), make([]uint32, BlockSize)
			unpack32Kernels[b](gotOut, got, nil)
			UnpackGeneric(wantOut, got, b, nil)
			require.Equal(t, wantOut, gotOut, "unpack32_%d", b)

			gotSeed, wantSeed = slices.Clone(seed), slices.Clone(seed)
			dunpack32Kernels[b](gotOut, got, gotSeed)
			UnpackGeneric(wantOut, got, b, wantSeed)
			require.Equal(t, wantOut, gotOut, "dunpack32_%d", b)
			require.Equal(t, wantSeed, gotSeed, "dunpack32_%d seed", b)
		}
	})
	t.Run("64", func(t *testing.T) {
		for b := 1; b <= 64; b++ {
			in := random64(r, 64)
			seed := []uint64{r.Uint64(), r.Uint64()}

			got, want := make([]byte, PackedSize(b)), make([]byte, PackedSize(b))
			pack64Kernels[b](got, in, nil)
			PackGeneric(want, in, b, nil)
			require.Equal(t, want, got, "pack64_%d", b)

			gotSeed, wantSeed := slices.Clone(seed), slices.Clone(seed)
			dpack64Kernels[b](got, in, gotSeed)
			PackGeneric(want, in, b, wantSeed)
			require.Equal(t, want, got, "dpack64_%d", b)
			require.Equal(t, wantSeed, gotSeed, "dpack64_%d seed", b)

			gotOut, wantOut := make([]uint64, BlockSize), make([]uint64, BlockSize)
			unpack64Kernels[b](gotOut, got, nil)
			UnpackGeneric(wantOut, got, b, nil)
			require.Equal(t, wantOut, gotOut, "unpack64_%d", b)

			gotSeed, wantSeed = slices.Clone(seed), slices.Clone(seed)
			dunpack64Kernels[b](gotOut, got, gotSeed)
			UnpackGeneric(wantOut, got, b, wantSeed)
			require.Equal(t, wantOut, gotOut, "dunpack64_%d", b)
			require.Equal(t, wantSeed, gotSeed, "dunpack64_%d seed", b)
		}
	})
}
