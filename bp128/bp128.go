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
	"fmt"
	"math/bits"
)

const (
	// BlockSize is the number of integers in one block.
	BlockSize = 128

	// VectorBytes is the size of one packed output word vector.
	VectorBytes = 16

	// Lanes32 and Lanes64 are the number of lanes per vector.
	Lanes32 = VectorBytes / 4
	Lanes64 = VectorBytes / 8
)

// PackedSize returns the number of bytes one block occupies at bitWidth.
func PackedSize(bitWidth int) int {
	return bitWidth * VectorBytes
}

// Pack32 packs the first BlockSize values of src into dst using bitWidth bits per value.
// dst must hold at least PackedSize(bitWidth) bytes.
func Pack32(dst []byte, src []uint32, bitWidth int) {
	checkPack(len(dst), len(src), bitWidth, 32)
	pack32Kernels[bitWidth](dst, src, nil)
}

// DeltaPack32 delta codes src against seed and packs the deltas. On return
// seed holds the last vector of src.
func DeltaPack32(dst []byte, src []uint32, bitWidth int, seed *[Lanes32]uint32) {
	checkPack(len(dst), len(src), bitWidth, 32)
	dpack32Kernels[bitWidth](dst, src, seed[:])
}

// Unpack32 reverses Pack32, writing BlockSize values to dst.
func Unpack32(dst []uint32, src []byte, bitWidth int) {
	checkPack(len(src), len(dst), bitWidth, 32)
	unpack32Kernels[bitWidth](dst, src, nil)
}

// DeltaUnpack32 reverses DeltaPack32. seed must hold the value it had before
// packing; on return it holds the last decoded vector.
func DeltaUnpack32(dst []uint32, src []byte, bitWidth int, seed *[Lanes32]uint32) {
	checkPack(len(src), len(dst), bitWidth, 32)
	dunpack32Kernels[bitWidth](dst, src, seed[:])
}

// Pack64 packs the first BlockSize values of src into dst using bitWidth bits per value.
func Pack64(dst []byte, src []uint64, bitWidth int) {
	checkPack(len(dst), len(src), bitWidth, 64)
	pack64Kernels[bitWidth](dst, src, nil)
}

// DeltaPack64 is the 64-bit form of DeltaPack32.
func DeltaPack64(dst []byte, src []uint64, bitWidth int, seed *[Lanes64]uint64) {
	checkPack(len(dst), len(src), bitWidth, 64)
	dpack64Kernels[bitWidth](dst, src, seed[:])
}

// Unpack64 reverses Pack64.
func Unpack64(dst []uint64, src []byte, bitWidth int) {
	checkPack(len(src), len(dst), bitWidth, 64)
	unpack64Kernels[bitWidth](dst, src, nil)
}

// DeltaUnpack64 reverses DeltaPack64.
func DeltaUnpack64(dst []uint64, src []byte, bitWidth int, seed *[Lanes64]uint64) {
	checkPack(len(src), len(dst), bitWidth, 64)
	dunpack64Kernels[bitWidth](dst, src, seed[:])
}

func checkPack(packed, values, bitWidth, wordSize int) {
	if bitWidth < 1 || bitWidth > wordSize {
		panic(fmt.Sprintf("bp128: bit width %d out of range [1, %d]", bitWidth, wordSize))
	}
	if packed < PackedSize(bitWidth) {
		panic(fmt.Sprintf("bp128: packed buffer has %d bytes, need %d", packed, PackedSize(bitWidth)))
	}
	if values < BlockSize {
		panic(fmt.Sprintf("bp128: value buffer has %d elements, need %d", values, BlockSize))
	}
}

// MaxBits32 returns the smallest bit width that holds every value of src, at least 1.
func MaxBits32(src []uint32) int {
	var acc uint32
	for _, v := range src {
		acc |= v
	}
	return max(bits.Len32(acc), 1)
}

// MaxBits64 returns the smallest bit width that holds every value of src, at least 1.
func MaxBits64(src []uint64) int {
	var acc uint64
	for _, v := range src {
		acc |= v
	}
	return max(bits.Len64(acc), 1)
}

// MaxDeltaBits32 returns the bit width DeltaPack32 needs for src with the given seed.
func MaxDeltaBits32(src []uint32, seed [Lanes32]uint32) int {
	var acc uint32
	for i, v := range src[:BlockSize] {
		l := i % Lanes32
		acc |= v - seed[l]
		seed[l] = v
	}
	return max(bits.Len32(acc), 1)
}

// MaxDeltaBits64 returns the bit width DeltaPack64 needs for src with the given seed.
func MaxDeltaBits64(src []uint64, seed [Lanes64]uint64) int {
	var acc uint64
	for i, v := range src[:BlockSize] {
		l := i % Lanes64
		acc |= v - seed[l]
		seed[l] = v
	}
	return max(bits.Len64(acc), 1)
}
