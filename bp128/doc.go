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

// Package bp128 packs blocks of 128 unsigned integers to a fixed bit width
// using the vertical SSE2 layout of "SIMD compression and the intersection of
// sorted integers" (Lemire, Boytsov, Kurz).
//
// # Layout
//
// A block is viewed as a sequence of 16-byte vectors: 32 vectors of four
// uint32 lanes, or 64 vectors of two uint64 lanes. Every lane is packed on its
// own, as if it were a scalar stream of W values of W bits, into B words of
// W bits. Word j of every lane sits in output vector j, so a block packed at
// bit width B always occupies exactly B*16 bytes:
//
//	out vector 0: lane0.word0 lane1.word0 lane2.word0 lane3.word0
//	out vector 1: lane0.word1 lane1.word1 lane2.word1 lane3.word1
//	...
//
// Values are not masked while packing: every input must fit in B bits.
//
// # Delta coding
//
// The Delta variants subtract, lane by lane, the previous input vector before
// packing. The first vector is coded against a caller supplied seed vector,
// and on return the seed holds the last raw vector of the block, so
// consecutive blocks chain. Deltas are unsigned and wrap: a decreasing lane
// produces a large delta, which MaxDeltaBits32 and MaxDeltaBits64 account for.
//
// # Kernels
//
// Each (word size, bit width, delta) combination is served by a dedicated
// kernel. On amd64 the kernels are straight-line SSE2 assembly produced by
// cmd/bp128gen; elsewhere, or when BP128_NO_SIMD is set, portable Go
// kernels with identical output are used.
//
// # Example
//
//	var in [bp128.BlockSize]uint32
//	// ... fill in ...
//	width := bp128.MaxBits32(in[:])
//	packed := make([]byte, bp128.PackedSize(width))
//	bp128.Pack32(packed, in[:], width)
//
//	var out [bp128.BlockSize]uint32
//	bp128.Unpack32(out[:], packed, width)
package bp128

//go:generate go run ../cmd/bp128gen gen --output . --package bp128
