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
	"os"
	"strconv"
)

type (
	packKernel[T Word]   func(dst []byte, src []T, seed []T)
	unpackKernel[T Word] func(dst []T, src []byte, seed []T)
)

// Kernel tables indexed by bit width. Entry 0 is unused. They start out
// pointing at the portable kernels; generated assembly replaces them in init
// when the CPU supports it.
var (
	pack32Kernels, dpack32Kernels     [33]packKernel[uint32]
	unpack32Kernels, dunpack32Kernels [33]unpackKernel[uint32]
	pack64Kernels, dpack64Kernels     [65]packKernel[uint64]
	unpack64Kernels, dunpack64Kernels [65]unpackKernel[uint64]
)

// implementation names the kernel family in use.
var implementation = "scalar"

func init() {
	fillGeneric(pack32Kernels[:], dpack32Kernels[:], unpack32Kernels[:], dunpack32Kernels[:])
	fillGeneric(pack64Kernels[:], dpack64Kernels[:], unpack64Kernels[:], dunpack64Kernels[:])
}

func fillGeneric[T Word](pack, dpack []packKernel[T], unpack, dunpack []unpackKernel[T]) {
	for b := 1; b < len(pack); b++ {
		pack[b] = func(dst []byte, src []T, _ []T) { PackGeneric(dst, src, b, nil) }
		dpack[b] = func(dst []byte, src []T, seed []T) { PackGeneric(dst, src, b, seed) }
		unpack[b] = func(dst []T, src []byte, _ []T) { UnpackGeneric(dst, src, b, nil) }
		dunpack[b] = func(dst []T, src []byte, seed []T) { UnpackGeneric(dst, src, b, seed) }
	}
}

// Implementation reports which kernels are active: "sse2", "scalar", or
// "sse2:" followed by the generated families when only some tables were
// generated.
func Implementation() string {
	return implementation
}

// NoSimdEnv reports whether BP128_NO_SIMD is set to a true value.
// When set, the portable kernels are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("BP128_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
