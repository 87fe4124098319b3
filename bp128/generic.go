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

import "encoding/binary"

// Word is an integer type bp128 can pack.
type Word interface {
	~uint32 | ~uint64
}

func wordBits[T Word]() int {
	var z T
	if uint64(^z) == 1<<32-1 {
		return 32
	}
	return 64
}

// PackGeneric is the portable kernel behind every Pack and DeltaPack
// function. It packs BlockSize values of src into dst at bitWidth. A non-nil
// seed (one value per lane) enables delta coding and receives the last vector.
//
// The output is bit-identical to the SSE2 kernels, including for values that
// do not fit in bitWidth bits.
func PackGeneric[T Word](dst []byte, src []T, bitWidth int, seed []T) {
	w := wordBits[T]()
	wb := w / 8
	lanes := VectorBytes / wb
	full := ^uint64(0) >> (64 - w)

	out := dst[:PackedSize(bitWidth)]
	clear(out)
	for l := 0; l < lanes; l++ {
		var prev uint64
		if seed != nil {
			prev = uint64(seed[l])
		}
		for k := 0; k < w; k++ {
			v := uint64(src[k*lanes+l])
			if seed != nil {
				v, prev = (v-prev)&full, v
			}
			pos := k * bitWidth
			j, i := pos/w, pos%w
			orWord(out, (j*lanes+l)*wb, wb, (v<<uint(i))&full)
			if i+bitWidth > w {
				orWord(out, ((j+1)*lanes+l)*wb, wb, v>>uint(w-i))
			}
		}
		if seed != nil {
			seed[l] = T(prev)
		}
	}
}

// UnpackGeneric reverses PackGeneric.
func UnpackGeneric[T Word](dst []T, src []byte, bitWidth int, seed []T) {
	w := wordBits[T]()
	wb := w / 8
	lanes := VectorBytes / wb
	full := ^uint64(0) >> (64 - w)
	mask := ^uint64(0) >> (64 - bitWidth)

	in := src[:PackedSize(bitWidth)]
	for l := 0; l < lanes; l++ {
		var prev uint64
		if seed != nil {
			prev = uint64(seed[l])
		}
		for k := 0; k < w; k++ {
			pos := k * bitWidth
			j, i := pos/w, pos%w
			v := readWord(in, (j*lanes+l)*wb, wb) >> uint(i)
			if i+bitWidth > w {
				v |= readWord(in, ((j+1)*lanes+l)*wb, wb) << uint(w-i)
			}
			v &= mask
			if seed != nil {
				v = (v + prev) & full
				prev = v
			}
			dst[k*lanes+l] = T(v)
		}
		if seed != nil {
			seed[l] = T(prev)
		}
	}
}

func orWord(b []byte, off, size int, v uint64) {
	if size == 8 {
		binary.LittleEndian.PutUint64(b[off:], binary.LittleEndian.Uint64(b[off:])|v)
		return
	}
	binary.LittleEndian.PutUint32(b[off:], binary.LittleEndian.Uint32(b[off:])|uint32(v))
}

func readWord(b []byte, off, size int) uint64 {
	if size == 8 {
		return binary.LittleEndian.Uint64(b[off:])
	}
	return uint64(binary.LittleEndian.Uint32(b[off:]))
}
