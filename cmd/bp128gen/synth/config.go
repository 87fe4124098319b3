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
	"strings"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

// Direction selects packing or unpacking kernels.
type Direction int

const (
	Pack Direction = iota
	Unpack
)

// String returns "pack" or "unpack".
func (d Direction) String() string {
	switch d {
	case Pack:
		return "pack"
	case Unpack:
		return "unpack"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// ParseDirection parses "pack" or "unpack".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pack":
		return Pack, nil
	case "unpack":
		return Unpack, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
	}
}

// Config identifies one kernel.
type Config struct {
	Direction Direction
	WordSize  int // 32 or 64
	BitWidth  int // 1..WordSize
	Delta     bool
}

// Name returns the kernel symbol: pack32_7, dpack64_40, unpack32_7, dunpack64_40.
func (c Config) Name() string {
	prefix := ""
	if c.Delta {
		prefix = "d"
	}
	return fmt.Sprintf("%s%s%d_%d", prefix, c.Direction, c.WordSize, c.BitWidth)
}

// Validate reports whether the synthesizer can build c.
func (c Config) Validate() error {
	if c.Direction != Pack && c.Direction != Unpack {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Direction)
	}
	if c.WordSize != 32 && c.WordSize != 64 {
		return fmt.Errorf("%w: word size %d (want 32 or 64)", ErrInvalidConfig, c.WordSize)
	}
	if c.BitWidth < 1 || c.BitWidth > c.WordSize {
		return fmt.Errorf("%w: bit width %d out of range [1, %d]", ErrInvalidConfig, c.BitWidth, c.WordSize)
	}
	return nil
}

// Lane returns the vector lane width matching the word size.
func (c Config) Lane() ir.Lane {
	return ir.Lane(c.WordSize)
}

// ElemType is the Go element type of the unpacked side.
func (c Config) ElemType() string {
	return fmt.Sprintf("uint%d", c.WordSize)
}

// Argument names bound by every kernel, in frame order.
const (
	ArgIn   = "in"
	ArgOut  = "out"
	ArgSeed = "seed"
)

// OffsetArg returns the name of the element offset argument: inOffset for
// pack kernels, outOffset for unpack kernels.
func (c Config) OffsetArg() string {
	if c.Direction == Unpack {
		return "outOffset"
	}
	return "inOffset"
}

// Signature returns the Go-visible signature of the kernel.
func (c Config) Signature() ir.Signature {
	elem := "*" + c.ElemType()
	in, out := elem, "*byte"
	if c.Direction == Unpack {
		in, out = "*byte", elem
	}
	sig := ir.Signature{
		Name: c.Name(),
		Params: []ir.Param{
			{Name: ArgIn, Type: in},
			{Name: ArgOut, Type: out},
			{Name: c.OffsetArg(), Type: "int"},
			{Name: ArgSeed, Type: "*byte"},
		},
	}
	switch {
	case c.Direction == Pack && c.Delta:
		sig.Doc = []string{
			fmt.Sprintf("%s delta codes %d vectors of %s read from in+inOffset against the", sig.Name, c.WordSize, c.ElemType()),
			fmt.Sprintf("vector at seed and packs the deltas into %d bytes at out.", c.BitWidth*ir.VectorBytes),
			"The last input vector is written back to seed.",
		}
	case c.Direction == Pack:
		sig.Doc = []string{
			fmt.Sprintf("%s packs %d vectors of %s read from in+inOffset into %d bytes at out,", sig.Name, c.WordSize, c.ElemType(), c.BitWidth*ir.VectorBytes),
			fmt.Sprintf("%d bits per value. seed is not used.", c.BitWidth),
		}
	case c.Delta:
		sig.Doc = []string{
			fmt.Sprintf("%s unpacks %d bytes at in into %d vectors of %s at out+outOffset,", sig.Name, c.BitWidth*ir.VectorBytes, c.WordSize, c.ElemType()),
			"adding each delta to the previous vector, starting from the vector at seed.",
			"The last decoded vector is written back to seed.",
		}
	default:
		sig.Doc = []string{
			fmt.Sprintf("%s unpacks %d bytes at in into %d vectors of %s at out+outOffset.", sig.Name, c.BitWidth*ir.VectorBytes, c.WordSize, c.ElemType()),
			"seed is not used.",
		}
	}
	return sig
}

// Options bounds the resources available to the synthesizer.
type Options struct {
	GeneralRegisters int
	VectorRegisters  int

	// BufferDepth is how many input vectors are loaded at once.
	BufferDepth int
}

// DefaultOptions returns the full amd64 register files and a buffer depth of 4.
func DefaultOptions() Options {
	return Options{
		GeneralRegisters: ir.NumGeneral,
		VectorRegisters:  ir.NumVector,
		BufferDepth:      4,
	}
}
