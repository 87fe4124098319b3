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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
)

func allConfigs(t *testing.T) []Config {
	t.Helper()
	configs, err := Enumerate(Pack, []int{32, 64}, []bool{false, true})
	require.NoError(t, err)
	return configs
}

func TestPoolFIFO(t *testing.T) {
	p := NewPool(2, 3)
	a, err := p.AcquireVector()
	require.NoError(t, err)
	b, err := p.AcquireVector()
	require.NoError(t, err)
	c, err := p.AcquireVector()
	require.NoError(t, err)
	assert.Equal(t, []ir.Reg{ir.X(0), ir.X(1), ir.X(2)}, []ir.Reg{a, b, c})

	_, err = p.AcquireVector()
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.ErrorIs(t, err, ErrInvalidConfig)

	p.Release(b)
	p.Release(a)
	assert.Equal(t, 2, p.Free(ir.ClassVector))
	assert.Equal(t, 1, p.Live(ir.ClassVector))
	assert.Equal(t, 3, p.Peak(ir.ClassVector))

	// Released registers come back in release order.
	r, err := p.AcquireVector()
	require.NoError(t, err)
	assert.Equal(t, ir.X(1), r)
	r, err = p.AcquireVector()
	require.NoError(t, err)
	assert.Equal(t, ir.X(0), r)

	g, err := p.AcquireGeneral()
	require.NoError(t, err)
	assert.Equal(t, "AX", g.String())
}

func TestPoolClamp(t *testing.T) {
	p := NewPool(100, -1)
	assert.Equal(t, ir.NumGeneral, p.Free(ir.ClassGeneral))
	assert.Equal(t, 0, p.Free(ir.ClassVector))
}

func TestPackSchedule(t *testing.T) {
	for _, w := range []int{32, 64} {
		for b := 1; b <= w; b++ {
			steps, err := PackSchedule(w, b)
			require.NoError(t, err, "%d_%d", w, b)

			var elems []int
			words := 0
			for _, s := range steps {
				switch s.Kind {
				case StepMerge:
					elems = append(elems, s.Element)
					assert.LessOrEqual(t, s.Shift+b, w)
				case StepStore:
					words++
				case StepSplit:
					elems = append(elems, s.Element)
					words++
					assert.Greater(t, s.Shift+b, w)
					assert.Equal(t, w-s.Shift, s.Carry)
				}
			}
			assert.Equal(t, b, words, "%d_%d must emit one word per bit", w, b)
			assert.Equal(t, lo.Range(w), elems, "%d_%d must consume every element once, in order", w, b)
			assert.Equal(t, StepStore, steps[len(steps)-1].Kind, "%d_%d must end on a boundary", w, b)
		}
	}
}

func TestPackScheduleWidth5(t *testing.T) {
	steps, err := PackSchedule(32, 5)
	require.NoError(t, err)
	splits := lo.Filter(steps, func(s Step, _ int) bool { return s.Kind == StepSplit })
	require.NotEmpty(t, splits)
	want := []Step{
		{Kind: StepSplit, Element: 6, Word: 0, Shift: 30, Carry: 2},
		{Kind: StepSplit, Element: 12, Word: 1, Shift: 28, Carry: 4},
	}
	if diff := cmp.Diff(want, splits[:2]); diff != "" {
		t.Errorf("first splits mismatch (-want +got):\n%s", diff)
	}
}

func TestPackScheduleFullWidth(t *testing.T) {
	steps, err := PackSchedule(64, 64)
	require.NoError(t, err)
	require.Len(t, steps, 128)
	for i, s := range steps {
		if i%2 == 0 {
			assert.Equal(t, Step{Kind: StepMerge, Element: i / 2, Word: i / 2}, s)
		} else {
			assert.Equal(t, StepStore, s.Kind)
		}
	}
}

func TestUnpackSchedule(t *testing.T) {
	for _, w := range []int{32, 64} {
		for b := 1; b <= w; b++ {
			fields, err := UnpackSchedule(w, b)
			require.NoError(t, err)
			steps, err := PackSchedule(w, b)
			require.NoError(t, err)

			straddles := lo.CountBy(fields, func(f Field) bool { return f.Straddle })
			splits := lo.CountBy(steps, func(s Step) bool { return s.Kind == StepSplit })
			assert.Equal(t, splits, straddles, "%d_%d", w, b)

			last := lo.CountBy(fields, func(f Field) bool { return f.Last })
			assert.Equal(t, b, last, "%d_%d: every word has exactly one last field", w, b)
		}
	}
}

func TestPackScheduleStoresFollowCursorPeriod(t *testing.T) {
	for _, w := range []int{32, 64} {
		for b := 1; b <= w; b++ {
			steps, err := PackSchedule(w, b)
			require.NoError(t, err)
			period := CursorPeriod(w, b)

			// The cursor only returns to zero through a store, once per period.
			elems, stores := 0, 0
			for _, s := range steps {
				switch s.Kind {
				case StepStore:
					stores++
					assert.Zerof(t, elems%period, "%d_%d store after %d elements", w, b, elems)
				default:
					elems++
				}
			}
			assert.Equalf(t, w/period, stores, "%d_%d", w, b)
		}
	}
}

func TestCursorPeriod(t *testing.T) {
	tests := []struct{ w, b, want int }{
		{32, 5, 32},
		{32, 8, 4},
		{32, 32, 1},
		{64, 40, 8},
		{64, 1, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CursorPeriod(tt.w, tt.b), "%d_%d", tt.w, tt.b)
	}
}

func TestInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{WordSize: 32, BitWidth: 0},
		{WordSize: 32, BitWidth: 33},
		{WordSize: 16, BitWidth: 8},
		{Direction: Direction(7), WordSize: 32, BitWidth: 8},
	} {
		_, err := Synthesize(cfg, ir.NewBuilder(), DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidConfig, cfg.Name())
	}
	_, err := PackSchedule(64, 65)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Enumerate(Pack, []int{48}, []bool{false})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEnumerate(t *testing.T) {
	configs := allConfigs(t)
	require.Len(t, configs, 192)
	names := lo.Map(configs, func(c Config, _ int) string { return c.Name() })
	assert.Equal(t, "pack32_1", names[0])
	assert.Equal(t, "pack32_32", names[31])
	assert.Equal(t, "pack64_1", names[32])
	assert.Equal(t, "pack64_64", names[95])
	assert.Equal(t, "dpack32_1", names[96])
	assert.Equal(t, "dpack64_64", names[191])
	assert.Len(t, lo.Uniq(names), 192)

	all, err := EnumerateAll([]Direction{Pack, Unpack, Pack}, []int{32, 64}, []bool{false, true})
	require.NoError(t, err)
	assert.Len(t, all, 384)
	assert.Equal(t, "dunpack64_40", all[192+96+32+39].Name())
}

func TestSignature(t *testing.T) {
	sig := Config{Direction: Pack, WordSize: 32, BitWidth: 7, Delta: true}.Signature()
	assert.Equal(t, "dpack32_7", sig.Name)
	assert.Equal(t, "func(in *uint32, out *byte, inOffset int, seed *byte)", sig.GoType())

	sig = Config{Direction: Unpack, WordSize: 64, BitWidth: 3}.Signature()
	assert.Equal(t, "func(in *byte, out *uint64, outOffset int, seed *byte)", sig.GoType())
	assert.NotEmpty(t, sig.Doc)
}

func TestPrologue(t *testing.T) {
	k, _, err := Build(Config{Direction: Pack, WordSize: 32, BitWidth: 7}, DefaultOptions())
	require.NoError(t, err)
	want := []ir.Inst{
		{Op: ir.OpArg, Dst: ir.GP(0), Arg: "in", Imm: 0},
		{Op: ir.OpArg, Dst: ir.GP(1), Arg: "out", Imm: 8},
		{Op: ir.OpArg, Dst: ir.GP(2), Arg: "inOffset", Imm: 16},
		{Op: ir.OpArg, Dst: ir.GP(3), Arg: "seed", Imm: 24},
		{Op: ir.OpShlGP, Dst: ir.GP(2), Imm: 2},
		{Op: ir.OpAddGP, Dst: ir.GP(0), Src: ir.GP(2)},
	}
	if diff := cmp.Diff(want, k.Insts[:len(want)]); diff != "" {
		t.Errorf("prologue mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ir.OpRet, k.Insts[len(k.Insts)-1].Op)

	k, _, err = Build(Config{Direction: Unpack, WordSize: 64, BitWidth: 7}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, ir.Inst{Op: ir.OpShlGP, Dst: ir.GP(2), Imm: 3}, k.Insts[4])
	assert.Equal(t, ir.Inst{Op: ir.OpAddGP, Dst: ir.GP(1), Src: ir.GP(2)}, k.Insts[5])
}

func TestMemoryTraffic(t *testing.T) {
	for _, cfg := range allConfigs(t) {
		extra := lo.Ternary(cfg.Delta, 1, 0)

		k, stats, err := Build(cfg, DefaultOptions())
		require.NoError(t, err, cfg.Name())
		assert.Equal(t, cfg.WordSize+extra, k.Count(ir.OpLoad), "%s loads", cfg.Name())
		assert.Equal(t, cfg.BitWidth+extra, k.Count(ir.OpStore), "%s stores", cfg.Name())
		assert.Equal(t, len(k.Insts), stats.Instructions)
		assert.LessOrEqual(t, stats.PeakVector, ir.NumVector)

		u, stats, err := Build(unpackConfig(cfg), DefaultOptions())
		require.NoError(t, err, cfg.Name())
		assert.Equal(t, cfg.BitWidth+extra, u.Count(ir.OpLoad), "%s loads", u.Name())
		assert.Equal(t, cfg.WordSize+extra, u.Count(ir.OpStore), "%s stores", u.Name())
		assert.Equal(t, stats.Stores, u.Count(ir.OpStore))
	}
}

func TestFullWidthHasNoBitOps(t *testing.T) {
	for _, w := range []int{32, 64} {
		for _, dir := range []Direction{Pack, Unpack} {
			k, _, err := Build(Config{Direction: dir, WordSize: w, BitWidth: w}, DefaultOptions())
			require.NoError(t, err)
			for _, op := range []ir.Op{ir.OpShl, ir.OpShr, ir.OpOr, ir.OpAnd} {
				assert.Zero(t, k.Count(op), "%s: %s", k.Name(), op)
			}
		}
	}
}

func TestDeltaUsesLaneArithmetic(t *testing.T) {
	k, _, err := Build(Config{Direction: Pack, WordSize: 64, BitWidth: 40, Delta: true}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 64, k.Count(ir.OpSub))
	assert.Contains(t, k.Listing(), "PSUBQ")

	k, _, err = Build(Config{Direction: Unpack, WordSize: 32, BitWidth: 9, Delta: true}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 32, k.Count(ir.OpAdd))
	assert.Contains(t, k.Listing(), "PADDL")
}

func TestCheckAllKernels(t *testing.T) {
	r := rand.New(rand.NewPCG(128, 1))
	for _, cfg := range allConfigs(t) {
		t.Run(cfg.Name(), func(t *testing.T) {
			require.NoError(t, Check(cfg, DefaultOptions(), r))
		})
	}
}

func TestCheckSmallRegisterFile(t *testing.T) {
	opts := Options{GeneralRegisters: 4, VectorRegisters: 8, BufferDepth: 2}
	r := rand.New(rand.NewPCG(8, 2))
	for _, cfg := range allConfigs(t) {
		t.Run(fmt.Sprintf("%s/regs=8", cfg.Name()), func(t *testing.T) {
			require.NoError(t, Check(cfg, opts, r))
		})
	}
}

func TestPoolExhausted(t *testing.T) {
	opts := DefaultOptions()
	opts.VectorRegisters = 2
	_, err := Synthesize(Config{Direction: Pack, WordSize: 32, BitWidth: 5}, ir.NewBuilder(), opts)
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.ErrorIs(t, err, ErrInvalidConfig)

	opts = DefaultOptions()
	opts.GeneralRegisters = 3
	_, err = Synthesize(Config{Direction: Unpack, WordSize: 32, BitWidth: 5}, ir.NewBuilder(), opts)
	require.ErrorIs(t, err, ErrPoolExhausted)
	require.ErrorIs(t, err, ErrInvalidConfig)

	opts = DefaultOptions()
	opts.BufferDepth = 0
	_, err = Synthesize(Config{Direction: Pack, WordSize: 32, BitWidth: 5}, ir.NewBuilder(), opts)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDeterministic(t *testing.T) {
	for _, cfg := range []Config{
		{Direction: Pack, WordSize: 32, BitWidth: 5},
		{Direction: Unpack, WordSize: 64, BitWidth: 40, Delta: true},
	} {
		a, _, err := Build(cfg, DefaultOptions())
		require.NoError(t, err)
		b, _, err := Build(cfg, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
		assert.Equal(t, a.Listing(), b.Listing())
	}
}
