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

import "fmt"

// StepKind is one action of the bit-offset accumulator.
type StepKind int

const (
	// StepMerge shifts an element left by Shift and adds it to the pending word.
	StepMerge StepKind = iota

	// StepStore folds the pending word and writes it out; the cursor was exactly
	// at the word boundary.
	StepStore

	// StepSplit handles an element that straddles two words: its low bits
	// (shifted left by Shift) complete the current word, which is stored, and
	// its high bits (shifted right by Carry) start the next one.
	StepSplit
)

// String returns a human-readable name for the StepKind.
func (k StepKind) String() string {
	switch k {
	case StepMerge:
		return "merge"
	case StepStore:
		return "store"
	case StepSplit:
		return "split"
	default:
		return fmt.Sprintf("StepKind(%d)", k)
	}
}

// Step is one entry of a pack schedule.
type Step struct {
	Kind    StepKind
	Element int // -1 for StepStore
	Word    int // output word being completed
	Shift   int
	Carry   int
}

// PackSchedule walks the bit cursor over wordSize elements of bitWidth bits
// and returns the merges, stores and splits that produce exactly bitWidth
// output words. The cursor is back at zero after the last step.
func PackSchedule(wordSize, bitWidth int) ([]Step, error) {
	if err := checkWidths(wordSize, bitWidth); err != nil {
		return nil, err
	}
	period := CursorPeriod(wordSize, bitWidth)
	steps := make([]Step, 0, wordSize+bitWidth)
	elem, cursor := 0, 0
	for word := 0; word < bitWidth; word++ {
		for cursor+bitWidth <= wordSize && elem < wordSize {
			steps = append(steps, Step{Kind: StepMerge, Element: elem, Word: word, Shift: cursor})
			elem++
			cursor += bitWidth
		}
		switch {
		case cursor == wordSize:
			if elem%period != 0 {
				return nil, fmt.Errorf("%w: %d_%d reached a word boundary after %d elements, period %d", ErrInvariant, wordSize, bitWidth, elem, period)
			}
			steps = append(steps, Step{Kind: StepStore, Element: -1, Word: word})
			cursor = 0
		case elem < wordSize:
			steps = append(steps, Step{Kind: StepSplit, Element: elem, Word: word, Shift: cursor, Carry: wordSize - cursor})
			elem++
			cursor += bitWidth - wordSize
		default:
			return nil, fmt.Errorf("%w: word %d of %d_%d ran out of elements at bit %d", ErrInvariant, word, wordSize, bitWidth, cursor)
		}
	}
	if elem != wordSize || cursor != 0 {
		return nil, fmt.Errorf("%w: %d_%d consumed %d elements, cursor at %d", ErrInvariant, wordSize, bitWidth, elem, cursor)
	}
	return steps, nil
}

// Field locates one element inside the packed words.
type Field struct {
	Element int
	Word    int
	Shift   int // right shift that brings the field to bit 0

	// Straddle is set when the field's high bits live in Word+1, starting at bit 0.
	Straddle bool

	// Last is set when no later field starts in Word.
	Last bool
}

// UnpackSchedule returns where each of the wordSize elements lives in a
// block packed at bitWidth.
func UnpackSchedule(wordSize, bitWidth int) ([]Field, error) {
	if err := checkWidths(wordSize, bitWidth); err != nil {
		return nil, err
	}
	fields := make([]Field, wordSize)
	for k := range fields {
		p := k * bitWidth
		i := p % wordSize
		fields[k] = Field{
			Element:  k,
			Word:     p / wordSize,
			Shift:    i,
			Straddle: i+bitWidth > wordSize,
			Last:     i+bitWidth >= wordSize,
		}
	}
	return fields, nil
}

// CursorPeriod returns how many elements it takes for the bit cursor to come
// back to zero: wordSize/gcd(wordSize, bitWidth).
func CursorPeriod(wordSize, bitWidth int) int {
	a, b := wordSize, bitWidth
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 0
	}
	return wordSize / a
}

func checkWidths(wordSize, bitWidth int) error {
	return Config{WordSize: wordSize, BitWidth: bitWidth}.Validate()
}
