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

	"github.com/samber/lo"
)

// Enumerate lists every kernel of one direction: for each delta setting, each
// word size, and each bit width 1..word size, in that nesting order. With the
// default word sizes {32, 64} and deltas {false, true} that is 192 kernels:
// pack32_1..pack32_32, pack64_1..pack64_64, then the delta variants.
func Enumerate(dir Direction, wordSizes []int, deltas []bool) ([]Config, error) {
	var configs []Config
	for _, delta := range deltas {
		for _, w := range wordSizes {
			if w != 32 && w != 64 {
				return nil, fmt.Errorf("%w: word size %d (want 32 or 64)", ErrInvalidConfig, w)
			}
			configs = append(configs, lo.Map(lo.RangeFrom(1, w), func(b int, _ int) Config {
				return Config{Direction: dir, WordSize: w, BitWidth: b, Delta: delta}
			})...)
		}
	}
	return configs, nil
}

// EnumerateAll concatenates Enumerate over every direction.
func EnumerateAll(dirs []Direction, wordSizes []int, deltas []bool) ([]Config, error) {
	var all []Config
	for _, d := range lo.Uniq(dirs) {
		configs, err := Enumerate(d, wordSizes, deltas)
		if err != nil {
			return nil, err
		}
		all = append(all, configs...)
	}
	return all, nil
}
