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

import "errors"

var (
	// ErrInvalidConfig reports a (direction, word size, bit width) the synthesizer cannot build.
	ErrInvalidConfig = errors.New("invalid kernel configuration")

	// ErrPoolExhausted reports that a register was requested from an empty pool.
	// For valid configurations and the default pools this never happens.
	ErrPoolExhausted = errors.New("register pool exhausted")

	// ErrInvariant reports an internal bookkeeping inconsistency, such as a
	// schedule that does not end on a word boundary.
	ErrInvariant = errors.New("synthesis invariant violated")

	// ErrMismatch reports a simulated kernel whose output differs from the
	// portable reference kernels.
	ErrMismatch = errors.New("kernel output mismatch")
)
