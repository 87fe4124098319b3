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

package main

import (
	"errors"
	"fmt"
	"go/token"
	"os"

	"github.com/drone/envsubst"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-bp128/cmd/bp128gen/ir"
	"github.com/ajroetker/go-bp128/cmd/bp128gen/synth"
)

// Config selects which kernels are generated and where they go.
type Config struct {
	Package    string   `yaml:"package"`
	Output     string   `yaml:"output"`
	WordSizes  []int    `yaml:"word_sizes"`
	Delta      []bool   `yaml:"delta"`
	Directions []string `yaml:"directions"`

	BufferDepth      int `yaml:"buffer_depth"`
	VectorRegisters  int `yaml:"vector_registers"`
	GeneralRegisters int `yaml:"general_registers"`
}

// DefaultConfig returns the configuration that generates all 384 kernels
// into the current directory as package bp128.
func DefaultConfig() *Config {
	opts := synth.DefaultOptions()
	return &Config{
		Package:          "bp128",
		Output:           ".",
		WordSizes:        []int{32, 64},
		Delta:            []bool{false, true},
		Directions:       []string{"pack", "unpack"},
		BufferDepth:      opts.BufferDepth,
		VectorRegisters:  opts.VectorRegisters,
		GeneralRegisters: opts.GeneralRegisters,
	}
}

// LoadConfig overlays the YAML file at path, if any, on DefaultConfig.
// Unknown keys are rejected. With expandEnv, ${VAR} references are replaced
// by environment variables before parsing.
func LoadConfig(path string, expandEnv bool) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if expandEnv {
		s, err := envsubst.EvalEnv(string(buff))
		if err != nil {
			return nil, fmt.Errorf("failed to expand env vars from config file %s: %w", path, err)
		}
		buff = []byte(s)
	}
	if err := yaml.UnmarshalStrict(buff, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs []error
	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a Go identifier", c.Package))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output directory is empty"))
	}
	if len(c.WordSizes) == 0 {
		errs = append(errs, errors.New("no word sizes"))
	}
	for _, w := range c.WordSizes {
		if w != 32 && w != 64 {
			errs = append(errs, fmt.Errorf("word size %d is not 32 or 64", w))
		}
	}
	if len(c.Delta) == 0 {
		errs = append(errs, errors.New("no delta settings"))
	}
	if _, err := c.directions(); err != nil {
		errs = append(errs, err)
	}
	if c.BufferDepth < 1 {
		errs = append(errs, fmt.Errorf("buffer depth %d must be positive", c.BufferDepth))
	}
	if c.VectorRegisters < 1 || c.VectorRegisters > ir.NumVector {
		errs = append(errs, fmt.Errorf("vector registers %d out of range [1, %d]", c.VectorRegisters, ir.NumVector))
	}
	if c.GeneralRegisters < 4 || c.GeneralRegisters > ir.NumGeneral {
		errs = append(errs, fmt.Errorf("general registers %d out of range [4, %d]", c.GeneralRegisters, ir.NumGeneral))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", synth.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) directions() ([]synth.Direction, error) {
	if len(c.Directions) == 0 {
		return nil, errors.New("no directions")
	}
	dirs := make([]synth.Direction, 0, len(c.Directions))
	for _, s := range c.Directions {
		d, err := synth.ParseDirection(s)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return lo.Uniq(dirs), nil
}

// Options returns the synthesizer resource limits.
func (c *Config) Options() synth.Options {
	return synth.Options{
		GeneralRegisters: c.GeneralRegisters,
		VectorRegisters:  c.VectorRegisters,
		BufferDepth:      c.BufferDepth,
	}
}

// Kernels enumerates every configured kernel, pack kernels first.
func (c *Config) Kernels() ([]synth.Config, error) {
	dirs, err := c.directions()
	if err != nil {
		return nil, err
	}
	return synth.EnumerateAll(dirs, lo.Uniq(c.WordSizes), lo.Uniq(c.Delta))
}
