// Package config loads register configurations from YAML files, the format
// drivers use to carry a (size, state, taps) triple around:
//
//	size: 4
//	state: 0b0110
//	taps: [0, 3]
//
// State accepts decimal, 0b, 0o, and 0x forms, quoted or bare. Validation
// of the triple itself belongs to lfsr.New; this package only gets the
// numbers out of the file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/lfsrkit/pkg/lfsr"
)

// Spec is a register configuration as read from disk.
type Spec struct {
	Size  int    `yaml:"size"`
	State Number `yaml:"state"`
	Taps  []int  `yaml:"taps"`
}

// Number is a uint64 that unmarshals from any integer literal form Go's
// strconv accepts with base 0 (decimal, 0b..., 0o..., 0x..., underscores).
type Number uint64

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseNumber(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = Number(v)
	return nil
}

// ParseNumber parses an unsigned integer literal in any base-0 form.
func ParseNumber(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q (want decimal, 0b, 0o, or 0x form)", s)
	}
	return v, nil
}

// Load reads and decodes a Spec from path. Unknown fields are rejected so a
// typo like "tap:" fails loudly instead of yielding an empty tap set.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &spec, nil
}

// Register constructs the register the spec describes. All invariant checks
// (size range, non-zero state, tap bounds) happen in lfsr.New.
func (s *Spec) Register() (*lfsr.Register, error) {
	return lfsr.New(s.Size, uint64(s.State), s.Taps)
}
