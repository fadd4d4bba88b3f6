// Package config loads pipe-level configuration that sits alongside the
// core def/view/trie packages rather than inside them: settings a
// compiler pipeline needs but that core navigation is deliberately
// indifferent to.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// StressPolicy decides what a pipe does with a Transclusion's stress
// override field. Core view/cursor traversal never applies Stress itself;
// a policy is how a caller built on top of core opts into honoring it.
type StressPolicy int

const (
	// StressIgnore drops every transclusion's stress override, as if it
	// were never set. This is the default.
	StressIgnore StressPolicy = iota
	// StressOverride applies a transclusion's stress override to every
	// keysymbol of the sophemes it expands to.
	StressOverride
	// StressError rejects any transclusion carrying a nonzero stress
	// override.
	StressError
)

// String renders the policy using the same names recognized by
// ParseStressPolicy.
func (p StressPolicy) String() string {
	switch p {
	case StressIgnore:
		return "ignore"
	case StressOverride:
		return "override"
	case StressError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseStressPolicy parses the TOML-facing policy name. It is
// case-sensitive and accepts exactly "ignore", "override", or "error".
func ParseStressPolicy(name string) (StressPolicy, error) {
	switch name {
	case "ignore":
		return StressIgnore, nil
	case "override":
		return StressOverride, nil
	case "error":
		return StressError, nil
	default:
		return StressIgnore, fmt.Errorf("unrecognized stress policy %q", name)
	}
}

// UnmarshalText lets StressPolicy be read directly out of a TOML string
// value via BurntSushi/toml's encoding.TextUnmarshaler support.
func (p *StressPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseStressPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (p StressPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Pipe is the subset of pipe-level settings sophtrie loads from a TOML
// config file. Everything in it is ambient to the core def/view/trie
// model; the parser and view packages never look at it.
type Pipe struct {
	StressPolicy StressPolicy `toml:"stress_policy"`
}

// DefaultPipe is the configuration used when no config file is supplied.
func DefaultPipe() Pipe {
	return Pipe{StressPolicy: StressIgnore}
}

// LoadPipe reads and parses a Pipe config from the TOML file at path.
func LoadPipe(path string) (Pipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pipe{}, err
	}

	cfg := DefaultPipe()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Pipe{}, err
	}

	return cfg, nil
}
