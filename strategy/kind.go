// SPDX-License-Identifier: MIT

package strategy

import (
	"fmt"
	"strings"
)

// Kind enumerates the built-in strategies.
type Kind int

const (
	Greedy Kind = iota
	Coordinated
	Optimized
)

var kindNames = [...]string{
	Greedy:      "greedy",
	Coordinated: "coordinated",
	Optimized:   "optimized",
}

// Kinds lists every Kind in cycling order.
func Kinds() []Kind { return []Kind{Greedy, Coordinated, Optimized} }

// String returns the lower-case name ("greedy", ...).
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Next returns the following Kind, wrapping Optimized back to Greedy.
func (k Kind) Next() Kind { return (k + 1) % Kind(len(kindNames)) }

// ParseKind accepts a name case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindNames) }
