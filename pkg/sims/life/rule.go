package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRule is returned for malformed rule strings.
var ErrBadRule = errors.New("malformed life-like rule")

// Rule is a life-like transition rule in birth/survival notation.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

var (
	// Conway is B3/S23.
	Conway = MustParseRule("B3/S23")
	// WithoutDeath is Life without Death, B3/S012345678.
	WithoutDeath = MustParseRule("B3/S012345678")
)

// ParseRule parses rules such as "B3/S23" or "S23/B3". Letters are case
// insensitive and either part may be empty ("B3/S").
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
	}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B':
			if seenB {
				return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
			}
			seenB, dst = true, &r.Birth
		case 'S':
			if seenS {
				return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
			}
			seenS, dst = true, &r.Survive
		default:
			return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("%w %q", ErrBadRule, s)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on error.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Next returns the next state of a cell with the given number of live
// neighbors.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
