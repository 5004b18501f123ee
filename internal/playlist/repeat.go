package playlist

import (
	"fmt"
	"strings"
)

// RepeatMode governs what happens when a track ends.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a known mode.
func (m RepeatMode) Valid() bool {
	return m >= RepeatOff && m <= RepeatOne
}

// RepeatCycle is the order CycleRepeat walks through the modes.
type RepeatCycle []RepeatMode

var (
	CycleOffAllOne = RepeatCycle{RepeatOff, RepeatAll, RepeatOne}
	CycleOffOneAll = RepeatCycle{RepeatOff, RepeatOne, RepeatAll}
)

// ParseRepeatCycle parses "off-all-one" or "off-one-all".
// An empty string yields the default off-all-one cycle.
func ParseRepeatCycle(s string) (RepeatCycle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off-all-one":
		return CycleOffAllOne, nil
	case "off-one-all":
		return CycleOffOneAll, nil
	default:
		return nil, fmt.Errorf("unknown repeat cycle %q", s)
	}
}

// Next returns the mode following m. Modes missing from the cycle restart it.
func (c RepeatCycle) Next(m RepeatMode) RepeatMode {
	if len(c) == 0 {
		return RepeatOff
	}
	for i, mode := range c {
		if mode == m {
			return c[(i+1)%len(c)]
		}
	}
	return c[0]
}

// String returns the cycle in config syntax.
func (c RepeatCycle) String() string {
	parts := make([]string, len(c))
	for i, m := range c {
		parts[i] = strings.ToLower(m.String())
	}
	return strings.Join(parts, "-")
}
