package staff

import (
	"fmt"
	"strings"
)

// Duration is the written length of a chord.
type Duration uint8

const (
	Whole = Duration(iota)
	Half
	Quarter
)

func (d Duration) String() string {
	switch d {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	}
	return fmt.Sprintf("Duration(%d)", uint8(d))
}

// Filled reports whether the notehead is drawn solid.
func (d Duration) Filled() bool {
	return d == Quarter
}

// HasStem reports whether the chord gets a stem. Whole notes never do.
func (d Duration) HasStem() bool {
	return d != Whole
}

// ParseDuration accepts the full name or its first letter, in any case.
func ParseDuration(s string) (Duration, error) {
	switch strings.ToLower(s) {
	case "w", "whole":
		return Whole, nil
	case "h", "half":
		return Half, nil
	case "q", "quarter":
		return Quarter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDuration, s)
}
