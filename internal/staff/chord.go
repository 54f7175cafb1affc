package staff

import (
	"errors"
	"sort"
)

var (
	ErrEmptyChord      = errors.New("staff: chord has no positions")
	ErrUnknownDuration = errors.New("staff: unknown duration")
)

// Chord is a set of staff positions sounding together for one Duration.
// Position 0 is the bottom staff line and each step up is one line or space.
//
// The zero Chord is not valid; use NewChord.
type Chord struct {
	positions []int
	duration  Duration
}

// NewChord builds a chord from staff positions. Duplicates collapse and the
// positions are kept in ascending order. At least one position is required.
func NewChord(d Duration, positions ...int) (Chord, error) {
	if len(positions) == 0 {
		return Chord{}, ErrEmptyChord
	}
	set := make([]int, len(positions))
	copy(set, positions)
	sort.Ints(set)

	uniq := set[:1]
	for _, p := range set[1:] {
		if p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	return Chord{positions: uniq, duration: d}, nil
}

// MustChord is like NewChord but panics on an empty chord.
func MustChord(d Duration, positions ...int) Chord {
	c, err := NewChord(d, positions...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Chord) Duration() Duration {
	return c.duration
}

// Positions returns a copy of the ascending position set.
func (c Chord) Positions() []int {
	out := make([]int, len(c.positions))
	copy(out, c.positions)
	return out
}

func (c Chord) Low() int {
	return c.positions[0]
}

func (c Chord) High() int {
	return c.positions[len(c.positions)-1]
}

// StemLeft reports whether the stem goes on the left of the noteheads,
// pointing down. That is the case when low > StemMidline - high.
func (c Chord) StemLeft(l Layout) bool {
	return c.Low() > l.StemMidline-c.High()
}

func (c Chord) render(doc *Document, l Layout, x int) {
	for _, p := range c.positions {
		e := Ellipse{
			CX:     x + l.NoteheadRX,
			CY:     l.Y(p),
			RX:     l.NoteheadRX,
			RY:     l.NoteheadRY,
			Fill:   "none",
			Stroke: l.Ink,
		}
		if c.duration.Filled() {
			e.Fill = l.Ink
			e.Stroke = ""
		}
		doc.add(e)
	}

	if !c.duration.HasStem() {
		return
	}

	low, high := l.Y(c.Low()), l.Y(c.High())
	if c.StemLeft(l) {
		doc.add(Line{X1: x, Y1: low + l.StemLength, X2: x, Y2: high, Stroke: l.Ink, stem: true})
		return
	}
	sx := x + 2*l.NoteheadRX
	doc.add(Line{X1: sx, Y1: low, X2: sx, Y2: high - l.StemLength, Stroke: l.Ink, stem: true})
}
