// Package staff lays out a measure of chords on a five-line staff.
//
// Rendering produces a Document of line and ellipse primitives. Writing the
// document anywhere is left to the caller, see package svg.
package staff

// Measure is an ordered sequence of chords rendered left to right.
type Measure struct {
	chords []Chord
}

func NewMeasure(chords ...Chord) Measure {
	m := Measure{}
	m.chords = append(m.chords, chords...)
	return m
}

// Append returns a measure with c added at the end.
func (m Measure) Append(c Chord) Measure {
	chords := make([]Chord, 0, len(m.chords)+1)
	chords = append(chords, m.chords...)
	return Measure{chords: append(chords, c)}
}

func (m Measure) Chords() []Chord {
	out := make([]Chord, len(m.chords))
	copy(out, m.chords)
	return out
}

func (m Measure) Len() int {
	return len(m.chords)
}

// Advance is the cursor position after the last chord.
func (m Measure) Advance(l Layout) int {
	x := l.StartX
	for _, c := range m.chords {
		x += l.Advance(c.duration)
	}
	return x
}

// Render draws the staff lines, then each chord at a cursor that moves right
// by the duration's advance.
func (m Measure) Render(l Layout) *Document {
	doc := &Document{Width: l.Width, Height: l.Height}

	for i := 0; i < l.LineCount; i++ {
		y := i*l.LineSpacing + l.StaffTop
		doc.add(Line{X1: 0, Y1: y, X2: l.StaffWidth, Y2: y, Stroke: l.StaffInk})
	}

	x := l.StartX
	for _, c := range m.chords {
		c.render(doc, l, x)
		x += l.Advance(c.duration)
	}
	doc.Cursor = x
	return doc
}
