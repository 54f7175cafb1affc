package staff

// Canvas receives drawing primitives in document order.
type Canvas interface {
	Line(Line)
	Ellipse(Ellipse)
}

// Shape is a Line or an Ellipse.
type Shape interface {
	DrawTo(Canvas)
}

type Line struct {
	X1, Y1, X2, Y2 int
	Stroke         string

	stem bool
}

// IsStem reports whether the line is a note stem rather than a staff line.
func (l Line) IsStem() bool {
	return l.stem
}

func (l Line) DrawTo(c Canvas) {
	c.Line(l)
}

// Ellipse is a notehead. An empty Stroke means no outline.
type Ellipse struct {
	CX, CY, RX, RY int
	Fill, Stroke   string
}

func (e Ellipse) DrawTo(c Canvas) {
	c.Ellipse(e)
}

// Document is the output of Measure.Render.
type Document struct {
	Width, Height int
	Shapes        []Shape

	// Cursor is the horizontal position after the last chord.
	Cursor int
}

func (d *Document) add(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Draw replays every shape onto c.
func (d *Document) Draw(c Canvas) {
	for _, s := range d.Shapes {
		s.DrawTo(c)
	}
}

func (d *Document) Lines() []Line {
	var out []Line
	for _, s := range d.Shapes {
		if l, ok := s.(Line); ok {
			out = append(out, l)
		}
	}
	return out
}

// Stems returns the stem lines in drawing order.
func (d *Document) Stems() []Line {
	var out []Line
	for _, l := range d.Lines() {
		if l.stem {
			out = append(out, l)
		}
	}
	return out
}

func (d *Document) Ellipses() []Ellipse {
	var out []Ellipse
	for _, s := range d.Shapes {
		if e, ok := s.(Ellipse); ok {
			out = append(out, e)
		}
	}
	return out
}
