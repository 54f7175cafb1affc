// Package svgdoc serializes a staff.Document as SVG.
package svgdoc

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/minikomi/staffnote/internal/staff"
)

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}

type canvas struct {
	svg *svgo.SVG
}

func (c canvas) Line(l staff.Line) {
	c.svg.Line(l.X1, l.Y1, l.X2, l.Y2, style("none", l.Stroke))
}

func (c canvas) Ellipse(e staff.Ellipse) {
	c.svg.Ellipse(e.CX, e.CY, e.RX, e.RY, style(e.Fill, e.Stroke))
}

// style renders a CSS style attribute, skipping empty values.
func style(fill, stroke string) string {
	var parts []string
	if fill != "" {
		parts = append(parts, "fill:"+fill)
	}
	if stroke != "" {
		parts = append(parts, "stroke:"+stroke)
	}
	return strings.Join(parts, ";")
}

// Write encodes doc as a standalone SVG document.
func Write(w io.Writer, doc *staff.Document) error {
	ew := &errWriter{w: w}
	s := svgo.New(ew)
	s.Start(doc.Width, doc.Height)
	doc.Draw(canvas{svg: s})
	s.End()
	if ew.err != nil {
		return fmt.Errorf("svgdoc: write: %w", ew.err)
	}
	return nil
}
