package main

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/staff"
)

// sdlCanvas draws staff primitives with an SDL renderer, offset by a margin.
type sdlCanvas struct {
	r      *sdl.Renderer
	dx, dy int32
}

func (c sdlCanvas) Line(l staff.Line) {
	c.r.SetDrawColor(0, 0, 0, 255)
	c.r.DrawLine(c.dx+int32(l.X1), c.dy+int32(l.Y1), c.dx+int32(l.X2), c.dy+int32(l.Y2))
}

func (c sdlCanvas) Ellipse(e staff.Ellipse) {
	c.r.SetDrawColor(0, 0, 0, 255)
	filled := e.Fill != "" && e.Fill != "none"
	cx, cy := c.dx+int32(e.CX), c.dy+int32(e.CY)
	ry := float64(e.RY)
	for dy := -e.RY; dy <= e.RY; dy++ {
		t := float64(dy) / ry
		w := int32(math.Round(float64(e.RX) * math.Sqrt(1-t*t)))
		y := cy + int32(dy)
		if filled {
			c.r.DrawLine(cx-w, y, cx+w, y)
			continue
		}
		c.r.DrawPoint(cx-w, y)
		c.r.DrawPoint(cx+w, y)
	}
}

// Draw renders the held notes as one quarter chord on a treble staff.
func Draw(renderer *sdl.Renderer, state *KeyboyeState, layout staff.Layout, log *zap.Logger) {
	renderer.SetDrawColor(225, 225, 225, 255)
	renderer.Clear()

	m := staff.NewMeasure()
	if held := state.Held(); len(held) > 0 {
		c, err := staff.Treble.Chord(staff.Quarter, held...)
		if err != nil {
			log.Warn("chord", zap.Error(err))
		} else {
			m = m.Append(c)
		}
	}
	doc := m.Render(layout)
	doc.Draw(sdlCanvas{r: renderer, dx: 150, dy: 150})

	// octave marker
	renderer.SetDrawColor(255, 30, 30, 255)
	rect := sdl.Rect{X: 10 + 70*int32(state.Octave-minOctave), Y: 10, W: 70, H: 4}
	renderer.FillRect(&rect)

	renderer.Present()
}
