package staff

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("staff: invalid layout")

// Layout holds every constant the engine draws with. DefaultLayout is the
// stock look; a YAML file can override any subset of fields.
type Layout struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	LineCount   int `yaml:"line_count"`
	LineSpacing int `yaml:"line_spacing"`
	StaffTop    int `yaml:"staff_top"`
	StaffWidth  int `yaml:"staff_width"`

	// Y(p) = (TopPosition - p) * StepHeight
	TopPosition int `yaml:"top_position"`
	StepHeight  int `yaml:"step_height"`

	StartX         int `yaml:"start_x"`
	WholeAdvance   int `yaml:"whole_advance"`
	HalfAdvance    int `yaml:"half_advance"`
	QuarterAdvance int `yaml:"quarter_advance"`

	NoteheadRX  int `yaml:"notehead_rx"`
	NoteheadRY  int `yaml:"notehead_ry"`
	StemLength  int `yaml:"stem_length"`
	StemMidline int `yaml:"stem_midline"`

	Ink      string `yaml:"ink"`
	StaffInk string `yaml:"staff_ink"`
}

func DefaultLayout() Layout {
	return Layout{
		Width:  500,
		Height: 200,

		LineCount:   5,
		LineSpacing: 20,
		StaffTop:    50,
		StaffWidth:  500,

		TopPosition: 13,
		StepHeight:  10,

		StartX:         10,
		WholeAdvance:   200,
		HalfAdvance:    100,
		QuarterAdvance: 50,

		NoteheadRX:  10,
		NoteheadRY:  5,
		StemLength:  40,
		StemMidline: 10,

		Ink:      "black",
		StaffInk: "#000",
	}
}

// ParseLayout overlays YAML on DefaultLayout and validates the result.
func ParseLayout(data []byte) (Layout, error) {
	l := DefaultLayout()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("staff: decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("staff: read layout: %w", err)
	}
	return ParseLayout(data)
}

func (l Layout) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"line_count", l.LineCount},
		{"line_spacing", l.LineSpacing},
		{"step_height", l.StepHeight},
		{"whole_advance", l.WholeAdvance},
		{"half_advance", l.HalfAdvance},
		{"quarter_advance", l.QuarterAdvance},
		{"notehead_rx", l.NoteheadRX},
		{"notehead_ry", l.NoteheadRY},
		{"width", l.Width},
		{"height", l.Height},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidLayout, f.name, f.v)
		}
	}
	if l.Ink == "" || l.StaffInk == "" {
		return fmt.Errorf("%w: ink colours must be set", ErrInvalidLayout)
	}
	return nil
}

// Y maps a staff position to a vertical coordinate.
func (l Layout) Y(position int) int {
	return (l.TopPosition - position) * l.StepHeight
}

// Advance is how far the cursor moves after a chord of duration d.
func (l Layout) Advance(d Duration) int {
	switch d {
	case Whole:
		return l.WholeAdvance
	case Half:
		return l.HalfAdvance
	default:
		return l.QuarterAdvance
	}
}
