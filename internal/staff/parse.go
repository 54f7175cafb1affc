package staff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minikomi/staffnote/internal/note"
)

// ParseChord reads "<duration>:<item>,<item>,...". Duration is one of
// w, h, q (or whole, half, quarter). Each item is a staff position such as
// "-2" or a note with an octave such as "Bb4", placed using clef.
func ParseChord(s string, clef Clef) (Chord, error) {
	head, body, ok := strings.Cut(s, ":")
	if !ok {
		return Chord{}, fmt.Errorf("staff: chord %q: expected <duration>:<notes>", s)
	}
	d, err := ParseDuration(strings.TrimSpace(head))
	if err != nil {
		return Chord{}, err
	}

	var positions []int
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if p, err := strconv.Atoi(item); err == nil {
			positions = append(positions, p)
			continue
		}
		pn, err := note.ParsePitchNote(item)
		if err != nil {
			return Chord{}, fmt.Errorf("staff: chord %q: %w", s, err)
		}
		positions = append(positions, clef.Position(pn))
	}

	c, err := NewChord(d, positions...)
	if err != nil {
		return Chord{}, fmt.Errorf("staff: chord %q: %w", s, err)
	}
	return c, nil
}

// ParseMeasure parses each argument as a chord.
func ParseMeasure(chords []string, clef Clef) (Measure, error) {
	m := NewMeasure()
	for _, s := range chords {
		c, err := ParseChord(s, clef)
		if err != nil {
			return Measure{}, err
		}
		m = m.Append(c)
	}
	return m, nil
}
