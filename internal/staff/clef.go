package staff

import "github.com/minikomi/staffnote/internal/note"

// Clef fixes which written note sits on the bottom staff line.
type Clef struct {
	Name   string
	Bottom note.Letter
	Octave int
}

var (
	Treble = Clef{Name: "treble", Bottom: note.E, Octave: 4}
	Bass   = Clef{Name: "bass", Bottom: note.G, Octave: 2}
)

var clefs = map[string]Clef{
	Treble.Name: Treble,
	Bass.Name:   Bass,
}

// ClefByName looks up "treble" or "bass".
func ClefByName(name string) (Clef, bool) {
	c, ok := clefs[name]
	return c, ok
}

// Position is the staff position of the written note. Only the letter and
// written octave count; accidentals do not move a note on the staff.
func (c Clef) Position(pn note.PitchNote) int {
	return diatonic(pn.Note().Letter, pn.Octave()) - diatonic(c.Bottom, c.Octave)
}

func diatonic(l note.Letter, octave int) int {
	return octave*note.LetterCount + l.Index()
}

// Chord places each note on the staff and builds a chord of duration d.
func (c Clef) Chord(d Duration, notes ...note.PitchNote) (Chord, error) {
	positions := make([]int, len(notes))
	for i, pn := range notes {
		positions[i] = c.Position(pn)
	}
	return NewChord(d, positions...)
}
