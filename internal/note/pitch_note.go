package note

import (
	"fmt"
	"strconv"
	"unicode"
)

// PitchNote is a Pitch together with the Note chosen to write it. The
// constructors keep the two consistent.
type PitchNote struct {
	pitch Pitch
	note  Note
}

// NewPitchNote pairs p with the spelling n. It fails with ErrSpellingMismatch
// when n does not sound as p in any octave.
func NewPitchNote(p Pitch, n Note) (PitchNote, error) {
	if !n.Pitch().SameChroma(p) {
		return PitchNote{}, fmt.Errorf("%w: %s for %s", ErrSpellingMismatch, n.ASCII(), p)
	}
	return PitchNote{pitch: p, note: n}, nil
}

// NaturalPitchNote is the natural letter l in ReferenceOctave.
func NaturalPitchNote(l Letter) PitchNote {
	return PitchNote{pitch: NaturalPitch(l), note: NaturalOf(l)}
}

func PitchNoteFromFlat(p Pitch) PitchNote {
	return PitchNote{pitch: p, note: FromFlat(p)}
}

func PitchNoteFromSharp(p Pitch) PitchNote {
	return PitchNote{pitch: p, note: FromSharp(p)}
}

// PitchNoteFromNote places n in ReferenceOctave. Callers that need another
// octave use PitchNoteAt.
func PitchNoteFromNote(n Note) PitchNote {
	return PitchNote{pitch: n.Pitch(), note: n}
}

func PitchNoteAt(n Note, octave int) PitchNote {
	return PitchNote{pitch: n.PitchAt(octave), note: n}
}

// ParsePitchNote reads an ASCII spelling followed by an octave number, such
// as "Bb3" or "C#-1".
func ParsePitchNote(s string) (PitchNote, error) {
	runes := []rune(s)
	i := len(runes)
	for i > 0 && unicode.IsDigit(runes[i-1]) {
		i--
	}
	if i > 0 && i < len(runes) && runes[i-1] == '-' {
		i--
	}
	if i == len(runes) {
		if len(runes) == 0 {
			return PitchNote{}, ErrEmptyInput
		}
		n, err := Parse(s)
		if err != nil {
			return PitchNote{}, err
		}
		return PitchNote{}, fmt.Errorf("note: missing octave in %q (%s)", s, n.ASCII())
	}
	n, err := Parse(string(runes[:i]))
	if err != nil {
		return PitchNote{}, err
	}
	octave, err := strconv.Atoi(string(runes[i:]))
	if err != nil {
		return PitchNote{}, invalid(runes[i], i)
	}
	return PitchNoteAt(n, octave), nil
}

func (pn PitchNote) Pitch() Pitch {
	return pn.pitch
}

func (pn PitchNote) Note() Note {
	return pn.note
}

// Octave is the written octave of the spelling, which differs from the
// sounding octave for spellings like B#3 (sounds C4) and Cb4 (sounds B3).
func (pn PitchNote) Octave() int {
	base := int(pn.pitch) - pn.note.Letter.Semitone() - pn.note.Accidental.Delta()
	return Pitch(base).Octave()
}

func (pn PitchNote) String() string {
	return pn.note.String() + strconv.Itoa(pn.Octave())
}
