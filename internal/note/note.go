// Package note models written note spellings and the chromatic pitch space
// they sound in.
//
// Spellings are parsed from ASCII shorthand ("Bb", "C##") and formatted with
// Unicode accidental glyphs ("B♭", "C𝄪"). The two are deliberately not the
// same codec: Parse only reads ASCII, ParseGlyph only reads glyphs.
package note

import "strings"

// Note is a letter qualified by an accidental. It is a spelling, not a
// pitch: Note{E, Flat} and Note{D, Sharp} are different notes that share a
// Pitch.
type Note struct {
	Letter     Letter
	Accidental Accidental
}

func New(l Letter, a Accidental) Note {
	return Note{Letter: l, Accidental: a}
}

func NaturalOf(l Letter) Note     { return New(l, Natural) }
func FlatOf(l Letter) Note        { return New(l, Flat) }
func DoubleFlatOf(l Letter) Note  { return New(l, DoubleFlat) }
func SharpOf(l Letter) Note       { return New(l, Sharp) }
func DoubleSharpOf(l Letter) Note { return New(l, DoubleSharp) }

// spellings indexed by chroma
var (
	flatSpellings = [12]Note{
		{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
		{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
	}
	sharpSpellings = [12]Note{
		{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
		{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
	}
)

// FromFlat spells p with a flat when it falls on a black key. White-key
// pitches are always spelled as the natural letter.
func FromFlat(p Pitch) Note {
	return flatSpellings[p.Chroma()]
}

// FromSharp spells p with a sharp when it falls on a black key. White-key
// pitches are always spelled as the natural letter.
func FromSharp(p Pitch) Note {
	return sharpSpellings[p.Chroma()]
}

// Parse reads the ASCII spelling of a note: an upper-case letter A-G followed
// by at most one of "b", "bb", "#" or "##". Whitespace is not accepted.
func Parse(s string) (Note, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return Note{}, ErrEmptyInput
	}
	l, ok := LetterFromRune(runes[0])
	if !ok {
		return Note{}, invalid(runes[0], 0)
	}

	acc := Natural
	rest := runes[1:]
	if len(rest) > 0 {
		switch rest[0] {
		case 'b':
			acc = Flat
		case '#':
			acc = Sharp
		default:
			return Note{}, invalid(rest[0], 1)
		}
	}
	if len(rest) > 1 {
		if rest[1] != rest[0] {
			return Note{}, invalid(rest[1], 2)
		}
		if acc == Flat {
			acc = DoubleFlat
		} else {
			acc = DoubleSharp
		}
	}
	if len(rest) > 2 {
		return Note{}, invalid(rest[2], 3)
	}
	return New(l, acc), nil
}

// ParseGlyph reads the form produced by Note.String: a letter followed by at
// most one accidental glyph. A bare letter is read as natural.
func ParseGlyph(s string) (Note, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return Note{}, ErrEmptyInput
	}
	l, ok := LetterFromRune(runes[0])
	if !ok {
		return Note{}, invalid(runes[0], 0)
	}
	if len(runes) == 1 {
		return New(l, Natural), nil
	}

	acc, ok := accidentalFromGlyph(runes[1])
	if !ok {
		return Note{}, invalid(runes[1], 1)
	}
	if len(runes) > 2 {
		return Note{}, invalid(runes[2], 2)
	}
	return New(l, acc), nil
}

func accidentalFromGlyph(r rune) (Accidental, bool) {
	for a, g := range accidentalGlyphs {
		if []rune(g)[0] == r {
			return Accidental(a), true
		}
	}
	return 0, false
}

// MustParse is like Parse but panics on error. For literals only.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String formats the note with its accidental glyph. Naturals keep an
// explicit ♮, so the result is never accepted by Parse.
func (n Note) String() string {
	return n.Letter.String() + n.Accidental.String()
}

// ASCII formats the note in the shorthand accepted by Parse.
func (n Note) ASCII() string {
	var b strings.Builder
	b.WriteString(n.Letter.String())
	b.WriteString(n.Accidental.ASCII())
	return b.String()
}

// Pitch is the pitch of the note in ReferenceOctave.
func (n Note) Pitch() Pitch {
	return n.PitchAt(ReferenceOctave)
}

// PitchAt is the pitch of the note written in the given octave. The octave
// belongs to the letter, so Cb4 sounds as B3 and B#3 sounds as C4.
func (n Note) PitchAt(octave int) Pitch {
	return Pitch(octave*12 + n.Letter.Semitone() + n.Accidental.Delta())
}

// Tag packs the letter and accidental into one ordinal.
func (n Note) Tag() uint8 {
	return n.Letter.Tag()*uint8(len(accidentalDeltas)) + n.Accidental.Tag()
}
