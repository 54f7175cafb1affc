package note

// Accidental alters a letter by a fixed number of semitones.
type Accidental uint8

const (
	Natural = Accidental(iota)
	Flat
	DoubleFlat
	Sharp
	DoubleSharp
)

var accidentalDeltas = [...]int{
	Natural:     0,
	Flat:        -1,
	DoubleFlat:  -2,
	Sharp:       1,
	DoubleSharp: 2,
}

var accidentalGlyphs = [...]string{
	Natural:     "♮",
	Flat:        "♭",
	DoubleFlat:  "𝄫",
	Sharp:       "♯",
	DoubleSharp: "𝄪",
}

var accidentalASCII = [...]string{
	Natural:     "",
	Flat:        "b",
	DoubleFlat:  "bb",
	Sharp:       "#",
	DoubleSharp: "##",
}

// Delta is the semitone offset the accidental applies.
func (a Accidental) Delta() int {
	if int(a) >= len(accidentalDeltas) {
		return 0
	}
	return accidentalDeltas[a]
}

func (a Accidental) IsNatural() bool {
	return a == Natural
}

// String renders the musical glyph, including an explicit natural sign.
func (a Accidental) String() string {
	if int(a) >= len(accidentalGlyphs) {
		return "?"
	}
	return accidentalGlyphs[a]
}

// ASCII renders the shorthand accepted by Parse. Natural is empty.
func (a Accidental) ASCII() string {
	if int(a) >= len(accidentalASCII) {
		return "?"
	}
	return accidentalASCII[a]
}

// Tag is the ordinal of the accidental, for UI layers that bind enum values
// as small integers.
func (a Accidental) Tag() uint8 {
	return uint8(a)
}
