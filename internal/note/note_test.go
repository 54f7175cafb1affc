package note

import (
	"errors"
	"testing"
)

var allLetters = []Letter{C, D, E, F, G, A, B}
var allAccidentals = []Accidental{Natural, Flat, DoubleFlat, Sharp, DoubleSharp}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Note
		wantErr error
		badChar rune
	}{
		{in: "C", want: Note{C, Natural}},
		{in: "Bb", want: Note{B, Flat}},
		{in: "Ebb", want: Note{E, DoubleFlat}},
		{in: "F#", want: Note{F, Sharp}},
		{in: "G##", want: Note{G, DoubleSharp}},
		{in: "", wantErr: ErrEmptyInput},
		{in: "H", wantErr: ErrInvalidCharacter, badChar: 'H'},
		{in: "c", wantErr: ErrInvalidCharacter, badChar: 'c'},
		{in: " C", wantErr: ErrInvalidCharacter, badChar: ' '},
		{in: "C ", wantErr: ErrInvalidCharacter, badChar: ' '},
		{in: "Cbbb", wantErr: ErrInvalidCharacter, badChar: 'b'},
		{in: "C###", wantErr: ErrInvalidCharacter, badChar: '#'},
		{in: "Cb#", wantErr: ErrInvalidCharacter, badChar: '#'},
		{in: "C#b", wantErr: ErrInvalidCharacter, badChar: 'b'},
		{in: "Cx", wantErr: ErrInvalidCharacter, badChar: 'x'},
		{in: "C♯", wantErr: ErrInvalidCharacter, badChar: '♯'},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				if got != tc.want {
					t.Fatalf("expected %+v, got %+v", tc.want, got)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.badChar != 0 {
				var ic *InvalidCharacterError
				if !errors.As(err, &ic) {
					t.Fatalf("expected *InvalidCharacterError, got %T", err)
				}
				if ic.Char != tc.badChar {
					t.Fatalf("expected offending char %q, got %q", tc.badChar, ic.Char)
				}
			}
		})
	}
}

func TestParseRejectsThirdAccidentalAtItsPosition(t *testing.T) {
	_, err := Parse("Cbbb")
	var ic *InvalidCharacterError
	if !errors.As(err, &ic) {
		t.Fatalf("expected *InvalidCharacterError, got %v", err)
	}
	if ic.Pos != 3 {
		t.Fatalf("expected position 3, got %d", ic.Pos)
	}
}

// Only naturals round-trip through String and Parse, because String always
// writes a glyph. ASCII is the form Parse reads back.
func TestFormatParseAsymmetry(t *testing.T) {
	for _, l := range allLetters {
		n := NaturalOf(l)
		got, err := Parse(n.Letter.String() + n.Accidental.ASCII())
		if err != nil || got != n {
			t.Fatalf("natural %s did not round-trip: %+v, %v", l, got, err)
		}
		if _, err := Parse(n.String()); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("expected glyph form %q to be rejected by Parse, got %v", n.String(), err)
		}
	}

	for _, l := range allLetters {
		for _, a := range allAccidentals {
			n := New(l, a)
			got, err := Parse(n.ASCII())
			if err != nil || got != n {
				t.Fatalf("ASCII %q did not round-trip: %+v, %v", n.ASCII(), got, err)
			}
			got, err = ParseGlyph(n.String())
			if err != nil || got != n {
				t.Fatalf("glyph %q did not round-trip: %+v, %v", n.String(), got, err)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := map[Note]string{
		NaturalOf(C):     "C♮",
		FlatOf(B):        "B♭",
		DoubleFlatOf(E):  "E𝄫",
		SharpOf(F):       "F♯",
		DoubleSharpOf(G): "G𝄪",
	}
	for n, want := range tests {
		if got := n.String(); got != want {
			t.Errorf("%+v: expected %q, got %q", n, want, got)
		}
	}
}

func TestParseGlyphErrors(t *testing.T) {
	if _, err := ParseGlyph(""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := ParseGlyph("Cb"); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ASCII accidental to be rejected, got %v", err)
	}
	if _, err := ParseGlyph("C♯♯"); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected doubled glyph to be rejected, got %v", err)
	}
}

func TestEnharmonicEquivalence(t *testing.T) {
	if SharpOf(C).Pitch() != FlatOf(D).Pitch() {
		t.Fatalf("C# and Db should share a pitch")
	}
	if SharpOf(C) == FlatOf(D) {
		t.Fatalf("C# and Db are different spellings")
	}
	if DoubleSharpOf(B).Pitch().Chroma() != SharpOf(C).Pitch().Chroma() {
		t.Fatalf("B## and C# should share a chroma")
	}
}

func TestSpellingBias(t *testing.T) {
	for p := Pitch(0); p < 24; p++ {
		flat, sharp := FromFlat(p), FromSharp(p)
		if !flat.Pitch().SameChroma(p) || !sharp.Pitch().SameChroma(p) {
			t.Fatalf("%d: spellings %s / %s do not sound as the pitch", p, flat, sharp)
		}
		if flat.Accidental == Sharp || sharp.Accidental == Flat {
			t.Fatalf("%d: wrong bias %s / %s", p, flat, sharp)
		}
		if flat.Accidental.IsNatural() != sharp.Accidental.IsNatural() {
			t.Fatalf("%d: white keys must spell naturally under both biases", p)
		}
		if flat.Accidental.IsNatural() && flat != sharp {
			t.Fatalf("%d: natural spellings differ %s / %s", p, flat, sharp)
		}
	}
}

func TestLetterCycle(t *testing.T) {
	if B.Next() != C || C.Prev() != B {
		t.Fatalf("letter cycle does not wrap")
	}
	for _, l := range allLetters {
		if l.Next().Prev() != l {
			t.Fatalf("%s: Next/Prev are not inverse", l)
		}
		if l.Add(LetterCount) != l || l.Add(-LetterCount) != l {
			t.Fatalf("%s: Add is not cyclic", l)
		}
	}
	if E.Add(-10) != E.Add(4) {
		t.Fatalf("negative Add should wrap")
	}
}

func TestTags(t *testing.T) {
	seen := map[uint8]Note{}
	for _, l := range allLetters {
		for _, a := range allAccidentals {
			n := New(l, a)
			var tg Tagger = n
			if prev, ok := seen[tg.Tag()]; ok {
				t.Fatalf("tag %d shared by %s and %s", tg.Tag(), prev, n)
			}
			seen[tg.Tag()] = n
		}
	}
	if Natural.Tag() != 0 || DoubleSharp.Tag() != 4 {
		t.Fatalf("accidental tags should be ordinals")
	}
}
