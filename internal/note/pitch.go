package note

import "strconv"

const (
	// MIDIOffset is the MIDI note number of Pitch(0), which is C in octave 0.
	MIDIOffset = 12
	// ReferenceOctave is the octave a bare Note sounds in when no octave is
	// given. Octave 4 holds middle C (MIDI 60).
	ReferenceOctave = 4

	MinMIDI = 0
	MaxMIDI = 127
)

// Pitch is an absolute chromatic position counted in semitones from C0.
// Enharmonic spellings share a Pitch.
type Pitch int

// NaturalPitch is the unaltered pitch of l in ReferenceOctave.
func NaturalPitch(l Letter) Pitch {
	return NaturalOf(l).Pitch()
}

func FromMIDI(n int) Pitch {
	return Pitch(n - MIDIOffset)
}

func (p Pitch) MIDI() int {
	return int(p) + MIDIOffset
}

// InMIDIRange reports whether p has a MIDI note number between 0 and 127.
func (p Pitch) InMIDIRange() bool {
	n := p.MIDI()
	return n >= MinMIDI && n <= MaxMIDI
}

// Key is the MIDI key for p. ok is false outside the MIDI range.
func (p Pitch) Key() (key uint8, ok bool) {
	if !p.InMIDIRange() {
		return 0, false
	}
	return uint8(p.MIDI()), true
}

// Chroma is the pitch class, 0 for C up to 11 for B.
func (p Pitch) Chroma() int {
	c := int(p) % 12
	if c < 0 {
		c += 12
	}
	return c
}

// Octave is the octave the pitch sounds in, rounding toward negative
// infinity so that Pitch(-1) is in octave -1.
func (p Pitch) Octave() int {
	o := int(p) / 12
	if int(p)%12 < 0 {
		o--
	}
	return o
}

func (p Pitch) SameChroma(q Pitch) bool {
	return p.Chroma() == q.Chroma()
}

// Interval is the signed number of semitones from p up to q.
func (p Pitch) Interval(q Pitch) int {
	return int(q - p)
}

func (p Pitch) Transpose(semitones int) Pitch {
	return p + Pitch(semitones)
}

// String spells the pitch with sharps followed by its octave, e.g. "C#4".
func (p Pitch) String() string {
	return FromSharp(p).ASCII() + strconv.Itoa(p.Octave())
}
