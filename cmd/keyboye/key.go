package main

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/midiout"
	"github.com/minikomi/staffnote/internal/note"
)

const (
	minOctave = 2
	maxOctave = 7
)

type KeyboyeState struct {
	Octave      int
	ActiveNotes map[sdl.Keycode]note.PitchNote
}

func NewState(octave int) *KeyboyeState {
	return &KeyboyeState{
		Octave:      octave,
		ActiveNotes: map[sdl.Keycode]note.PitchNote{},
	}
}

// semitones above C of the current octave
var keyToSemitone = map[sdl.Keycode]int{
	sdl.K_a: 0,
	sdl.K_w: 1,
	sdl.K_s: 2,
	sdl.K_e: 3,
	sdl.K_d: 4,
	sdl.K_f: 5,
	sdl.K_t: 6,
	sdl.K_g: 7,
	sdl.K_y: 8,
	sdl.K_h: 9,
	sdl.K_u: 10,
	sdl.K_j: 11,
	// high octave
	sdl.K_k: 12,
	sdl.K_o: 13,
	sdl.K_l: 14,
}

var keyToCommand = map[sdl.Keycode]string{
	sdl.K_COMMA:  "octave down",
	sdl.K_PERIOD: "octave up",
}

func (s *KeyboyeState) pitchFor(semitone int) note.PitchNote {
	p := note.NaturalOf(note.C).PitchAt(s.Octave).Transpose(semitone)
	return note.PitchNoteFromSharp(p)
}

// Held returns the sounding notes from low to high.
func (s *KeyboyeState) Held() []note.PitchNote {
	held := make([]note.PitchNote, 0, len(s.ActiveNotes))
	for _, pn := range s.ActiveNotes {
		held = append(held, pn)
	}
	sort.Slice(held, func(i, j int) bool { return held[i].Pitch() < held[j].Pitch() })
	return held
}

// HandleKeyEvent plays or releases a note, or shifts the octave. It reports
// whether the held chord or octave changed.
func (s *KeyboyeState) HandleKeyEvent(ev *sdl.KeyboardEvent, wr *midiout.Writer, log *zap.Logger) bool {
	kc := ev.Keysym.Sym

	semitone, notePressed := keyToSemitone[kc]
	command, commandPressed := keyToCommand[kc]

	switch {
	case notePressed:
		// first keydown = ev.State = 1, ev.Repeat = 0
		switch {
		case ev.State == 1 && ev.Repeat == 0:
			pn := s.pitchFor(semitone)
			if err := wr.NoteOn(pn.Pitch(), midiout.DefaultVelocity); err != nil {
				log.Warn("note on failed", zap.Stringer("note", pn), zap.Error(err))
				return false
			}
			log.Info("pressed", zap.Stringer("note", pn), zap.Int("midi", pn.Pitch().MIDI()))
			s.ActiveNotes[kc] = pn
			return true
		case ev.State == 0:
			pn, ok := s.ActiveNotes[kc]
			if !ok {
				return false
			}
			delete(s.ActiveNotes, kc)
			if err := wr.NoteOff(pn.Pitch()); err != nil {
				log.Warn("note off failed", zap.Stringer("note", pn), zap.Error(err))
			}
			log.Info("released", zap.Stringer("note", pn))
			return true
		}
	case commandPressed:
		if ev.State != 1 || ev.Repeat != 0 {
			return false
		}
		switch command {
		case "octave down":
			if s.Octave > minOctave {
				s.Octave--
			}
		case "octave up":
			if s.Octave < maxOctave {
				s.Octave++
			}
		}
		log.Info("octave", zap.Int("octave", s.Octave))
		return true
	default:
		log.Debug("unmapped key", zap.Int32("scancode", int32(sdl.GetScancodeFromKey(kc))))
	}
	return false
}
