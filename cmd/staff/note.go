package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/note"
)

func (a *app) noteCmd() *cobra.Command {
	var glyph bool
	cmd := &cobra.Command{
		Use:   "note [spelling]...",
		Short: "print pitch, MIDI number and enharmonic spellings of notes such as Bb or C#5",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				pn, err := parseSpelling(arg, glyph)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				a.log.Debug("parsed note", zap.String("input", arg), zap.Stringer("note", pn))
				p := pn.Pitch()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tascii=%s pitch=%d midi=%d flat=%s sharp=%s tag=%d\n",
					pn, pn.Note().ASCII(), int(p), p.MIDI(),
					note.PitchNoteFromFlat(p), note.PitchNoteFromSharp(p), pn.Note().Tag())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&glyph, "glyph", false, "read spellings written with accidental glyphs (B♭) instead of ASCII (Bb)")
	return cmd
}

// parseSpelling accepts a bare spelling, placed in the reference octave, or
// an ASCII spelling followed by an octave.
func parseSpelling(s string, glyph bool) (note.PitchNote, error) {
	if glyph {
		n, err := note.ParseGlyph(s)
		if err != nil {
			return note.PitchNote{}, err
		}
		return note.PitchNoteFromNote(n), nil
	}
	if n, err := note.Parse(s); err == nil {
		return note.PitchNoteFromNote(n), nil
	}
	return note.ParsePitchNote(s)
}

func (a *app) midiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "midi [number]...",
		Short: "print the flat and sharp spellings of MIDI note numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%q: not a MIDI note number", arg)
				}
				p := note.FromMIDI(n)
				if !p.InMIDIRange() {
					return fmt.Errorf("%d: outside MIDI range %d-%d", n, note.MinMIDI, note.MaxMIDI)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\tflat=%s sharp=%s\n",
					n, note.PitchNoteFromFlat(p), note.PitchNoteFromSharp(p))
			}
			return nil
		},
	}
}
