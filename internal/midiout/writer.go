// Package midiout sends pitches to a MIDI stream as channel messages.
package midiout

import (
	"errors"
	"fmt"
	"io"

	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/note"
)

var (
	ErrNoteRunning    = errors.New("midiout: note already running")
	ErrNoteNotRunning = errors.New("midiout: note is not running")
	ErrOutOfRange     = errors.New("midiout: pitch outside MIDI range")
)

// DefaultVelocity is the velocity keyboye plays at.
const DefaultVelocity = 90

// Writer tracks which notes are sounding so that it never sends a duplicate
// note on or a dangling note off, unless consolidation is disabled.
type Writer struct {
	wr              midi.Writer
	ch              channel.Channel
	noteState       [16][128]bool
	noConsolidation bool
	log             *zap.Logger
}

type Option func(*Writer)

func WithChannel(ch channel.Channel) Option {
	return func(w *Writer) {
		w.ch = ch
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(w *Writer) {
		w.log = l
	}
}

// WithoutConsolidation passes every message through unchecked.
func WithoutConsolidation() Option {
	return func(w *Writer) {
		w.noConsolidation = true
	}
}

func NewWriter(dest io.Writer, opts ...Option) *Writer {
	w := &Writer{
		wr:  midiwriter.New(dest, midiwriter.NoRunningStatus()),
		ch:  channel.Channel0,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func key(p note.Pitch) (uint8, error) {
	k, ok := p.Key()
	if !ok {
		return 0, fmt.Errorf("%w: %s (MIDI %d)", ErrOutOfRange, p, p.MIDI())
	}
	return k, nil
}

func (w *Writer) NoteOn(p note.Pitch, velocity uint8) error {
	k, err := key(p)
	if err != nil {
		return err
	}
	w.log.Debug("note on", zap.Stringer("pitch", p), zap.Uint8("key", k), zap.Uint8("velocity", velocity))
	return w.Write(w.ch.NoteOn(k, velocity))
}

func (w *Writer) NoteOff(p note.Pitch) error {
	k, err := key(p)
	if err != nil {
		return err
	}
	w.log.Debug("note off", zap.Stringer("pitch", p), zap.Uint8("key", k))
	return w.Write(w.ch.NoteOff(k))
}

// ChordOn starts every pitch, continuing past failures. All errors are
// returned combined.
func (w *Writer) ChordOn(pitches []note.Pitch, velocity uint8) error {
	var err error
	for _, p := range pitches {
		err = multierr.Append(err, w.NoteOn(p, velocity))
	}
	return err
}

func (w *Writer) ChordOff(pitches []note.Pitch) error {
	var err error
	for _, p := range pitches {
		err = multierr.Append(err, w.NoteOff(p))
	}
	return err
}

// AllOff stops every note still sounding on the writer's channel.
func (w *Writer) AllOff() error {
	ch := w.ch.NoteOff(0).Channel()
	var err error
	for k := range w.noteState[ch] {
		if w.noteState[ch][k] {
			err = multierr.Append(err, w.Write(w.ch.NoteOff(uint8(k))))
		}
	}
	return err
}

// Running reports whether p is sounding on the writer's channel.
func (w *Writer) Running(p note.Pitch) bool {
	k, ok := p.Key()
	if !ok {
		return false
	}
	return w.noteState[w.ch.NoteOff(0).Channel()][k]
}

func (w *Writer) Write(msg midi.Message) error {
	if w.noConsolidation {
		return w.wr.Write(msg)
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("%w: can't write %s", ErrNoteRunning, msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("%w: can't write %s", ErrNoteNotRunning, msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("%w: can't write %s", ErrNoteNotRunning, msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("%w: can't write %s", ErrNoteNotRunning, msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}
