package note

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a note spelling is empty.
	ErrEmptyInput = errors.New("note: empty input")
	// ErrInvalidCharacter matches any *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("note: invalid character")
	// ErrSpellingMismatch is returned when a note cannot spell a pitch.
	ErrSpellingMismatch = errors.New("note: spelling does not match pitch")
)

// InvalidCharacterError reports the first character that does not fit the
// note grammar and its rune offset in the input.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("note: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func invalid(c rune, pos int) error {
	return &InvalidCharacterError{Char: c, Pos: pos}
}
