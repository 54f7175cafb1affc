package note

// Tagger is implemented by values that bind to a small integer attribute in a
// presentation layer. The tag is the ordinal of the value and carries no other
// meaning.
type Tagger interface {
	Tag() uint8
}

var (
	_ Tagger = Letter(0)
	_ Tagger = Accidental(0)
	_ Tagger = Note{}
)
