package note

// Letter is one of the seven unqualified note names, ordered by scale
// position starting at C.
type Letter uint8

const (
	C = Letter(iota)
	D
	E
	F
	G
	A
	B
)

// LetterCount is the number of letters in the diatonic cycle.
const LetterCount = 7

var letterNames = [LetterCount]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// semitones above C for each natural letter
var letterSemitones = [LetterCount]int{0, 2, 4, 5, 7, 9, 11}

// LetterFromRune maps an upper-case A-G to its Letter.
func LetterFromRune(r rune) (Letter, bool) {
	switch r {
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	case 'A':
		return A, true
	case 'B':
		return B, true
	}
	return 0, false
}

func (l Letter) String() string {
	if l >= LetterCount {
		return "?"
	}
	return string(letterNames[l])
}

// Index is the scale position of the letter, C=0 through B=6.
func (l Letter) Index() int {
	return int(l)
}

// Semitone is the distance of the natural letter above C.
func (l Letter) Semitone() int {
	return letterSemitones[l%LetterCount]
}

// Add moves n steps around the letter cycle, wrapping in both directions.
func (l Letter) Add(n int) Letter {
	i := (int(l) + n) % LetterCount
	if i < 0 {
		i += LetterCount
	}
	return Letter(i)
}

func (l Letter) Next() Letter {
	return l.Add(1)
}

func (l Letter) Prev() Letter {
	return l.Add(-1)
}

func (l Letter) Tag() uint8 {
	return uint8(l)
}
