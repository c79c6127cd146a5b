package question

import "strings"

// Letter identifies one of the four answer choices.
type Letter int

// Answer letters in choice order.
const (
	A Letter = iota
	B
	C
	D
)

// ChoiceCount is the number of choices every question carries.
const ChoiceCount = 4

var letterNames = [ChoiceCount]string{"A", "B", "C", "D"}

// Letters lists the answer letters in choice order.
func Letters() []Letter {
	return []Letter{A, B, C, D}
}

// Valid reports whether the letter is one of A through D.
func (l Letter) Valid() bool {
	return l >= A && l <= D
}

// Index returns the zero-based choice index for the letter.
func (l Letter) Index() int {
	return int(l)
}

// String renders the letter, or "?" for out-of-range values.
func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return letterNames[l]
}

// LetterAt maps a zero-based choice index to its letter.
func LetterAt(index int) (Letter, bool) {
	letter := Letter(index)
	if !letter.Valid() {
		return A, false
	}
	return letter, true
}

// ParseLetter maps a case-insensitive answer letter to a Letter.
// Surrounding whitespace is not stripped.
func ParseLetter(value string) (Letter, bool) {
	upper := strings.ToUpper(value)
	for i, name := range letterNames {
		if upper == name {
			return Letter(i), true
		}
	}
	return A, false
}

// IsValidLetter reports whether value names an answer letter.
func IsValidLetter(value string) bool {
	_, ok := ParseLetter(value)
	return ok
}
