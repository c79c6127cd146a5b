package question

// Choices holds the answer texts for letters A through D.
type Choices [ChoiceCount]string

// Question is a multiple-choice question occupying one store slot.
// The zero value is the canonical empty question.
type Question struct {
	Text    string
	Choices Choices
	Answer  Letter
}

// Empty returns the canonical empty question.
func Empty() Question {
	return Question{Answer: A}
}

// IsFilled reports whether q carries text and a valid answer letter.
func IsFilled(q Question) bool {
	return q.Text != "" && q.Answer.Valid()
}

// Filled is shorthand for IsFilled(q).
func (q Question) Filled() bool {
	return IsFilled(q)
}

// Choice returns the choice text for a letter.
func (q Question) Choice(letter Letter) string {
	if !letter.Valid() {
		return ""
	}
	return q.Choices[letter.Index()]
}

// CorrectChoice returns the text of the correct choice.
func (q Question) CorrectChoice() string {
	return q.Choice(q.Answer)
}
