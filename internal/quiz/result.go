package quiz

import (
	"math"
	"strconv"
	"strings"

	"quizmgr/internal/question"
)

// Answer records what was given for one presented question.
type Answer struct {
	Position int
	PoolSlot int
	Question question.Question
	Given    question.Letter
}

// Correct reports whether the given letter matches the question's answer.
func (a Answer) Correct() bool {
	return a.Given == a.Question.Answer
}

// Result is the outcome of a quiz session in presentation order.
type Result struct {
	SessionID string
	Answers   []Answer
}

// Grade pairs pool questions in order with the given letters.
func Grade(sessionID string, pool []question.Question, order []int, given []question.Letter) Result {
	result := Result{SessionID: sessionID, Answers: make([]Answer, 0, len(order))}
	for i, slot := range order {
		if i >= len(given) {
			break
		}
		result.Answers = append(result.Answers, Answer{
			Position: i + 1,
			PoolSlot: slot,
			Question: pool[slot],
			Given:    given[i],
		})
	}
	return result
}

// Total returns the number of questions asked.
func (r Result) Total() int {
	return len(r.Answers)
}

// Score returns the number of correct answers.
func (r Result) Score() int {
	score := 0
	for _, answer := range r.Answers {
		if answer.Correct() {
			score++
		}
	}
	return score
}

// Percentage returns the score as a percentage rounded to two decimals.
func (r Result) Percentage() float64 {
	if r.Total() == 0 {
		return 0
	}
	raw := float64(r.Score()) / float64(r.Total()) * 100
	return math.Round(raw*100) / 100
}

// FormatPercentage renders a percentage with at least one decimal place.
func FormatPercentage(value float64) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
