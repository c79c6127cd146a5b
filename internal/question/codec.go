package question

import (
	"fmt"
	"strings"
)

// RecordFields is the number of fields in a persisted question row:
// text, choices A through D, answer letter.
const RecordFields = 2 + ChoiceCount

// EmptyRecord returns the row written for unfilled slots.
func EmptyRecord() []string {
	return []string{"", "", "", "", "", "A"}
}

// Decode converts a persisted row into a Question. Every field is trimmed.
// Rows with the wrong field count or an unknown answer letter are rejected
// with a *ValidationError.
func Decode(row []string) (Question, error) {
	collector := &issueCollector{}
	if len(row) != RecordFields {
		collector.add("fields", fmt.Sprintf("expected %d, got %d", RecordFields, len(row)))
		return Question{}, collector.result()
	}
	fields := make([]string, RecordFields)
	for i, field := range row {
		fields[i] = strings.TrimSpace(field)
	}
	answer, ok := ParseLetter(fields[RecordFields-1])
	if !ok {
		collector.add("answer", fmt.Sprintf("invalid letter %q", fields[RecordFields-1]))
		return Question{}, collector.result()
	}
	q := Question{Text: fields[0], Answer: answer}
	copy(q.Choices[:], fields[1:1+ChoiceCount])
	return q, nil
}

// Encode converts a Question into a persisted row.
func Encode(q Question) []string {
	if !q.Filled() {
		return EmptyRecord()
	}
	row := make([]string, 0, RecordFields)
	row = append(row, q.Text)
	row = append(row, q.Choices[:]...)
	return append(row, q.Answer.String())
}
