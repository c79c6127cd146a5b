package store

import (
	"errors"
	"fmt"

	"quizmgr/internal/question"
)

// LoadReport summarizes how persisted rows were turned into slots.
type LoadReport struct {
	Source    string
	Created   bool
	Rows      int
	Rejected  int
	Padded    int
	Truncated int
	// Issues explains each rejected row.
	Issues []RowIssue
}

// RowIssue is the reason one persisted row was rejected.
type RowIssue struct {
	// Row is the 1-based record number.
	Row int
	Err error
}

func (issue RowIssue) String() string {
	return fmt.Sprintf("row %d: %v", issue.Row, issue.Err)
}

// errUnreadableRecord marks records the backend could not split into fields.
var errUnreadableRecord = errors.New("record: malformed CSV")

// Load builds a store from backend. A missing resource is created with the
// default questions. Rejected rows are skipped and the result is normalized
// to Capacity slots. A nil backend yields the defaults without any I/O.
func Load(backend Backend) (*Store, LoadReport, error) {
	if backend == nil {
		return Defaults(), LoadReport{}, nil
	}
	report := LoadReport{Source: backend.Name()}
	exists, err := backend.Exists()
	if err != nil {
		return nil, report, err
	}
	if !exists {
		defaults := Defaults()
		if err := Save(backend, defaults); err != nil {
			return nil, report, fmt.Errorf("create question file: %w", err)
		}
		report.Created = true
		report.Rows = Capacity
		return defaults, report, nil
	}

	rows, err := backend.ReadRows()
	if err != nil {
		return nil, report, err
	}
	report.Rows = len(rows)
	decoded := make([]question.Question, 0, len(rows))
	for i, row := range rows {
		var q question.Question
		if row == nil {
			err = errUnreadableRecord
		} else {
			q, err = question.Decode(row)
		}
		if err != nil {
			report.Rejected++
			report.Issues = append(report.Issues, RowIssue{Row: i + 1, Err: err})
			continue
		}
		decoded = append(decoded, q)
	}
	switch {
	case len(decoded) < Capacity:
		report.Padded = Capacity - len(decoded)
	case len(decoded) > Capacity:
		report.Truncated = len(decoded) - Capacity
	}
	return New(decoded), report, nil
}

// Save overwrites backend with one encoded row per slot.
func Save(backend Backend, s *Store) error {
	if backend == nil {
		return nil
	}
	rows := make([][]string, 0, Capacity)
	for _, q := range s.All() {
		rows = append(rows, question.Encode(q))
	}
	return backend.WriteRows(rows)
}
