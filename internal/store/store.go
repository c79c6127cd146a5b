package store

import (
	"errors"
	"fmt"

	"quizmgr/internal/question"
)

// Capacity is the fixed number of question slots.
const Capacity = 5

// ErrSlotRange is returned for slot indexes outside [0, Capacity).
var ErrSlotRange = errors.New("slot out of range")

// Store holds exactly Capacity question slots addressed by zero-based index.
type Store struct {
	slots [Capacity]question.Question
}

// New builds a store from questions, padding cyclically from the defaults
// or truncating so that exactly Capacity slots remain.
func New(questions []question.Question) *Store {
	normalized := Normalize(questions)
	s := &Store{}
	copy(s.slots[:], normalized)
	return s
}

// Defaults builds a store from the built-in question set.
func Defaults() *Store {
	return New(question.Defaults())
}

// Normalize pads or truncates questions to exactly Capacity entries.
// Padding appends defaults[i mod len(defaults)] for i counting from zero.
func Normalize(questions []question.Question) []question.Question {
	out := make([]question.Question, 0, Capacity)
	for _, q := range questions {
		if len(out) == Capacity {
			break
		}
		out = append(out, q)
	}
	defaults := question.Defaults()
	for i := 0; len(out) < Capacity; i++ {
		out = append(out, defaults[i%len(defaults)])
	}
	return out
}

// Len returns the slot count.
func (s *Store) Len() int {
	return Capacity
}

// Get returns the question in slot i.
func (s *Store) Get(i int) (question.Question, error) {
	if err := checkSlot(i); err != nil {
		return question.Question{}, err
	}
	return s.slots[i], nil
}

// Set replaces slot i wholesale.
func (s *Store) Set(i int, q question.Question) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.slots[i] = q
	return nil
}

// Update applies fn to slot i in place.
func (s *Store) Update(i int, fn func(q *question.Question)) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	fn(&s.slots[i])
	return nil
}

// Clear resets slot i to the canonical empty question.
func (s *Store) Clear(i int) error {
	return s.Set(i, question.Empty())
}

// FirstEmpty returns the lowest unfilled slot index.
func (s *Store) FirstEmpty() (int, bool) {
	for i, q := range s.slots {
		if !q.Filled() {
			return i, true
		}
	}
	return -1, false
}

// Filled returns the filled questions in slot order.
func (s *Store) Filled() []question.Question {
	out := make([]question.Question, 0, Capacity)
	for _, q := range s.slots {
		if q.Filled() {
			out = append(out, q)
		}
	}
	return out
}

// All returns a copy of every slot in order.
func (s *Store) All() []question.Question {
	out := make([]question.Question, Capacity)
	copy(out, s.slots[:])
	return out
}

// FilledCount returns the number of filled slots.
func (s *Store) FilledCount() int {
	return len(s.Filled())
}

func checkSlot(i int) error {
	if i < 0 || i >= Capacity {
		return fmt.Errorf("%w: %d", ErrSlotRange, i+1)
	}
	return nil
}
