package store

import (
	"errors"
	"testing"

	"quizmgr/internal/question"
)

func sampleQuestion(text string, answer question.Letter) question.Question {
	return question.Question{
		Text:    text,
		Choices: question.Choices{"a", "b", "c", "d"},
		Answer:  answer,
	}
}

// TestNewPadsCyclicallyFromDefaults verifies short inputs are padded in order.
func TestNewPadsCyclicallyFromDefaults(t *testing.T) {
	input := []question.Question{
		sampleQuestion("one", question.A),
		sampleQuestion("two", question.B),
		sampleQuestion("three", question.C),
	}
	s := New(input)
	all := s.All()
	if len(all) != Capacity {
		t.Fatalf("expected %d slots, got %d", Capacity, len(all))
	}
	for i, q := range input {
		if all[i] != q {
			t.Fatalf("slot %d: expected %+v, got %+v", i, q, all[i])
		}
	}
	defaults := question.Defaults()
	if all[3] != defaults[0] || all[4] != defaults[1] {
		t.Fatalf("expected defaults 0 and 1 as padding, got %+v and %+v", all[3], all[4])
	}
}

// TestNewTruncates verifies long inputs keep only the first slots.
func TestNewTruncates(t *testing.T) {
	var input []question.Question
	for i := 0; i < 7; i++ {
		input = append(input, sampleQuestion(string(rune('a'+i)), question.A))
	}
	all := New(input).All()
	if len(all) != Capacity {
		t.Fatalf("expected %d slots, got %d", Capacity, len(all))
	}
	for i := 0; i < Capacity; i++ {
		if all[i] != input[i] {
			t.Fatalf("slot %d: expected %+v, got %+v", i, input[i], all[i])
		}
	}
}

// TestClearIsIdempotent verifies clearing resets to the canonical empty question.
func TestClearIsIdempotent(t *testing.T) {
	s := Defaults()
	if err := s.Clear(2); err != nil {
		t.Fatalf("clear: %v", err)
	}
	first := s.All()
	if err := s.Clear(2); err != nil {
		t.Fatalf("clear again: %v", err)
	}
	second := s.All()
	if first[2] != question.Empty() {
		t.Fatalf("expected empty slot, got %+v", first[2])
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d changed on second clear", i)
		}
	}
	if idx, ok := s.FirstEmpty(); !ok || idx != 2 {
		t.Fatalf("expected first empty slot 2, got %d (%v)", idx, ok)
	}
	if s.FilledCount() != Capacity-1 {
		t.Fatalf("expected %d filled, got %d", Capacity-1, s.FilledCount())
	}
}

// TestSlotRange verifies out-of-range indexes are rejected.
func TestSlotRange(t *testing.T) {
	s := Defaults()
	for _, idx := range []int{-1, Capacity} {
		if _, err := s.Get(idx); !errors.Is(err, ErrSlotRange) {
			t.Fatalf("get %d: expected ErrSlotRange, got %v", idx, err)
		}
		if err := s.Set(idx, question.Empty()); !errors.Is(err, ErrSlotRange) {
			t.Fatalf("set %d: expected ErrSlotRange, got %v", idx, err)
		}
	}
	if _, ok := s.FirstEmpty(); ok {
		t.Fatalf("expected no empty slot in default store")
	}
}

// TestUpdateInPlace verifies Update mutates only the chosen slot.
func TestUpdateInPlace(t *testing.T) {
	s := Defaults()
	before := s.All()
	err := s.Update(1, func(q *question.Question) {
		q.Choices = question.Choices{"w", "x", "y", "z"}
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	after := s.All()
	if after[1].Text != before[1].Text || after[1].Answer != before[1].Answer {
		t.Fatalf("expected text and answer unchanged, got %+v", after[1])
	}
	if after[1].Choices != (question.Choices{"w", "x", "y", "z"}) {
		t.Fatalf("expected new choices, got %+v", after[1].Choices)
	}
	if after[0] != before[0] {
		t.Fatalf("expected other slots untouched")
	}
}
