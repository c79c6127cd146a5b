package quiz

import (
	"math/rand"

	"quizmgr/internal/question"
)

// Source is the read-only view of a question store a session needs.
type Source interface {
	Len() int
	Filled() []question.Question
}

// BuildPool returns the filled questions in slot order, padded with
// placeholders up to the store capacity.
func BuildPool(src Source) []question.Question {
	capacity := src.Len()
	pool := make([]question.Question, 0, capacity)
	for _, q := range src.Filled() {
		if len(pool) == capacity {
			break
		}
		pool = append(pool, q)
	}
	for len(pool) < capacity {
		pool = append(pool, question.Placeholder())
	}
	return pool
}

// Order returns a permutation of [0, n). Without rng it is the identity.
func Order(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}
