package question

// PlaceholderText marks padding questions in a quiz pool.
const PlaceholderText = "[Placeholder question - no content]"

// Placeholder returns a padding question whose answer is always A.
func Placeholder() Question {
	return Question{Text: PlaceholderText, Answer: A}
}

// Defaults returns the built-in question set.
func Defaults() []Question {
	return []Question{
		{
			Text:    "What is the capital of France?",
			Choices: Choices{"London", "Paris", "Rome", "Berlin"},
			Answer:  B,
		},
		{
			Text:    "Which data structure stores items in LIFO order?",
			Choices: Choices{"Queue", "Stack", "Array", "Tree"},
			Answer:  B,
		},
		{
			Text:    "Which language is primarily used for styling web pages?",
			Choices: Choices{"HTML", "CSS", "Python", "SQL"},
			Answer:  B,
		},
		{
			Text:    "What does CPU stand for?",
			Choices: Choices{"Central Processing Unit", "Computer Power Unit", "Central Program Utility", "Control Processing Unit"},
			Answer:  A,
		},
		{
			Text:    "Which keyword defines a function in Python?",
			Choices: Choices{"func", "def", "function", "lambda"},
			Answer:  B,
		},
	}
}
