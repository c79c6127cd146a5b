package live

// ReviewRow is one answered question in a finished quiz.
type ReviewRow struct {
	Position int
	Correct  bool
	Given    string
	Expected string
	Text     string
}

// Review is the content shown by the review browser.
type Review struct {
	Title   string
	Summary string
	Rows    []ReviewRow
}
