package domain

// QuestionFilter contains filtering/pagination parameters for question listing.
// Results are always ordered newest first.
type QuestionFilter struct {
	TagSlug *string
	Limit   int
	Offset  int
}

// QuestionPage is one page of a question listing. Limit is the page size
// actually applied.
type QuestionPage struct {
	Questions []*Question
	Total     int
	Limit     int
	Offset    int
}
