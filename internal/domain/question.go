package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 300
	MaxContentLength     = 5000
	MinTagsPerQuestion   = 1
	MaxTagsPerQuestion   = 5
	MaxSubjectIDLength   = 36
	MaxDisplayNameLength = 300
)

// Question is the aggregate root. It exclusively owns its Answers, which are
// kept in insertion order.
type Question struct {
	ID                uuid.UUID
	Title             string
	Content           string
	AskerID           string
	AskerDisplayName  string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	ViewCount         int
	TagSlugs          []string
	HasAcceptedAnswer bool
	Votes             int
	Version           int
	Answers           []Answer
}

// Answer belongs to exactly one Question. QuestionID is a lookup key only.
type Answer struct {
	ID                   uuid.UUID
	QuestionID           uuid.UUID
	Content              string
	ResponderID          string
	ResponderDisplayName string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	Votes                int
	IsAccepted           bool
}

// QuestionEdit carries the optional changes of an edit. Nil fields are left
// untouched.
type QuestionEdit struct {
	Title    *string
	Content  *string
	TagSlugs []string
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func titleError(title string) *FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	switch {
	case n == 0:
		return &FieldError{Field: "title", Message: "required"}
	case n > MaxTitleLength:
		return &FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)}
	}
	return nil
}

func contentError(content string) *FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	switch {
	case n == 0:
		return &FieldError{Field: "content", Message: "required"}
	case n > MaxContentLength:
		return &FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", MaxContentLength)}
	}
	return nil
}

func tagSetError(slugs []string) *FieldError {
	if len(slugs) < MinTagsPerQuestion {
		return &FieldError{Field: "tags", Message: "at least 1 tag required"}
	}
	if len(slugs) > MaxTagsPerQuestion {
		return &FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTagsPerQuestion)}
	}
	seen := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		if s == "" {
			return &FieldError{Field: "tags", Message: "tag slug must not be empty"}
		}
		if _, dup := seen[s]; dup {
			return &FieldError{Field: "tags", Message: fmt.Sprintf("duplicate tag %q", s)}
		}
		seen[s] = struct{}{}
	}
	return nil
}

func single(fe *FieldError) error {
	if fe == nil {
		return nil
	}
	return NewValidationErrors([]FieldError{*fe})
}

// ValidateTitle checks the 1..300 character rule on the trimmed title.
func ValidateTitle(title string) error { return single(titleError(title)) }

// ValidateContent checks the 1..5000 character rule on the trimmed content.
func ValidateContent(content string) error { return single(contentError(content)) }

// ValidateTagSlugs checks that the set has 1..5 unique non-empty slugs.
func ValidateTagSlugs(slugs []string) error { return single(tagSetError(slugs)) }

// Validate checks only the fields that are being changed.
func (e QuestionEdit) Validate() error {
	var errs []FieldError
	if e.Title != nil {
		if fe := titleError(*e.Title); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if e.Content != nil {
		if fe := contentError(*e.Content); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if e.TagSlugs != nil {
		if fe := tagSetError(e.TagSlugs); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// IsEmpty reports whether the edit changes nothing.
func (e QuestionEdit) IsEmpty() bool {
	return e.Title == nil && e.Content == nil && e.TagSlugs == nil
}

func validateSubject(field, id, name string) []FieldError {
	var errs []FieldError
	if id == "" {
		errs = append(errs, FieldError{Field: field + "_id", Message: "required"})
	} else if len(id) > MaxSubjectIDLength {
		errs = append(errs, FieldError{Field: field + "_id", Message: fmt.Sprintf("max %d characters", MaxSubjectIDLength)})
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		errs = append(errs, FieldError{Field: field + "_display_name", Message: fmt.Sprintf("max %d characters", MaxDisplayNameLength)})
	}
	return errs
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// NewQuestion validates its input and returns a fresh question with zero
// views, zero votes and no accepted answer. Tag resolution against the
// registry is the caller's job.
func NewQuestion(id uuid.UUID, title, content, askerID, askerName string, tagSlugs []string, now time.Time) (*Question, error) {
	var errs []FieldError
	for _, fe := range []*FieldError{titleError(title), contentError(content), tagSetError(tagSlugs)} {
		if fe != nil {
			errs = append(errs, *fe)
		}
	}
	errs = append(errs, validateSubject("asker", askerID, askerName)...)
	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	return &Question{
		ID:               id,
		Title:            strings.TrimSpace(title),
		Content:          strings.TrimSpace(content),
		AskerID:          askerID,
		AskerDisplayName: askerName,
		CreatedAt:        now,
		TagSlugs:         slices.Clone(tagSlugs),
		Version:          1,
	}, nil
}

// NewAnswer validates content and returns an unaccepted answer for questionID.
func NewAnswer(id, questionID uuid.UUID, content, responderID, responderName string, now time.Time) (Answer, error) {
	var errs []FieldError
	if fe := contentError(content); fe != nil {
		errs = append(errs, *fe)
	}
	errs = append(errs, validateSubject("responder", responderID, responderName)...)
	if len(errs) > 0 {
		return Answer{}, NewValidationErrors(errs)
	}

	return Answer{
		ID:                   id,
		QuestionID:           questionID,
		Content:              strings.TrimSpace(content),
		ResponderID:          responderID,
		ResponderDisplayName: responderName,
		CreatedAt:            now,
	}, nil
}

// ---------------------------------------------------------------------------
// Aggregate behaviour
// ---------------------------------------------------------------------------

// IsAskedBy reports whether userID owns the question.
func (q *Question) IsAskedBy(userID string) bool {
	return q.AskerID == userID
}

// FindAnswer returns a pointer into q.Answers, or nil.
func (q *Question) FindAnswer(answerID uuid.UUID) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			return &q.Answers[i]
		}
	}
	return nil
}

// AddAnswer appends a as the newest answer. New answers are never accepted.
func (q *Question) AddAnswer(a Answer) {
	a.QuestionID = q.ID
	a.IsAccepted = false
	q.Answers = append(q.Answers, a)
}

// AcceptAnswer marks answerID as the accepted answer and clears any other.
// A nil answerID clears acceptance on every answer. changed is false when the
// state already matched, so repeated accepts are no-ops.
func (q *Question) AcceptAnswer(answerID *uuid.UUID) (changed bool, err error) {
	if answerID != nil && q.FindAnswer(*answerID) == nil {
		return false, ErrAnswerNotFound
	}

	for i := range q.Answers {
		want := answerID != nil && q.Answers[i].ID == *answerID
		if q.Answers[i].IsAccepted != want {
			q.Answers[i].IsAccepted = want
			changed = true
		}
	}

	has := answerID != nil
	if q.HasAcceptedAnswer != has {
		q.HasAcceptedAnswer = has
		changed = true
	}
	return changed, nil
}

// RemoveAnswer deletes answerID from the aggregate and returns it. Removing
// the accepted answer clears HasAcceptedAnswer.
func (q *Question) RemoveAnswer(answerID uuid.UUID) (Answer, error) {
	idx := slices.IndexFunc(q.Answers, func(a Answer) bool { return a.ID == answerID })
	if idx < 0 {
		return Answer{}, ErrAnswerNotFound
	}
	removed := q.Answers[idx]
	q.Answers = slices.Delete(q.Answers, idx, idx+1)
	if removed.IsAccepted {
		q.HasAcceptedAnswer = false
	}
	return removed, nil
}

// ApplyEdit writes a validated edit into the question and returns the tag
// slugs that were added and removed.
func (q *Question) ApplyEdit(e QuestionEdit, now time.Time) (added, removed []string) {
	if e.Title != nil {
		q.Title = strings.TrimSpace(*e.Title)
	}
	if e.Content != nil {
		q.Content = strings.TrimSpace(*e.Content)
	}
	if e.TagSlugs != nil {
		added, removed = DiffTags(q.TagSlugs, e.TagSlugs)
		q.TagSlugs = slices.Clone(e.TagSlugs)
	}
	q.UpdatedAt = &now
	return added, removed
}

// CheckInvariants verifies the aggregate's consistency rules.
func (q *Question) CheckInvariants() error {
	if fe := tagSetError(q.TagSlugs); fe != nil {
		return fmt.Errorf("question %s: %w", q.ID, NewValidationErrors([]FieldError{*fe}))
	}
	if q.ViewCount < 0 {
		return fmt.Errorf("question %s: negative view count %d", q.ID, q.ViewCount)
	}

	accepted := 0
	for _, a := range q.Answers {
		if a.QuestionID != q.ID {
			return fmt.Errorf("question %s: answer %s belongs to %s", q.ID, a.ID, a.QuestionID)
		}
		if a.IsAccepted {
			accepted++
		}
	}
	if accepted > 1 {
		return fmt.Errorf("question %s: %d accepted answers", q.ID, accepted)
	}
	if q.HasAcceptedAnswer != (accepted == 1) {
		return fmt.Errorf("question %s: has_accepted_answer=%t with %d accepted answers",
			q.ID, q.HasAcceptedAnswer, accepted)
	}
	return nil
}

// DiffTags returns the slugs present only in next (added) and only in prev
// (removed), each in the order they appear.
func DiffTags(prev, next []string) (added, removed []string) {
	for _, s := range next {
		if !slices.Contains(prev, s) {
			added = append(added, s)
		}
	}
	for _, s := range prev {
		if !slices.Contains(next, s) {
			removed = append(removed, s)
		}
	}
	return added, removed
}
