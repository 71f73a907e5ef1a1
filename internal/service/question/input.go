package question

import (
	"errors"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// normalizeTags maps user-entered tag names to slugs. Blank entries are kept
// as "" so validation can report them.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = domain.NormalizeSlug(t)
	}
	return out
}

// CreateQuestionInput holds the parameters for asking a question.
type CreateQuestionInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	return domain.QuestionEdit{
		Title:    &i.Title,
		Content:  &i.Content,
		TagSlugs: nonNil(normalizeTags(i.Tags)),
	}.Validate()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ListQuestionsInput holds the parameters for listing questions.
type ListQuestionsInput struct {
	Tag    *string
	Limit  int // 0 = default page size
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListQuestionsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.Tag != nil && domain.NormalizeSlug(*i.Tag) == "" {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditQuestionInput holds the parameters for editing a question.
// A nil field is left unchanged.
type EditQuestionInput struct {
	QuestionID uuid.UUID
	Title      *string
	Content    *string
	Tags       []string
}

func (i EditQuestionInput) edit() domain.QuestionEdit {
	return domain.QuestionEdit{
		Title:    i.Title,
		Content:  i.Content,
		TagSlugs: normalizeTags(i.Tags),
	}
}

// Validate checks all fields and collects all errors.
func (i EditQuestionInput) Validate() error {
	var errs []domain.FieldError
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	e := i.edit()
	if e.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	var ve *domain.ValidationError
	if err := e.Validate(); err != nil && errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddAnswerInput holds the parameters for answering a question.
type AddAnswerInput struct {
	QuestionID uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i AddAnswerInput) Validate() error {
	return answerContentInput(i.QuestionID, nil, i.Content)
}

// EditAnswerInput holds the parameters for editing an answer.
type EditAnswerInput struct {
	QuestionID uuid.UUID
	AnswerID   uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i EditAnswerInput) Validate() error {
	return answerContentInput(i.QuestionID, &i.AnswerID, i.Content)
}

func answerContentInput(questionID uuid.UUID, answerID *uuid.UUID, content string) error {
	var errs []domain.FieldError
	if questionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if answerID != nil && *answerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "required"})
	}
	var ve *domain.ValidationError
	if err := domain.ValidateContent(content); err != nil && errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AcceptAnswerInput holds the parameters for accepting an answer.
// A nil AnswerID clears the accepted answer.
type AcceptAnswerInput struct {
	QuestionID uuid.UUID
	AnswerID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AcceptAnswerInput) Validate() error {
	var errs []domain.FieldError
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.AnswerID != nil && *i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "must not be the nil uuid"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VoteInput holds the parameters for voting on a question or one of its
// answers. AnswerID is only used when Target is an answer.
type VoteInput struct {
	Target     domain.VoteTarget
	QuestionID uuid.UUID
	AnswerID   uuid.UUID
	Direction  domain.VoteDirection
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be question or answer"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.Target == domain.VoteTargetAnswer && i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be up or down"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
