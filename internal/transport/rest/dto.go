package rest

import (
	"slices"
	"time"

	"github.com/pawerflow/question-service/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// Text lengths are left to the domain, which measures them after trimming.

type createQuestionRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"    validate:"required,min=1,max=5,dive,required"`
}

type editQuestionRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"    validate:"omitempty,min=1,max=5,dive,required"`
}

type answerRequest struct {
	Content string `json:"content" validate:"required"`
}

type voteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type acceptRequest struct {
	AnswerID *string `json:"answerId" validate:"omitempty,uuid"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type tagResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UsageCount  int    `json:"usageCount"`
}

type tagRefResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type answerResponse struct {
	ID                   string     `json:"id"`
	QuestionID           string     `json:"questionId"`
	Content              string     `json:"content"`
	ResponderID          string     `json:"responderId"`
	ResponderDisplayName string     `json:"responderDisplayName"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
	Votes                int        `json:"votes"`
	IsAccepted           bool       `json:"isAccepted"`
}

type questionResponse struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Content           string           `json:"content"`
	AskerID           string           `json:"askerId"`
	AskerDisplayName  string           `json:"askerDisplayName"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         *time.Time       `json:"updatedAt,omitempty"`
	ViewCount         int              `json:"viewCount"`
	Tags              []tagRefResponse `json:"tags"`
	HasAcceptedAnswer bool             `json:"hasAcceptedAnswer"`
	Votes             int              `json:"votes"`
	AnswerCount       int              `json:"answerCount"`
	Answers           []answerResponse `json:"answers,omitzero"`
}

type questionPageResponse struct {
	Questions []questionResponse `json:"questions"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

type voteResponse struct {
	Votes int `json:"votes"`
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{
		ID:          t.ID.String(),
		Slug:        t.Slug,
		Name:        t.Name,
		Description: t.Description,
		UsageCount:  t.UsageCount,
	}
}

func toAnswerResponse(a domain.Answer) answerResponse {
	return answerResponse{
		ID:                   a.ID.String(),
		QuestionID:           a.QuestionID.String(),
		Content:              a.Content,
		ResponderID:          a.ResponderID,
		ResponderDisplayName: a.ResponderDisplayName,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
		Votes:                a.Votes,
		IsAccepted:           a.IsAccepted,
	}
}

// toQuestionResponse renders q with resolved tags. When withAnswers is set
// the answers are embedded; otherwise only answerCount is filled.
// hasAcceptedAnswer is taken from answers so the flag, the count and the
// embedded answers all come from the same read.
func toQuestionResponse(q *domain.Question, tags []domain.Tag, answers []domain.Answer, withAnswers bool) questionResponse {
	resp := questionResponse{
		ID:                q.ID.String(),
		Title:             q.Title,
		Content:           q.Content,
		AskerID:           q.AskerID,
		AskerDisplayName:  q.AskerDisplayName,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
		ViewCount:         q.ViewCount,
		Tags:              make([]tagRefResponse, len(tags)),
		HasAcceptedAnswer: slices.ContainsFunc(answers, func(a domain.Answer) bool { return a.IsAccepted }),
		Votes:             q.Votes,
		AnswerCount:       len(answers),
	}
	for i, t := range tags {
		resp.Tags[i] = tagRefResponse{Slug: t.Slug, Name: t.Name}
	}
	if withAnswers {
		resp.Answers = make([]answerResponse, len(answers))
		for i, a := range answers {
			resp.Answers[i] = toAnswerResponse(a)
		}
	}
	return resp
}
