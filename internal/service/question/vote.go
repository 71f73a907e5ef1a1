package question

import (
	"context"
	"fmt"

	"github.com/pawerflow/question-service/internal/domain"
)

// Vote applies an up or down vote to a question or to one of its answers
// and returns the new total. The answer must belong to the question.
func (s *Service) Vote(ctx context.Context, input VoteInput) (int, error) {
	who, err := caller(ctx)
	if err != nil {
		return 0, err
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	targetID := input.QuestionID
	if input.Target == domain.VoteTargetAnswer {
		a, err := s.answers.GetByID(ctx, input.AnswerID)
		if err != nil {
			return 0, fmt.Errorf("get answer: %w", err)
		}
		if a.QuestionID != input.QuestionID {
			return 0, fmt.Errorf("answer %s: %w", input.AnswerID, domain.ErrAnswerNotFound)
		}
		targetID = input.AnswerID
	}

	return s.votes.ApplyVote(ctx, input.Target, targetID, input.Direction, who.UserID)
}
