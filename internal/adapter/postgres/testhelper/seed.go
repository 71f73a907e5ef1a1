package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawerflow/question-service/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTag inserts a tag with a unique slug and the given usage count.
func SeedTag(t *testing.T, pool *pgxpool.Pool, usage int) domain.Tag {
	t.Helper()

	tag := domain.NewTag(domain.TagDefinition{
		Slug:        "tag-" + uniqueSuffix(),
		Name:        "Test tag",
		Description: "created by testhelper",
	})
	tag.UsageCount = usage

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, slug, name, description, usage_count) VALUES ($1, $2, $3, $4, $5)`,
		tag.ID, tag.Slug, tag.Name, tag.Description, tag.UsageCount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedQuestion inserts a question referencing tagSlugs. Tag counters are not
// touched.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, askerID string, tagSlugs ...string) *domain.Question {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	q, err := domain.NewQuestion(uuid.New(), "Question "+uniqueSuffix(), "Some content", askerID, "Asker", tagSlugs, now)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion build: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO questions (id, title, content, asker_id, asker_display_name, created_at, tag_slugs, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.ID, q.Title, q.Content, q.AskerID, q.AskerDisplayName, q.CreatedAt, q.TagSlugs, q.Version,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}
	return q
}

// SeedAnswer inserts an unaccepted answer for questionID.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID uuid.UUID, responderID string) domain.Answer {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a, err := domain.NewAnswer(uuid.New(), questionID, "An answer "+uniqueSuffix(), responderID, "Responder", now)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer build: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO answers (id, question_id, content, responder_id, responder_display_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.QuestionID, a.Content, a.ResponderID, a.ResponderDisplayName, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer insert: %v", err)
	}
	return a
}
