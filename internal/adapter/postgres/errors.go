package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pawerflow/question-service/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors without adding an
// entity prefix. Row lookups use MapEntityError instead.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if mapped := classify(err); mapped != nil {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return err
}

// MapEntityError converts pgx/pgconn errors to domain errors, prefixed with
// the entity and its key.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapEntityError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	if mapped := classify(err); mapped != nil {
		return fmt.Errorf("%s %v: %w", entity, id, mapped)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// classify returns the domain sentinel for a driver error, or nil.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return domain.ErrAlreadyExists
		case "23503": // foreign_key_violation
			return domain.ErrNotFound
		case "23514": // check_violation
			return domain.ErrValidation
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return domain.ErrConflict
		case "57P01", "57P02", "57P03", "53300": // admin_shutdown, crash_shutdown, cannot_connect_now, too_many_connections
			return domain.ErrStorageUnavailable
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection_exception class
			return domain.ErrStorageUnavailable
		}
		return nil
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domain.ErrStorageUnavailable
	}

	if pgconn.Timeout(err) {
		return domain.ErrStorageUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrStorageUnavailable
	}

	return nil
}
