// Package comment manages threaded comments on resolved targets. Comments
// are soft-deleted: a deleted comment disappears from listings but keeps its
// place in the thread, so replies anchored to it stay navigable.
package comment

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	UpdateBody(ctx context.Context, commentID uuid.UUID, body string) (*domain.Comment, error)
	SoftDelete(ctx context.Context, commentID uuid.UUID) error
	ListForTarget(ctx context.Context, target domain.Target) ([]domain.Comment, error)
	CountForTarget(ctx context.Context, target domain.Target) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides comment thread operations.
type Service struct {
	comments commentRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, tx txManager) *Service {
	return &Service{
		comments: comments,
		tx:       tx,
		log:      log.With("service", "comment"),
	}
}

// validateBody trims the body and checks the length limits shared by add,
// edit, and reply. Returns the trimmed body.
func validateBody(body string) (string, []domain.FieldError) {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxCommentBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 5000 characters"})
	}

	return trimmed, errs
}
