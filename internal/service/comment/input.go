package comment

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/engage-backend/internal/domain"
)

// AddCommentInput holds the parameters for adding a root comment.
type AddCommentInput struct {
	Target   domain.Target
	AuthorID uuid.UUID
	Body     string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.Target.IsZero() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	}
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	_, bodyErrs := validateBody(i.Body)
	errs = append(errs, bodyErrs...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditCommentInput holds the parameters for editing a comment body.
type EditCommentInput struct {
	CommentID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i EditCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	_, bodyErrs := validateBody(i.Body)
	errs = append(errs, bodyErrs...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplyInput holds the parameters for replying to a comment. The reply's
// target is always copied from the parent; callers cannot set it.
type ReplyInput struct {
	ParentID uuid.UUID
	AuthorID uuid.UUID
	Body     string
}

// Validate checks all fields and collects all errors.
func (i ReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	_, bodyErrs := validateBody(i.Body)
	errs = append(errs, bodyErrs...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCommentInput holds the parameters for soft-deleting a comment.
type DeleteCommentInput struct {
	CommentID uuid.UUID
	ActorID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
