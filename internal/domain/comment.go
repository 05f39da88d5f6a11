package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentBodyLength caps the size of a comment body in runes.
const MaxCommentBodyLength = 5000

// Comment is a single comment or reply attached to a target.
//
// ParentID is nil for root comments. A reply always carries the same Target
// as its parent; the reply operation copies it and callers cannot override
// it. Seq is the monotonically increasing insertion counter used for stable
// listing order.
type Comment struct {
	ID        uuid.UUID
	Target    Target
	AuthorID  uuid.UUID
	Body      string
	ParentID  *uuid.UUID
	IsDeleted bool
	Seq       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReply returns true if the comment has a parent.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
