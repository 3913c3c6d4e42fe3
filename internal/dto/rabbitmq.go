package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	MQPostCreated = "post.created"
	MQPostUpdated = "post.updated"
	MQPostDeleted = "post.deleted"
)

// MQPostEventMsg is published to the posts exchange on every mutation so
// downstream consumers (newsletter, search indexer) can react.
type MQPostEventMsg struct {
	Type      string    `json:"type"`
	PostID    uuid.UUID `json:"post_id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	Timestamp time.Time `json:"timestamp"`
}
