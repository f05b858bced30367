package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to exactly one article. ParentID links threaded replies
// and is empty for top-level comments.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
