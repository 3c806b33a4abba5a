package dto

import (
	"time"
)

// CommentNode is one node of the read-time comment tree. Replies are
// nested; a root node has no ParentID.
type CommentNode struct {
	ID        string         `json:"id"`
	BlogID    string         `json:"blogId"`
	ParentID  string         `json:"parentId,omitempty"`
	UserID    string         `json:"userId"`
	Text      string         `json:"text"`
	Likes     int64          `json:"likes"`
	Dislikes  int64          `json:"dislikes"`
	CreatedAt time.Time      `json:"created_at"`
	Replies   []*CommentNode `json:"replies"`
}
