package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents one comment in a thread. A nil ParentID marks a root
// comment; replies reference their parent. The tree is never persisted, it
// is assembled at read time from the flat list.
// Collection: comments
type Comment struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
	BlogID    primitive.ObjectID  `bson:"blog_id" json:"blogId"`
	ParentID  *primitive.ObjectID `bson:"parent_id,omitempty" json:"parentId,omitempty"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"userId"`
	Text      string              `bson:"text" json:"text"`
	Likes     int64               `bson:"likes" json:"likes"`
	Dislikes  int64               `bson:"dislikes" json:"dislikes"`
}
