package models

import "time"

// Comment represents one follow-up on a travel post. Comments are
// append-only: the normal flow never edits or removes them.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TravelID  uint      `json:"travel_id" gorm:"index;not null"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for adding a comment.
// The author is taken from the session identity, not the payload.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
