package models

import "time"

// Comment represents a note attached to a task. Comments are listed in
// chronological order of creation.
type Comment struct {
	CommentID int64
	TaskID    int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time

	// AuthorName is the author's full name, populated by list queries.
	AuthorName string
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentResponse is the wire representation of a comment. Author is the
// full name of the comment's author, not a user object.
type CommentResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

// Response converts a Comment into its wire representation.
func (c Comment) Response() CommentResponse {
	return CommentResponse{
		ID:        c.CommentID,
		CreatedAt: c.CreatedAt,
		Author:    c.AuthorName,
		Content:   c.Content,
	}
}
