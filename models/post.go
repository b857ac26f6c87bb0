package models

import "time"

// Post is a blog entry. PostID never leaves the server; clients address a
// post by its Slug, the hashid encoding of PostID.
type Post struct {
	// PostID is the database identifier.
	PostID int64 `json:"-"`

	// Slug is the public identifier of the post.
	Slug string `json:"slug"`

	// AuthorID is the owner of the post.
	AuthorID int64 `json:"-"`

	// Author is the login of the owner, filled on reads.
	Author string `json:"author,omitempty"`

	// Title is unique per author.
	Title string `json:"title" validate:"required,max=200"`

	// Body is the post content.
	Body string `json:"body" validate:"required"`

	// CreatedAt is the publication timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
