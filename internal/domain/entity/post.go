// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Post is a content item owned by a User. Reads always carry the author so
// the delivery layer can render posts without a second lookup.
type Post struct {
	ID        int64     // Database-assigned identifier.
	Title     string    // Post title, non-empty at creation.
	Content   string    // Post body, non-empty at creation.
	Published bool      // Whether the post is publicly visible. Defaults to false.
	AuthorID  int64     // Foreign key to the owning User.
	Author    *User     // The owning account, populated on reads.
	CreatedAt time.Time // Timestamp of when this post was created.
	UpdatedAt time.Time // Timestamp of the last modification to this post.
}
