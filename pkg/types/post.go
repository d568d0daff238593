package types

import "time"

// DefaultPostCategory is used when a post is created without a category.
const DefaultPostCategory = "general"

// AnonymousAuthor is the author name stamped on posts and comments when
// the principal has no profile or the profile carries no full name.
const AnonymousAuthor = "Anonymous"

// Post is a community forum post. LikesCount and CommentsCount are
// denormalized counters maintained by the store; clients never compute
// or write them.
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	IsPinned      bool      `json:"is_pinned"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostFromRow hydrates a Post from a store row.
func PostFromRow(r Row) Post {
	return Post{
		ID:            rowString(r, "id"),
		UserID:        rowString(r, "user_id"),
		AuthorName:    rowString(r, "author_name"),
		Title:         rowString(r, "title"),
		Content:       rowString(r, "content"),
		Category:      rowString(r, "category"),
		Tags:          rowStrings(r, "tags"),
		LikesCount:    rowInt(r, "likes_count"),
		CommentsCount: rowInt(r, "comments_count"),
		IsPinned:      rowBool(r, "is_pinned"),
		CreatedAt:     rowTime(r, "created_at"),
		UpdatedAt:     rowTime(r, "updated_at"),
	}
}
