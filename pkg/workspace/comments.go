package workspace

import "github.com/stride-careers/stride/pkg/types"

// Comments is the sync accessor for post comments.
type Comments struct {
	ws *Workspace
}

// List returns the comments on one post, oldest first.
func (c *Comments) List(postID string) ([]types.Comment, error) {
	rows, err := c.ws.list(types.CommentsCollection, types.Query{
		Filter:  map[string]any{"post_id": postID},
		OrderBy: []types.Order{{Column: "created_at"}},
	})
	if err != nil {
		return nil, err
	}
	comments := make([]types.Comment, len(rows))
	for i, r := range rows {
		comments[i] = types.CommentFromRow(r)
	}
	return comments, nil
}

// Create stores a new comment on the given post, owned by the current
// principal. On success both the parent-scoped comment list and the
// posts list go stale: the posts list carries the denormalized
// comments_count.
func (c *Comments) Create(postID, content string) (*types.Comment, error) {
	uid, err := c.ws.requireUser()
	if err != nil {
		return nil, err
	}
	row, err := c.ws.store.Insert(types.CommentsCollection, types.Row{
		"post_id":     postID,
		"user_id":     uid,
		"author_name": c.ws.authorName(uid),
		"content":     content,
	})
	if err != nil {
		return nil, types.NewRemoteError("insert", types.CommentsCollection, err)
	}
	c.ws.invalidate(types.CommentsCollection, types.PostsCollection)
	created := types.CommentFromRow(row)
	c.ws.log.Info().Str("post_id", postID).Str("comment_id", created.ID).Msg("comment created")
	return &created, nil
}
