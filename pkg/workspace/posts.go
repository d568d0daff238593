package workspace

import "github.com/stride-careers/stride/pkg/types"

// Posts is the sync accessor for community posts and their likes.
type Posts struct {
	ws *Workspace
}

// postsQuery orders the board: pinned posts first, newest first within.
func postsQuery() types.Query {
	return types.Query{OrderBy: []types.Order{
		{Column: "is_pinned", Desc: true},
		{Column: "created_at", Desc: true},
	}}
}

// List returns every post, pinned first then newest first. The result
// comes from the cache when live.
func (p *Posts) List() ([]types.Post, error) {
	rows, err := p.ws.list(types.PostsCollection, postsQuery())
	if err != nil {
		return nil, err
	}
	posts := make([]types.Post, len(rows))
	for i, r := range rows {
		posts[i] = types.PostFromRow(r)
	}
	return posts, nil
}

// Create stores a new post owned by the current principal. An empty
// category defaults to general; the author name is denormalized from the
// principal's profile at creation time. On success the posts list is
// invalidated.
func (p *Posts) Create(post types.Post) (*types.Post, error) {
	uid, err := p.ws.requireUser()
	if err != nil {
		return nil, err
	}
	category := post.Category
	if category == "" {
		category = types.DefaultPostCategory
	}
	row, err := p.ws.store.Insert(types.PostsCollection, types.Row{
		"user_id":     uid,
		"author_name": p.ws.authorName(uid),
		"title":       post.Title,
		"content":     post.Content,
		"category":    category,
		"tags":        post.Tags,
		"is_pinned":   post.IsPinned,
	})
	if err != nil {
		return nil, types.NewRemoteError("insert", types.PostsCollection, err)
	}
	p.ws.invalidate(types.PostsCollection)
	created := types.PostFromRow(row)
	p.ws.log.Info().Str("post_id", created.ID).Msg("post created")
	return &created, nil
}

// ToggleLike inserts a like for (post, principal) when absent and
// deletes it when present. Returns the resulting liked state. Two
// toggles racing for the same pair are not atomic here; the store's
// unique pair constraint settles them.
func (p *Posts) ToggleLike(postID string) (liked bool, err error) {
	uid, err := p.ws.requireUser()
	if err != nil {
		return false, err
	}
	existing, err := p.ws.store.Select(types.LikesCollection, types.Query{
		Filter: map[string]any{"post_id": postID, "user_id": uid},
	})
	if err != nil {
		return false, types.NewRemoteError("select", types.LikesCollection, err)
	}
	if len(existing) > 0 {
		like := types.LikeFromRow(existing[0])
		if err := p.ws.store.Delete(types.LikesCollection, like.ID); err != nil {
			return false, types.NewRemoteError("delete", types.LikesCollection, err)
		}
		liked = false
	} else {
		if _, err := p.ws.store.Insert(types.LikesCollection, types.Row{
			"post_id": postID,
			"user_id": uid,
		}); err != nil {
			return false, types.NewRemoteError("insert", types.LikesCollection, err)
		}
		liked = true
	}
	// The posts list carries the denormalized likes_count, so it goes
	// stale along with the likes themselves.
	p.ws.invalidate(types.LikesCollection, types.PostsCollection)
	return liked, nil
}

// Liked reports whether the current principal has liked the post.
func (p *Posts) Liked(postID string) (bool, error) {
	uid, err := p.ws.requireUser()
	if err != nil {
		return false, err
	}
	rows, err := p.ws.list(types.LikesCollection, types.Query{
		Filter: map[string]any{"post_id": postID, "user_id": uid},
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
