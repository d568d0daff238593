package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/pkg/types"
)

func TestPostCreate(t *testing.T) {
	fx := newFixture(t, "u-1")

	post, err := fx.ws.Posts().Create(types.Post{
		Title:   "Negotiating a counter-offer",
		Content: "How did you all handle this?",
		Tags:    []string{"salary", "advice"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", post.UserID, "owner stamped from the principal")
	assert.Equal(t, types.DefaultPostCategory, post.Category)
	assert.Equal(t, []string{"salary", "advice"}, post.Tags)
	assert.Equal(t, 0, post.LikesCount)
	assert.Equal(t, 0, post.CommentsCount)

	posts, err := fx.ws.Posts().List()
	require.NoError(t, err)
	require.Len(t, posts, 1, "created post appears exactly once")
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestPostListOrder(t *testing.T) {
	fx := newFixture(t, "u-1")

	create := func(title string, pinned bool) {
		t.Helper()
		_, err := fx.ws.Posts().Create(types.Post{Title: title, Content: "c", IsPinned: pinned})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct created_at stamps
	}
	create("oldest", false)
	create("pinned", true)
	create("newest", false)

	posts, err := fx.ws.Posts().List()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "pinned", posts[0].Title)
	assert.Equal(t, "newest", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
}

func TestToggleLike(t *testing.T) {
	fx := newFixture(t, "u-1")

	post, err := fx.ws.Posts().Create(types.Post{Title: "t", Content: "c"})
	require.NoError(t, err)

	liked, err := fx.ws.Posts().ToggleLike(post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := fx.ws.Posts().Liked(post.ID)
	require.NoError(t, err)
	assert.True(t, got)

	posts, err := fx.ws.Posts().List()
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].LikesCount, "counter visible after invalidation")

	// Toggling again removes the like; the pair is back where it started.
	liked, err = fx.ws.Posts().ToggleLike(post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = fx.ws.Posts().Liked(post.ID)
	require.NoError(t, err)
	assert.False(t, got)

	likes, err := fx.store.Select(types.LikesCollection, types.Query{})
	require.NoError(t, err)
	assert.Empty(t, likes, "no like row left behind")

	posts, err = fx.ws.Posts().List()
	require.NoError(t, err)
	assert.Equal(t, 0, posts[0].LikesCount)
}
