package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/pkg/types"
)

func TestCommentCreateRefreshesBothLists(t *testing.T) {
	fx := newFixture(t, "u-1")

	post, err := fx.ws.Posts().Create(types.Post{Title: "t", Content: "c"})
	require.NoError(t, err)

	// Prime both caches.
	_, err = fx.ws.Posts().List()
	require.NoError(t, err)
	comments, err := fx.ws.Comments().List(post.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	created, err := fx.ws.Comments().Create(post.ID, "great point")
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID)
	assert.Equal(t, post.ID, created.PostID)

	comments, err = fx.ws.Comments().List(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1, "comment list refetched")

	posts, err := fx.ws.Posts().List()
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].CommentsCount, "posts list refetched for the counter")
}

func TestCommentListOldestFirst(t *testing.T) {
	fx := newFixture(t, "u-1")

	post, err := fx.ws.Posts().Create(types.Post{Title: "t", Content: "c"})
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err := fx.ws.Comments().Create(post.ID, content)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	comments, err := fx.ws.Comments().List(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
}
