package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/pkg/types"
)

func TestKeyCanonicalization(t *testing.T) {
	t.Run("filter order does not matter", func(t *testing.T) {
		a := Key("career_goals", types.Query{
			Filter: map[string]any{"user_id": "u-1", "status": "active"},
		})
		b := Key("career_goals", types.Query{
			Filter: map[string]any{"status": "active", "user_id": "u-1"},
		})
		assert.Equal(t, a, b)
	})

	t.Run("collection is the key prefix", func(t *testing.T) {
		key := Key("community_posts", types.Query{
			Filter:  map[string]any{"user_id": "u-1"},
			OrderBy: []types.Order{{Column: "created_at", Desc: true}},
		})
		assert.Equal(t, "community_posts?user_id=u-1|created_at.desc", key)
	})

	t.Run("bare query is just the collection", func(t *testing.T) {
		assert.Equal(t, "documents", Key("documents", types.Query{}))
	})

	t.Run("order direction distinguishes keys", func(t *testing.T) {
		asc := Key("post_comments", types.Query{OrderBy: []types.Order{{Column: "created_at"}}})
		desc := Key("post_comments", types.Query{OrderBy: []types.Order{{Column: "created_at", Desc: true}}})
		assert.NotEqual(t, asc, desc)
	})
}

func TestCacheGetPut(t *testing.T) {
	c := New()

	_, ok := c.Get("career_goals")
	assert.False(t, ok, "empty cache misses")

	rows := []types.Row{{"id": "g-1"}}
	c.Put("career_goals", rows)

	got, ok := c.Get("career_goals")
	require.True(t, ok)
	assert.Equal(t, rows, got)

	replacement := []types.Row{{"id": "g-2"}}
	c.Put("career_goals", replacement)

	got, ok = c.Get("career_goals")
	require.True(t, ok)
	assert.Equal(t, replacement, got, "put replaces prior entry")
}

func TestCacheInvalidatePrefix(t *testing.T) {
	c := New()
	c.Put(Key("career_goals", types.Query{Filter: map[string]any{"user_id": "u-1"}}), []types.Row{})
	c.Put(Key("career_goals", types.Query{Filter: map[string]any{"user_id": "u-2"}}), []types.Row{})
	c.Put(Key("reminders", types.Query{}), []types.Row{})
	require.Equal(t, 3, c.Len())

	c.Invalidate("career_goals")

	assert.Equal(t, 1, c.Len(), "only goal queries dropped")
	_, ok := c.Get(Key("reminders", types.Query{}))
	assert.True(t, ok, "other collections survive")
}

func TestCacheInvalidateEmptyResultEntries(t *testing.T) {
	c := New()
	key := Key("documents", types.Query{})
	c.Put(key, []types.Row{})

	got, ok := c.Get(key)
	require.True(t, ok, "empty result lists are cached too")
	assert.Empty(t, got)

	c.Invalidate("documents")
	_, ok = c.Get(key)
	assert.False(t, ok)
}
