package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/pkg/types"
)

func TestGoalCreateDefaults(t *testing.T) {
	fx := newFixture(t, "u-1")

	goal, err := fx.ws.Goals().Create(types.Goal{Title: "Learn distributed systems"})
	require.NoError(t, err)

	assert.Equal(t, "u-1", goal.UserID)
	assert.Equal(t, types.DefaultGoalCategory, goal.Category)
	assert.Equal(t, types.GoalStatusActive, goal.Status)
	assert.Equal(t, 0, goal.ProgressPercentage)
}

func TestGoalListScopedToPrincipal(t *testing.T) {
	fx := newFixture(t, "u-1")

	_, err := fx.ws.Goals().Create(types.Goal{Title: "mine"})
	require.NoError(t, err)
	_, err = fx.store.Insert(types.GoalsCollection, types.Row{
		"user_id": "u-2",
		"title":   "someone else's",
	})
	require.NoError(t, err)

	goals, err := fx.ws.Goals().List()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "mine", goals[0].Title)
}

func TestGoalUpdatePartial(t *testing.T) {
	fx := newFixture(t, "u-1")

	goal, err := fx.ws.Goals().Create(types.Goal{
		Title:              "Original title",
		Description:        "Keep me",
		ProgressPercentage: 30,
	})
	require.NoError(t, err)

	title := "New title"
	require.NoError(t, fx.ws.Goals().Update(goal.ID, types.GoalPatch{Title: &title}))

	goals, err := fx.ws.Goals().List()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "New title", goals[0].Title)
	assert.Equal(t, "Keep me", goals[0].Description, "untouched field survives")
	assert.Equal(t, 30, goals[0].ProgressPercentage)
}

func TestGoalAdvance(t *testing.T) {
	fx := newFixture(t, "u-1")

	goal, err := fx.ws.Goals().Create(types.Goal{Title: "g", ProgressPercentage: 85})
	require.NoError(t, err)

	next, err := fx.ws.Goals().Advance(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 95, next)

	next, err = fx.ws.Goals().Advance(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, next, "capped at 100")

	next, err = fx.ws.Goals().Advance(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, next, "stays at 100")
}

func TestGoalToggleStatus(t *testing.T) {
	fx := newFixture(t, "u-1")

	goal, err := fx.ws.Goals().Create(types.Goal{Title: "g"})
	require.NoError(t, err)

	status, err := fx.ws.Goals().ToggleStatus(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, types.GoalStatusCompleted, status)

	status, err = fx.ws.Goals().ToggleStatus(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, types.GoalStatusActive, status)
}

func TestGoalRemove(t *testing.T) {
	fx := newFixture(t, "u-1")

	goal, err := fx.ws.Goals().Create(types.Goal{Title: "g"})
	require.NoError(t, err)

	require.NoError(t, fx.ws.Goals().Remove(goal.ID))
	assert.ErrorIs(t, fx.ws.Goals().Remove(goal.ID), types.ErrNotFound)

	goals, err := fx.ws.Goals().List()
	require.NoError(t, err)
	assert.Empty(t, goals)
}
