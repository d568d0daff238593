package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoalSetStatus(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		target  string
		wantErr error
	}{
		{name: "set active", initial: GoalStatusCompleted, target: GoalStatusActive},
		{name: "set completed", initial: GoalStatusActive, target: GoalStatusCompleted},
		{name: "idempotent set same status", initial: GoalStatusActive, target: GoalStatusActive},
		{name: "invalid status rejected", initial: GoalStatusActive, target: "paused", wantErr: ErrInvalidStatus},
		{name: "empty string rejected", initial: GoalStatusActive, target: "", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{Status: tt.initial}
			err := g.SetStatus(tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, g.Status, "status should not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.target, g.Status)
			}
		})
	}
}

func TestGoalSetProgress(t *testing.T) {
	g := &Goal{}
	assert.NoError(t, g.SetProgress(55))
	assert.Equal(t, 55, g.ProgressPercentage)

	assert.ErrorIs(t, g.SetProgress(-1), ErrInvalidProgress)
	assert.ErrorIs(t, g.SetProgress(101), ErrInvalidProgress)
	assert.Equal(t, 55, g.ProgressPercentage, "progress should not change on error")
}

func TestGoalAdvanceProgress(t *testing.T) {
	g := &Goal{ProgressPercentage: 0}

	assert.Equal(t, 10, g.AdvanceProgress())
	assert.Equal(t, 20, g.AdvanceProgress())

	g.ProgressPercentage = 95
	assert.Equal(t, 100, g.AdvanceProgress(), "bump past 100 is capped")
	assert.Equal(t, 100, g.AdvanceProgress(), "stays at 100")
}

func TestGoalToggleStatus(t *testing.T) {
	g := &Goal{Status: GoalStatusActive}
	assert.Equal(t, GoalStatusCompleted, g.ToggleStatus())
	assert.Equal(t, GoalStatusActive, g.ToggleStatus())
}

func TestGoalPatchRow(t *testing.T) {
	t.Run("empty patch yields empty row", func(t *testing.T) {
		assert.Empty(t, GoalPatch{}.Row())
	})

	t.Run("only set fields appear", func(t *testing.T) {
		progress := 40
		status := GoalStatusCompleted
		row := GoalPatch{ProgressPercentage: &progress, Status: &status}.Row()

		assert.Equal(t, Row{"progress_percentage": 40, "status": "completed"}, row)
	})

	t.Run("target date carries through", func(t *testing.T) {
		target := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		row := GoalPatch{TargetDate: &target}.Row()

		assert.Equal(t, target, row["target_date"])
	})
}

func TestGoalFromRow(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	g := GoalFromRow(Row{
		"id":                  "g-1",
		"user_id":             "u-1",
		"title":               "Ship the thing",
		"category":            "career",
		"progress_percentage": int64(30),
		"status":              "active",
		"created_at":          created,
	})

	assert.Equal(t, "g-1", g.ID)
	assert.Equal(t, "u-1", g.UserID)
	assert.Equal(t, 30, g.ProgressPercentage)
	assert.Equal(t, GoalStatusActive, g.Status)
	assert.Equal(t, created, g.CreatedAt)
	assert.True(t, g.TargetDate.IsZero(), "absent target date hydrates to zero")
}
