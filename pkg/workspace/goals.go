package workspace

import "github.com/stride-careers/stride/pkg/types"

// Goals is the sync accessor for career goals. Rows are scoped to the
// current principal on read as well as write.
type Goals struct {
	ws *Workspace
}

// List returns the principal's goals, newest first.
func (g *Goals) List() ([]types.Goal, error) {
	uid, err := g.ws.requireUser()
	if err != nil {
		return nil, err
	}
	rows, err := g.ws.list(types.GoalsCollection, types.Query{
		Filter:  map[string]any{"user_id": uid},
		OrderBy: []types.Order{{Column: "created_at", Desc: true}},
	})
	if err != nil {
		return nil, err
	}
	goals := make([]types.Goal, len(rows))
	for i, r := range rows {
		goals[i] = types.GoalFromRow(r)
	}
	return goals, nil
}

// Create stores a new goal owned by the current principal. An empty
// category defaults to career; an empty status defaults to active.
func (g *Goals) Create(goal types.Goal) (*types.Goal, error) {
	uid, err := g.ws.requireUser()
	if err != nil {
		return nil, err
	}
	category := goal.Category
	if category == "" {
		category = types.DefaultGoalCategory
	}
	status := goal.Status
	if status == "" {
		status = types.GoalStatusActive
	}
	row, err := g.ws.store.Insert(types.GoalsCollection, types.Row{
		"user_id":             uid,
		"title":               goal.Title,
		"description":         goal.Description,
		"category":            category,
		"priority":            goal.Priority,
		"target_date":         goal.TargetDate,
		"progress_percentage": goal.ProgressPercentage,
		"status":              status,
	})
	if err != nil {
		return nil, types.NewRemoteError("insert", types.GoalsCollection, err)
	}
	g.ws.invalidate(types.GoalsCollection)
	created := types.GoalFromRow(row)
	g.ws.log.Info().Str("goal_id", created.ID).Msg("goal created")
	return &created, nil
}

// Update merges the patch into the goal. Only named fields change; last
// write wins.
func (g *Goals) Update(id string, patch types.GoalPatch) error {
	if _, err := g.ws.requireUser(); err != nil {
		return err
	}
	if err := g.ws.store.Update(types.GoalsCollection, id, patch.Row()); err != nil {
		return types.NewRemoteError("update", types.GoalsCollection, err)
	}
	g.ws.invalidate(types.GoalsCollection)
	return nil
}

// Remove deletes the goal.
func (g *Goals) Remove(id string) error {
	if _, err := g.ws.requireUser(); err != nil {
		return err
	}
	if err := g.ws.store.Delete(types.GoalsCollection, id); err != nil {
		return types.NewRemoteError("delete", types.GoalsCollection, err)
	}
	g.ws.invalidate(types.GoalsCollection)
	return nil
}

// Advance bumps the goal's progress by one step, capped at 100, and
// returns the new value.
func (g *Goals) Advance(id string) (int, error) {
	goal, err := g.get(id)
	if err != nil {
		return 0, err
	}
	next := goal.AdvanceProgress()
	if err := g.Update(id, types.GoalPatch{ProgressPercentage: &next}); err != nil {
		return 0, err
	}
	return next, nil
}

// ToggleStatus flips the goal between active and completed and returns
// the new status.
func (g *Goals) ToggleStatus(id string) (string, error) {
	goal, err := g.get(id)
	if err != nil {
		return "", err
	}
	status := goal.ToggleStatus()
	if err := g.Update(id, types.GoalPatch{Status: &status}); err != nil {
		return "", err
	}
	return status, nil
}

// get fetches one goal by id, bypassing the cache.
func (g *Goals) get(id string) (*types.Goal, error) {
	if _, err := g.ws.requireUser(); err != nil {
		return nil, err
	}
	rows, err := g.ws.store.Select(types.GoalsCollection, types.Query{
		Filter: map[string]any{"id": id},
	})
	if err != nil {
		return nil, types.NewRemoteError("select", types.GoalsCollection, err)
	}
	if len(rows) == 0 {
		return nil, types.NewRemoteError("select", types.GoalsCollection, types.ErrNotFound)
	}
	goal := types.GoalFromRow(rows[0])
	return &goal, nil
}
