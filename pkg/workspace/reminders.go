package workspace

import "github.com/stride-careers/stride/pkg/types"

// Reminders is the sync accessor for reminders, scoped to the current
// principal.
type Reminders struct {
	ws *Workspace
}

// List returns the principal's reminders, soonest due first.
func (r *Reminders) List() ([]types.Reminder, error) {
	uid, err := r.ws.requireUser()
	if err != nil {
		return nil, err
	}
	rows, err := r.ws.list(types.RemindersCollection, types.Query{
		Filter:  map[string]any{"user_id": uid},
		OrderBy: []types.Order{{Column: "due_date"}},
	})
	if err != nil {
		return nil, err
	}
	reminders := make([]types.Reminder, len(rows))
	for i, row := range rows {
		reminders[i] = types.ReminderFromRow(row)
	}
	return reminders, nil
}

// Create stores a new reminder owned by the current principal. An empty
// type defaults to application.
func (r *Reminders) Create(rem types.Reminder) (*types.Reminder, error) {
	uid, err := r.ws.requireUser()
	if err != nil {
		return nil, err
	}
	remType := rem.ReminderType
	if remType == "" {
		remType = types.DefaultReminderType
	}
	row, err := r.ws.store.Insert(types.RemindersCollection, types.Row{
		"user_id":       uid,
		"title":         rem.Title,
		"description":   rem.Description,
		"reminder_type": remType,
		"priority":      rem.Priority,
		"due_date":      rem.DueDate,
		"is_completed":  rem.IsCompleted,
	})
	if err != nil {
		return nil, types.NewRemoteError("insert", types.RemindersCollection, err)
	}
	r.ws.invalidate(types.RemindersCollection)
	created := types.ReminderFromRow(row)
	r.ws.log.Info().Str("reminder_id", created.ID).Msg("reminder created")
	return &created, nil
}

// Update merges the patch into the reminder. Only named fields change;
// last write wins.
func (r *Reminders) Update(id string, patch types.ReminderPatch) error {
	if _, err := r.ws.requireUser(); err != nil {
		return err
	}
	if err := r.ws.store.Update(types.RemindersCollection, id, patch.Row()); err != nil {
		return types.NewRemoteError("update", types.RemindersCollection, err)
	}
	r.ws.invalidate(types.RemindersCollection)
	return nil
}

// Complete marks the reminder completed or not.
func (r *Reminders) Complete(id string, done bool) error {
	return r.Update(id, types.ReminderPatch{IsCompleted: &done})
}

// Remove deletes the reminder.
func (r *Reminders) Remove(id string) error {
	if _, err := r.ws.requireUser(); err != nil {
		return err
	}
	if err := r.ws.store.Delete(types.RemindersCollection, id); err != nil {
		return types.NewRemoteError("delete", types.RemindersCollection, err)
	}
	r.ws.invalidate(types.RemindersCollection)
	return nil
}
