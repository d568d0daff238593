package types

import (
	"errors"
	"time"
)

// Goal statuses.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// DefaultGoalCategory is used when a goal is created without a category.
const DefaultGoalCategory = "career"

// ProgressStep is how far AdvanceProgress moves a goal per call.
const ProgressStep = 10

// validGoalStatuses is the set of recognized goal status values.
var validGoalStatuses = map[string]bool{
	GoalStatusActive:    true,
	GoalStatusCompleted: true,
}

// Goal entity errors.
var (
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

// Goal is a career goal owned by one principal.
type Goal struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Category           string    `json:"category"`
	Priority           string    `json:"priority,omitempty"`
	TargetDate         time.Time `json:"target_date,omitempty"`
	ProgressPercentage int       `json:"progress_percentage"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SetStatus sets the goal status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
// Idempotent: setting the current status succeeds without error.
func (g *Goal) SetStatus(status string) error {
	if !validGoalStatuses[status] {
		return ErrInvalidStatus
	}
	g.Status = status
	return nil
}

// SetProgress sets the progress percentage.
// Returns ErrInvalidProgress when the value is outside 0..100.
func (g *Goal) SetProgress(p int) error {
	if p < 0 || p > 100 {
		return ErrInvalidProgress
	}
	g.ProgressPercentage = p
	return nil
}

// AdvanceProgress bumps the progress by ProgressStep, capped at 100.
// Returns the new value.
func (g *Goal) AdvanceProgress() int {
	next := g.ProgressPercentage + ProgressStep
	if next > 100 {
		next = 100
	}
	g.ProgressPercentage = next
	return next
}

// ToggleStatus flips between active and completed and returns the new
// status. Any unrecognized current status toggles to completed.
func (g *Goal) ToggleStatus() string {
	if g.Status == GoalStatusCompleted {
		g.Status = GoalStatusActive
	} else {
		g.Status = GoalStatusCompleted
	}
	return g.Status
}

// GoalFromRow hydrates a Goal from a store row.
func GoalFromRow(r Row) Goal {
	return Goal{
		ID:                 rowString(r, "id"),
		UserID:             rowString(r, "user_id"),
		Title:              rowString(r, "title"),
		Description:        rowString(r, "description"),
		Category:           rowString(r, "category"),
		Priority:           rowString(r, "priority"),
		TargetDate:         rowTime(r, "target_date"),
		ProgressPercentage: rowInt(r, "progress_percentage"),
		Status:             rowString(r, "status"),
		CreatedAt:          rowTime(r, "created_at"),
		UpdatedAt:          rowTime(r, "updated_at"),
	}
}

// GoalPatch names the goal fields an update may change. Nil fields are
// left untouched by the store. Last write wins: there is no optimistic
// concurrency check, so concurrent patches to the same goal silently
// overwrite each other field by field.
type GoalPatch struct {
	Title              *string
	Description        *string
	Category           *string
	Priority           *string
	TargetDate         *time.Time
	ProgressPercentage *int
	Status             *string
}

// Row converts the patch to the partial row sent to the store.
func (p GoalPatch) Row() Row {
	r := Row{}
	if p.Title != nil {
		r["title"] = *p.Title
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	if p.Category != nil {
		r["category"] = *p.Category
	}
	if p.Priority != nil {
		r["priority"] = *p.Priority
	}
	if p.TargetDate != nil {
		r["target_date"] = *p.TargetDate
	}
	if p.ProgressPercentage != nil {
		r["progress_percentage"] = *p.ProgressPercentage
	}
	if p.Status != nil {
		r["status"] = *p.Status
	}
	return r
}
