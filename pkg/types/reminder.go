package types

import "time"

// DefaultReminderType is used when a reminder is created without a type.
const DefaultReminderType = "application"

// Reminder is a dated follow-up owned by one principal.
type Reminder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ReminderType string    `json:"reminder_type"`
	Priority     string    `json:"priority,omitempty"`
	DueDate      time.Time `json:"due_date"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOverdue reports whether the reminder's due date has passed without it
// being completed. A completed reminder is never overdue, regardless of
// its date.
func (r Reminder) IsOverdue(now time.Time) bool {
	return !r.IsCompleted && r.DueDate.Before(now)
}

// ReminderFromRow hydrates a Reminder from a store row.
func ReminderFromRow(row Row) Reminder {
	return Reminder{
		ID:           rowString(row, "id"),
		UserID:       rowString(row, "user_id"),
		Title:        rowString(row, "title"),
		Description:  rowString(row, "description"),
		ReminderType: rowString(row, "reminder_type"),
		Priority:     rowString(row, "priority"),
		DueDate:      rowTime(row, "due_date"),
		IsCompleted:  rowBool(row, "is_completed"),
		CreatedAt:    rowTime(row, "created_at"),
		UpdatedAt:    rowTime(row, "updated_at"),
	}
}

// ReminderPatch names the reminder fields an update may change. Nil
// fields are left untouched by the store; last write wins.
type ReminderPatch struct {
	Title        *string
	Description  *string
	ReminderType *string
	Priority     *string
	DueDate      *time.Time
	IsCompleted  *bool
}

// Row converts the patch to the partial row sent to the store.
func (p ReminderPatch) Row() Row {
	r := Row{}
	if p.Title != nil {
		r["title"] = *p.Title
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	if p.ReminderType != nil {
		r["reminder_type"] = *p.ReminderType
	}
	if p.Priority != nil {
		r["priority"] = *p.Priority
	}
	if p.DueDate != nil {
		r["due_date"] = *p.DueDate
	}
	if p.IsCompleted != nil {
		r["is_completed"] = *p.IsCompleted
	}
	return r
}
