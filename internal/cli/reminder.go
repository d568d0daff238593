// Reminder commands: dated follow-ups with natural-language due dates.
package cli

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/types"
)

func newReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage reminders",
	}
	cmd.AddCommand(newReminderAddCmd())
	cmd.AddCommand(newReminderListCmd())
	cmd.AddCommand(newReminderDoneCmd())
	cmd.AddCommand(newReminderDeleteCmd())
	return cmd
}

func newReminderAddCmd() *cobra.Command {
	var (
		title       string
		description string
		remType     string
		priority    string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new reminder",
		Long: `Add creates a new reminder.

The due date accepts natural language as well as YYYY-MM-DD or RFC 3339.

Example:
  stride reminder add --title "Follow up with recruiter" --due tomorrow
  stride reminder add --title "Submit application" --due "next friday" --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseNaturalDate(due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", due, err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			created, err := s.ws.Reminders().Create(types.Reminder{
				Title:        title,
				Description:  description,
				ReminderType: remType,
				Priority:     priority,
				DueDate:      dueDate,
			})
			if err != nil {
				return fmt.Errorf("create reminder: %w", err)
			}
			if flags.jsonMode {
				return printJSON(created)
			}
			fmt.Printf("Created reminder: %s (due %s)\n", created.ID, formatDate(created.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "reminder title (required)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&remType, "type", "", "reminder type (default: application)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high)")
	cmd.Flags().StringVar(&due, "due", "", "due date (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func newReminderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your reminders, soonest due first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			reminders, err := s.ws.Reminders().List()
			if err != nil {
				return fmt.Errorf("list reminders: %w", err)
			}
			if flags.jsonMode {
				return printJSON(reminders)
			}
			if len(reminders) == 0 {
				fmt.Println("No reminders yet")
				return nil
			}
			now := time.Now()
			for _, r := range reminders {
				mark := " "
				if r.IsCompleted {
					mark = "x"
				}
				overdue := ""
				if r.IsOverdue(now) {
					overdue = " OVERDUE"
				}
				fmt.Printf("[%s] %s  %s (%s) due %s%s\n",
					mark, r.ID, r.Title, r.ReminderType, formatDate(r.DueDate), overdue)
			}
			return nil
		},
	}
}

func newReminderDoneCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <reminder-id>",
		Short: "Mark a reminder completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Reminders().Complete(args[0], !undo); err != nil {
				return fmt.Errorf("update reminder: %w", err)
			}
			if undo {
				fmt.Println("Reminder reopened")
			} else {
				fmt.Println("Reminder completed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "mark the reminder as not completed")
	return cmd
}

func newReminderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reminder-id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Reminders().Remove(args[0]); err != nil {
				return fmt.Errorf("delete reminder: %w", err)
			}
			fmt.Println("Reminder deleted")
			return nil
		},
	}
}

// parseNaturalDate parses a date from RFC 3339, YYYY-MM-DD, or natural
// language ("tomorrow", "next friday at 2pm").
func parseNaturalDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	result, err := w.Parse(s, time.Now())
	if err != nil {
		return time.Time{}, err
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("unrecognized date")
	}
	return result.Time, nil
}
