// Goal commands: track career goals and their progress.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/types"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage career goals",
	}
	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalProgressCmd())
	cmd.AddCommand(newGoalCompleteCmd())
	cmd.AddCommand(newGoalDeleteCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var (
		title       string
		description string
		category    string
		priority    string
		target      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		Long: `Add creates a new career goal.

The target date accepts natural language as well as YYYY-MM-DD.

Example:
  stride goal add --title "Land a senior role" --priority high --target "in 6 months"
  stride goal add --title "Finish Go course" --category skills --target 2026-12-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := types.Goal{
				Title:       title,
				Description: description,
				Category:    category,
				Priority:    priority,
			}
			if target != "" {
				t, err := parseNaturalDate(target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				goal.TargetDate = t
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			created, err := s.ws.Goals().Create(goal)
			if err != nil {
				return fmt.Errorf("create goal: %w", err)
			}
			if flags.jsonMode {
				return printJSON(created)
			}
			fmt.Printf("Created goal: %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "goal title (required)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&category, "category", "", "category (default: career)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high)")
	cmd.Flags().StringVar(&target, "target", "", "target date")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			goals, err := s.ws.Goals().List()
			if err != nil {
				return fmt.Errorf("list goals: %w", err)
			}
			if flags.jsonMode {
				return printJSON(goals)
			}
			if len(goals) == 0 {
				fmt.Println("No goals yet")
				return nil
			}
			for _, g := range goals {
				fmt.Printf("%s  %s [%s] %d%% (%s) target %s\n",
					g.ID, g.Title, g.Status, g.ProgressPercentage, g.Category, formatDate(g.TargetDate))
			}
			return nil
		},
	}
}

func newGoalProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <goal-id>",
		Short: "Bump a goal's progress by 10%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			next, err := s.ws.Goals().Advance(args[0])
			if err != nil {
				return fmt.Errorf("advance goal: %w", err)
			}
			fmt.Printf("Progress: %d%%\n", next)
			return nil
		},
	}
}

func newGoalCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <goal-id>",
		Short: "Toggle a goal between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			status, err := s.ws.Goals().ToggleStatus(args[0])
			if err != nil {
				return fmt.Errorf("toggle goal status: %w", err)
			}
			fmt.Printf("Goal is now %s\n", status)
			return nil
		},
	}
}

func newGoalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Goals().Remove(args[0]); err != nil {
				return fmt.Errorf("delete goal: %w", err)
			}
			fmt.Println("Goal deleted")
			return nil
		},
	}
}
