package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate your workspace with sample data",
		Long: "Seed invokes the store's sample-data procedure, creating example\n" +
			"goals, reminders, templates, and a welcome post for your user.\n" +
			"Running it again on a seeded workspace is a no-op.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Seed(); err != nil {
				return fmt.Errorf("seed sample data: %w", err)
			}
			fmt.Println("Sample data seeded")
			return nil
		},
	}
}
