// Init command: create the config and data directories, generate the
// local user id, and initialize the storage backend.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/types"
)

func newInitCmd() *cobra.Command {
	var fullName string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize stride storage",
		Long: "Create configuration and data directories, generate a user id,\n" +
			"and initialize the storage backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if fullName != "" {
				if err := writeProfile(s.store, s.userID, fullName); err != nil {
					return err
				}
			}

			fmt.Println("Stride initialized successfully")
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "full name for your profile (shown on posts and comments)")
	return cmd
}

// writeProfile creates or updates the profile row carrying the display
// name denormalized onto posts and comments.
func writeProfile(store types.Store, userID, fullName string) error {
	if userID == "" {
		return fmt.Errorf("no user_id in config")
	}

	existing, err := store.Select(types.ProfilesCollection, types.Query{
		Filter: map[string]any{"user_id": userID},
	})
	if err != nil {
		return fmt.Errorf("look up profile: %w", err)
	}
	if len(existing) > 0 {
		profile := types.ProfileFromRow(existing[0])
		if err := store.Update(types.ProfilesCollection, profile.ID, types.Row{"full_name": fullName}); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	}
	if _, err := store.Insert(types.ProfilesCollection, types.Row{
		"user_id":   userID,
		"full_name": fullName,
	}); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}
