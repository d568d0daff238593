package sqlite

import (
	"fmt"
	"time"

	"github.com/stride-careers/stride/pkg/types"
)

// seed populates the attached user's collections with sample rows so a
// fresh workspace has something to look at. A user that already owns
// goals is considered seeded and left alone, so the RPC can be invoked
// repeatedly without piling up duplicates.
func (b *Backend) seed() error {
	b.mu.RLock()
	userID := b.config.UserID
	b.mu.RUnlock()
	if userID == "" {
		return fmt.Errorf("seed: no user configured")
	}

	existing, err := b.Select(types.GoalsCollection, types.Query{
		Filter: map[string]any{"user_id": userID},
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	if err := b.seedProfile(userID); err != nil {
		return err
	}

	inserts := []struct {
		collection string
		values     types.Row
	}{
		{types.GoalsCollection, types.Row{
			"user_id":             userID,
			"title":               "Land a senior engineering role",
			"description":         "Target companies with strong mentorship culture.",
			"category":            "career",
			"priority":            "high",
			"target_date":         time.Now().UTC().AddDate(0, 6, 0),
			"progress_percentage": 40,
			"status":              types.GoalStatusActive,
		}},
		{types.GoalsCollection, types.Row{
			"user_id":             userID,
			"title":               "Grow professional network",
			"description":         "Reach out to two new contacts every week.",
			"category":            "networking",
			"priority":            "medium",
			"progress_percentage": 10,
			"status":              types.GoalStatusActive,
		}},
		{types.RemindersCollection, types.Row{
			"user_id":       userID,
			"title":         "Follow up with Acme recruiter",
			"description":   "Ask about the timeline for the next round.",
			"reminder_type": "follow_up",
			"priority":      "high",
			"due_date":      time.Now().UTC().AddDate(0, 0, 3),
		}},
		{types.RemindersCollection, types.Row{
			"user_id":       userID,
			"title":         "Submit application to Globex",
			"reminder_type": "application",
			"priority":      "medium",
			"due_date":      time.Now().UTC().AddDate(0, 0, 1),
		}},
		{types.TemplatesCollection, types.Row{
			"user_id":       userID,
			"name":          "Follow-up Email After Interview",
			"template_type": "email",
			"subject":       "Thank you for the opportunity",
			"content": "Hi {{interviewer_name}},\n\nThank you for taking the time to " +
				"speak with me about the role at {{company_name}}. I enjoyed our " +
				"conversation and remain very interested.\n\nBest regards",
			"placeholders": []string{"interviewer_name", "company_name"},
		}},
		{types.TemplatesCollection, types.Row{
			"user_id":       userID,
			"name":          "LinkedIn Introduction",
			"template_type": "linkedin",
			"content": "Hi {{first_name}}, I came across your profile and would " +
				"love to connect and learn more about your work at {{company_name}}.",
			"placeholders": []string{"first_name", "company_name"},
		}},
	}
	for _, ins := range inserts {
		if _, err := b.Insert(ins.collection, ins.values); err != nil {
			return fmt.Errorf("seed %s: %w", ins.collection, err)
		}
	}

	post, err := b.Insert(types.PostsCollection, types.Row{
		"user_id":     userID,
		"author_name": "Stride Team",
		"title":       "Welcome to the community",
		"content":     "Introduce yourself and share what you are working toward.",
		"category":    "general",
		"tags":        []string{"welcome"},
		"is_pinned":   true,
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", types.PostsCollection, err)
	}
	_, err = b.Insert(types.CommentsCollection, types.Row{
		"post_id":     post["id"],
		"user_id":     userID,
		"author_name": "Stride Team",
		"content":     "Glad to have you here!",
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", types.CommentsCollection, err)
	}
	return nil
}

// seedProfile creates a profile row for the user when none exists.
func (b *Backend) seedProfile(userID string) error {
	profiles, err := b.Select(types.ProfilesCollection, types.Query{
		Filter: map[string]any{"user_id": userID},
	})
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if len(profiles) > 0 {
		return nil
	}
	_, err = b.Insert(types.ProfilesCollection, types.Row{
		"user_id":   userID,
		"full_name": "Sample User",
	})
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}
