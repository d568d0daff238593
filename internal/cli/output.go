// Shared output helpers for stride CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"time"
)

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// formatDate renders a timestamp for list output; zero times print as "-".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
