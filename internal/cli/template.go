// Template commands: reusable outreach messages with {{placeholders}}.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/types"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage message templates",
	}
	cmd.AddCommand(newTemplateAddCmd())
	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateRenderCmd())
	cmd.AddCommand(newTemplateDeleteCmd())
	return cmd
}

func newTemplateAddCmd() *cobra.Command {
	var (
		name    string
		tplType string
		subject string
		content string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new template",
		Long: `Add creates a reusable message template. Use double curly braces for
placeholders, e.g. {{company_name}} or {{interviewer_name}}; they are
extracted automatically.

Example:
  stride template add --name "Follow-up" --subject "Thank you" \
    --content "Hi {{interviewer_name}}, thanks for your time at {{company_name}}."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			created, err := s.ws.Templates().Create(types.Template{
				Name:         name,
				TemplateType: tplType,
				Subject:      subject,
				Content:      content,
			})
			if err != nil {
				return fmt.Errorf("create template: %w", err)
			}
			if flags.jsonMode {
				return printJSON(created)
			}
			fmt.Printf("Created template: %s\n", created.ID)
			if len(created.Placeholders) > 0 {
				fmt.Printf("Placeholders: %s\n", strings.Join(created.Placeholders, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "template name (required)")
	cmd.Flags().StringVar(&tplType, "type", "", "template type (default: email)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&content, "content", "", "template body (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			templates, err := s.ws.Templates().List()
			if err != nil {
				return fmt.Errorf("list templates: %w", err)
			}
			if flags.jsonMode {
				return printJSON(templates)
			}
			if len(templates) == 0 {
				fmt.Println("No templates yet")
				return nil
			}
			for _, t := range templates {
				fmt.Printf("%s  %s (%s) used %d times\n", t.ID, t.Name, t.TemplateType, t.UsageCount)
				if len(t.Placeholders) > 0 {
					fmt.Printf("    placeholders: %s\n", strings.Join(t.Placeholders, ", "))
				}
			}
			return nil
		},
	}
}

func newTemplateRenderCmd() *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Render a template with placeholder values",
		Long: `Render substitutes values into a template's placeholders and bumps its
usage count. Placeholders without a value are left in place.

Example:
  stride template render TEMPLATE_ID --set company_name=Acme --set interviewer_name=Sam`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := map[string]string{}
			for _, kv := range vars {
				key, value, found := strings.Cut(kv, "=")
				if !found {
					return fmt.Errorf("invalid --set %q: want name=value", kv)
				}
				values[key] = value
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			rendered, err := s.ws.Templates().Render(args[0], values)
			if err != nil && rendered == "" {
				return fmt.Errorf("render template: %w", err)
			}
			fmt.Println(rendered)
			if err != nil {
				// Rendered fine but the usage-count bump failed.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "set", nil, "placeholder value as name=value (repeatable)")
	return cmd
}

func newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Templates().Remove(args[0]); err != nil {
				return fmt.Errorf("delete template: %w", err)
			}
			fmt.Println("Template deleted")
			return nil
		},
	}
}
