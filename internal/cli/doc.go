// Document commands: upload, list, download, and delete stored files.
package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/workspace"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage documents",
	}
	cmd.AddCommand(newDocUploadCmd())
	cmd.AddCommand(newDocListCmd())
	cmd.AddCommand(newDocDownloadCmd())
	cmd.AddCommand(newDocDeleteCmd())
	return cmd
}

func newDocUploadCmd() *cobra.Command {
	var (
		docType     string
		description string
		tags        []string
		primary     bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document",
		Long: `Upload stores the file's payload in the bucket and its metadata row
in the store.

Example:
  stride doc upload resume.pdf --type resume --primary
  stride doc upload cover-letter.md --type cover_letter --tags acme,draft`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			fileName := filepath.Base(args[0])
			doc, err := s.ws.Documents().Upload(fileName, data, workspace.UploadInput{
				DocumentType: docType,
				MimeType:     mime.TypeByExtension(filepath.Ext(fileName)),
				Description:  description,
				Tags:         tags,
				IsPrimary:    primary,
			})
			if err != nil {
				return fmt.Errorf("upload document: %w", err)
			}
			if flags.jsonMode {
				return printJSON(doc)
			}
			fmt.Printf("Uploaded document: %s (%d bytes)\n", doc.ID, doc.FileSize)
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "other", "document type (resume, cover_letter, ...)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(&primary, "primary", false, "mark as the primary document of its type")
	return cmd
}

func newDocListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			docs, err := s.ws.Documents().List()
			if err != nil {
				return fmt.Errorf("list documents: %w", err)
			}
			if flags.jsonMode {
				return printJSON(docs)
			}
			if len(docs) == 0 {
				fmt.Println("No documents yet")
				return nil
			}
			for _, d := range docs {
				primary := ""
				if d.IsPrimary {
					primary = " [primary]"
				}
				fmt.Printf("%s  %s (%s, %d bytes)%s uploaded %s\n",
					d.ID, d.Name, d.DocumentType, d.FileSize, primary, formatDate(d.CreatedAt))
			}
			return nil
		},
	}
}

func newDocDownloadCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download <document-id>",
		Short: "Download a document to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			data, doc, err := s.ws.Documents().Download(args[0])
			if err != nil {
				return fmt.Errorf("download document: %w", err)
			}
			target := outPath
			if target == "" {
				target = doc.Name
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			fmt.Printf("Downloaded %s to %s\n", doc.Name, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: the document's name)")
	return cmd
}

func newDocDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document-id>",
		Short: "Delete a document and its payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ws.Documents().Remove(args[0]); err != nil {
				return fmt.Errorf("delete document: %w", err)
			}
			fmt.Println("Document deleted")
			return nil
		},
	}
}
