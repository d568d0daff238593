// Post commands: the community board from the command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-careers/stride/pkg/types"
)

func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Manage community posts",
	}
	cmd.AddCommand(newPostAddCmd())
	cmd.AddCommand(newPostListCmd())
	cmd.AddCommand(newPostCommentCmd())
	cmd.AddCommand(newPostLikeCmd())
	return cmd
}

func newPostAddCmd() *cobra.Command {
	var (
		title    string
		content  string
		category string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new post",
		Long: `Add creates a new community post.

Example:
  stride post add --title "Negotiating a counter-offer" --content "..." --category salary
  stride post add --title "Hello" --content "First post!" --tags intro,career`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			post, err := s.ws.Posts().Create(types.Post{
				Title:    title,
				Content:  content,
				Category: category,
				Tags:     tags,
			})
			if err != nil {
				return fmt.Errorf("create post: %w", err)
			}
			if flags.jsonMode {
				return printJSON(post)
			}
			fmt.Printf("Created post: %s\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title (required)")
	cmd.Flags().StringVar(&content, "content", "", "post body (required)")
	cmd.Flags().StringVar(&category, "category", "", "category (default: general)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newPostListCmd() *cobra.Command {
	var withComments bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List community posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			posts, err := s.ws.Posts().List()
			if err != nil {
				return fmt.Errorf("list posts: %w", err)
			}
			if flags.jsonMode {
				return printJSON(posts)
			}
			if len(posts) == 0 {
				fmt.Println("No posts yet")
				return nil
			}
			for _, p := range posts {
				pin := ""
				if p.IsPinned {
					pin = " [pinned]"
				}
				fmt.Printf("%s%s  %s (%s) by %s: %d likes, %d comments\n",
					p.ID, pin, p.Title, p.Category, p.AuthorName, p.LikesCount, p.CommentsCount)
				if withComments {
					comments, err := s.ws.Comments().List(p.ID)
					if err != nil {
						return fmt.Errorf("list comments: %w", err)
					}
					for _, c := range comments {
						fmt.Printf("    %s: %s\n", c.AuthorName, c.Content)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withComments, "comments", false, "include each post's comments")
	return cmd
}

func newPostCommentCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "comment <post-id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			comment, err := s.ws.Comments().Create(args[0], content)
			if err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
			if flags.jsonMode {
				return printJSON(comment)
			}
			fmt.Printf("Created comment: %s\n", comment.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "comment body (required)")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newPostLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle your like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			liked, err := s.ws.Posts().ToggleLike(args[0])
			if err != nil {
				return fmt.Errorf("toggle like: %w", err)
			}
			if liked {
				fmt.Println("Liked")
			} else {
				fmt.Println("Unliked")
			}
			return nil
		},
	}
}
