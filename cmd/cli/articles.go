package main

import (
	"fmt"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/spf13/cobra"
)

func newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Manage blog articles",
	}

	cmd.AddCommand(newArticlesListCmd())
	cmd.AddCommand(newArticlesCreateCmd())
	cmd.AddCommand(newArticlesGetCmd())
	cmd.AddCommand(newArticlesUpdateCmd())
	cmd.AddCommand(newArticlesDeleteCmd())
	return cmd
}

func newArticlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := getClient().ListArticles(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(articles)
				return nil
			}

			headers := []string{"ID", "TITLE", "CONTENT", "CREATED AT"}
			var rows [][]string
			for _, a := range articles {
				rows = append(rows, []string{
					formatID(a.ID),
					a.Title,
					truncate(a.Content, 50),
					formatTime(a.CreatedAt),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d articles", len(articles)))
			return nil
		},
	}
}

func newArticlesCreateCmd() *cobra.Command {
	var in api.ArticleInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new article",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getClient().CreateArticle(commandContext(cmd), in)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(a)
				return nil
			}

			printMessage(fmt.Sprintf("Article created: %s (%d)", a.Title, a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Article title (required)")
	cmd.Flags().StringVar(&in.Content, "content", "", "Article body (required)")
	cmd.Flags().StringVar(&in.Image, "image", "", "Cover image URL (required)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")
	cmd.MarkFlagRequired("image")
	return cmd
}

func newArticlesGetCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an article by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getClient().GetArticle(commandContext(cmd), id)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(a)
				return nil
			}

			printFields([][]string{
				{"ID", formatID(a.ID)},
				{"Title", a.Title},
				{"Image", a.Image},
				{"Created At", formatTime(a.CreatedAt)},
			})
			printMessage("\n" + a.Content)
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Article ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newArticlesUpdateCmd() *cobra.Command {
	var id uint
	var in api.ArticleInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an article; only the flags given are changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := changedFields(cmd, "title", "content", "image")
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update")
			}

			a, err := getClient().UpdateArticle(commandContext(cmd), id, api.NewPatch(in, fields...))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(a)
				return nil
			}

			printMessage(fmt.Sprintf("Article updated: %s (%d)", a.Title, a.ID))
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Article ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&in.Title, "title", "", "New title")
	cmd.Flags().StringVar(&in.Content, "content", "", "New body")
	cmd.Flags().StringVar(&in.Image, "image", "", "New cover image URL")
	return cmd
}

func newArticlesDeleteCmd() *cobra.Command {
	var id uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an article",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete article %d?", id), yes) {
				printMessage("Aborted.")
				return nil
			}

			if err := getClient().DeleteArticle(commandContext(cmd), id); err != nil {
				return err
			}

			printMessage("Article deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Article ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
