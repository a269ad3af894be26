package main

import (
	"fmt"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage portfolio projects",
	}

	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsCreateCmd())
	cmd.AddCommand(newProjectsGetCmd())
	cmd.AddCommand(newProjectsUpdateCmd())
	cmd.AddCommand(newProjectsDeleteCmd())
	return cmd
}

func newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := getClient().ListProjects(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(projects)
				return nil
			}

			headers := []string{"ID", "TITLE", "CATEGORY", "DESCRIPTION", "CREATED AT"}
			var rows [][]string
			for _, p := range projects {
				rows = append(rows, []string{
					formatID(p.ID),
					p.Title,
					p.Category,
					truncate(p.Description, 40),
					formatTime(p.CreatedAt),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d projects", len(projects)))
			return nil
		},
	}
}

func newProjectsCreateCmd() *cobra.Command {
	var in api.ProjectInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := getClient().CreateProject(commandContext(cmd), in)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(p)
				return nil
			}

			printMessage(fmt.Sprintf("Project created: %s (%d)", p.Title, p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Project title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Project description (required)")
	cmd.Flags().StringVar(&in.Image, "image", "", "Image URL (required)")
	cmd.Flags().StringVar(&in.Category, "category", "", "Project category (required)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("image")
	cmd.MarkFlagRequired("category")
	return cmd
}

func newProjectsGetCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a project by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := getClient().GetProject(commandContext(cmd), id)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(p)
				return nil
			}

			printProject(p)
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Project ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newProjectsUpdateCmd() *cobra.Command {
	var id uint
	var in api.ProjectInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project; only the flags given are changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := changedFields(cmd, "title", "description", "image", "category")
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update")
			}

			p, err := getClient().UpdateProject(commandContext(cmd), id, api.NewPatch(in, fields...))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(p)
				return nil
			}

			printMessage(fmt.Sprintf("Project updated: %s (%d)", p.Title, p.ID))
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Project ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&in.Title, "title", "", "New title")
	cmd.Flags().StringVar(&in.Description, "description", "", "New description")
	cmd.Flags().StringVar(&in.Image, "image", "", "New image URL")
	cmd.Flags().StringVar(&in.Category, "category", "", "New category")
	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	var id uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete project %d?", id), yes) {
				printMessage("Aborted.")
				return nil
			}

			if err := getClient().DeleteProject(commandContext(cmd), id); err != nil {
				return err
			}

			printMessage("Project deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Project ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func printProject(p *project.Project) {
	printFields([][]string{
		{"ID", formatID(p.ID)},
		{"Title", p.Title},
		{"Category", p.Category},
		{"Description", p.Description},
		{"Image", p.Image},
		{"Created At", formatTime(p.CreatedAt)},
	})
}
