package main

import (
	"fmt"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/spf13/cobra"
)

func newServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Manage offered services",
	}

	cmd.AddCommand(newServicesListCmd())
	cmd.AddCommand(newServicesCreateCmd())
	cmd.AddCommand(newServicesGetCmd())
	cmd.AddCommand(newServicesUpdateCmd())
	cmd.AddCommand(newServicesDeleteCmd())
	return cmd
}

func newServicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List services",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := getClient().ListServices(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(services)
				return nil
			}

			headers := []string{"ID", "TITLE", "ICON", "DESCRIPTION", "CREATED AT"}
			var rows [][]string
			for _, s := range services {
				rows = append(rows, []string{
					formatID(s.ID),
					s.Title,
					formatOptional(s.Icon),
					truncate(s.Description, 40),
					formatTime(s.CreatedAt),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d services", len(services)))
			return nil
		},
	}
}

func newServicesCreateCmd() *cobra.Command {
	var in api.ServiceInput
	var icon string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("icon") {
				in.Icon = &icon
			}

			s, err := getClient().CreateService(commandContext(cmd), in)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(s)
				return nil
			}

			printMessage(fmt.Sprintf("Service created: %s (%d)", s.Title, s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Service title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Service description (required)")
	cmd.Flags().StringVar(&in.Image, "image", "", "Image URL (required)")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("image")
	return cmd
}

func newServicesGetCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a service by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getClient().GetService(commandContext(cmd), id)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(s)
				return nil
			}

			printFields([][]string{
				{"ID", formatID(s.ID)},
				{"Title", s.Title},
				{"Icon", formatOptional(s.Icon)},
				{"Description", s.Description},
				{"Image", s.Image},
				{"Created At", formatTime(s.CreatedAt)},
			})
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Service ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newServicesUpdateCmd() *cobra.Command {
	var id uint
	var in api.ServiceInput
	var icon string
	var clearIcon bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a service; only the flags given are changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := changedFields(cmd, "title", "description", "image", "icon")
			switch {
			case clearIcon && cmd.Flags().Changed("icon"):
				return fmt.Errorf("--icon and --clear-icon are mutually exclusive")
			case clearIcon:
				fields = append(fields, "icon")
			case cmd.Flags().Changed("icon"):
				in.Icon = &icon
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update")
			}

			s, err := getClient().UpdateService(commandContext(cmd), id, api.NewPatch(in, fields...))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(s)
				return nil
			}

			printMessage(fmt.Sprintf("Service updated: %s (%d)", s.Title, s.ID))
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Service ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&in.Title, "title", "", "New title")
	cmd.Flags().StringVar(&in.Description, "description", "", "New description")
	cmd.Flags().StringVar(&in.Image, "image", "", "New image URL")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon name")
	cmd.Flags().BoolVar(&clearIcon, "clear-icon", false, "Remove the icon")
	return cmd
}

func newServicesDeleteCmd() *cobra.Command {
	var id uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete service %d?", id), yes) {
				printMessage("Aborted.")
				return nil
			}

			if err := getClient().DeleteService(commandContext(cmd), id); err != nil {
				return err
			}

			printMessage("Service deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Service ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
