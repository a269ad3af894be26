package main

import (
	"fmt"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/spf13/cobra"
)

func newPartnersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Manage partner logos",
	}

	cmd.AddCommand(newPartnersListCmd())
	cmd.AddCommand(newPartnersCreateCmd())
	cmd.AddCommand(newPartnersDeleteCmd())
	return cmd
}

func newPartnersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			partners, err := getClient().ListPartners(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(partners)
				return nil
			}

			headers := []string{"ID", "NAME", "LOGO"}
			var rows [][]string
			for _, p := range partners {
				rows = append(rows, []string{formatID(p.ID), p.Name, p.Logo})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d partners", len(partners)))
			return nil
		},
	}
}

func newPartnersCreateCmd() *cobra.Command {
	var in api.PartnerInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a partner",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := getClient().CreatePartner(commandContext(cmd), in)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(p)
				return nil
			}

			printMessage(fmt.Sprintf("Partner created: %s (%d)", p.Name, p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Partner name (required)")
	cmd.Flags().StringVar(&in.Logo, "logo", "", "Logo URL (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("logo")
	return cmd
}

func newPartnersDeleteCmd() *cobra.Command {
	var id uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a partner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete partner %d?", id), yes) {
				printMessage("Aborted.")
				return nil
			}

			if err := getClient().DeletePartner(commandContext(cmd), id); err != nil {
				return err
			}

			printMessage("Partner deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Partner ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
