package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/spf13/cobra"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Manage customer reviews",
	}

	cmd.AddCommand(newReviewsListCmd())
	cmd.AddCommand(newReviewsCreateCmd())
	cmd.AddCommand(newReviewsDeleteCmd())
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := getClient().ListReviews(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(reviews)
				return nil
			}

			headers := []string{"ID", "CUSTOMER", "RATING", "CONTENT"}
			var rows [][]string
			for _, r := range reviews {
				rows = append(rows, []string{
					formatID(r.ID),
					r.CustomerName,
					stars(r.Rating),
					truncate(r.Content, 50),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\n%d reviews", len(reviews)))
			return nil
		},
	}
}

func newReviewsCreateCmd() *cobra.Command {
	var in api.ReviewInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a customer review",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getClient().CreateReview(commandContext(cmd), in)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(r)
				return nil
			}

			printMessage(fmt.Sprintf("Review created: %s %s (%d)", r.CustomerName, stars(r.Rating), r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.CustomerName, "customer", "", "Customer name (required)")
	cmd.Flags().StringVar(&in.Content, "content", "", "Review text (required)")
	cmd.Flags().IntVar(&in.Rating, "rating", 5, "Rating from 1 to 5")
	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("content")
	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	var id uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete review %d?", id), yes) {
				printMessage("Aborted.")
				return nil
			}

			if err := getClient().DeleteReview(commandContext(cmd), id); err != nil {
				return err
			}

			printMessage("Review deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Review ID (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

// stars renders a rating as filled and empty stars, falling back to the number when out of range.
func stars(rating int) string {
	if rating < 1 || rating > 5 {
		return strconv.Itoa(rating)
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
