package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	flagURL   string
	flagJSON  bool
	flagDebug bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showcasectl",
		Short: "CLI for the showcase catalog backend",
		Long:  "A command-line interface for managing projects, services, articles, reviews, partners and images in the showcase catalog.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "API server URL (env: SHOWCASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("showcasectl %s (commit: %s, built: %s)\n", Version, Commit, BuildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newProjectsCmd())
	rootCmd.AddCommand(newServicesCmd())
	rootCmd.AddCommand(newArticlesCmd())
	rootCmd.AddCommand(newReviewsCmd())
	rootCmd.AddCommand(newPartnersCmd())
	rootCmd.AddCommand(newUploadCmd())
	return rootCmd
}
