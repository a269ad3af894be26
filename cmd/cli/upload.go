package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			if contentType == "" {
				contentType = mime.TypeByExtension(filepath.Ext(path))
			}

			url, err := getClient().UploadImage(commandContext(cmd), filepath.Base(path), contentType, f)
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(map[string]string{"url": url})
				return nil
			}

			printMessage(url)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "Override the detected content type")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := getClient().Health(commandContext(cmd))
			if err != nil {
				return err
			}

			if flagJSON {
				printJSON(resp)
				return nil
			}

			printMessage(fmt.Sprintf("%s: %s", getConfigURL(), resp.Status))
			return nil
		},
	}
}
