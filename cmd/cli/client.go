package main

import (
	"context"
	"net/http"
	"os"

	"github.com/hairizuan-noorazman/showcase/client"
	"github.com/spf13/cobra"
)

func getClient() *client.Client {
	opts := []client.Option{
		client.WithHTTPClient(&http.Client{Timeout: getConfigTimeout()}),
	}
	if flagDebug {
		opts = append(opts, client.WithDebug(os.Stderr))
	}
	return client.New(getConfigURL(), opts...)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// changedFields returns the JSON names of the flags set on the command line.
// Flag names match the JSON field names they populate.
func changedFields(cmd *cobra.Command, names ...string) []string {
	var fields []string
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			fields = append(fields, name)
		}
	}
	return fields
}
