// cmd/gogunzip/version_cmd.go

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "gogunzip %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}
