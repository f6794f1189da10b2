// cmd/gogunzip/verify_cmd.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-gunzip/pkg/gunzip"
	"github.com/creativeyann17/go-gunzip/pkg/verify"
)

func verifyCmd(program string) *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:   "verify FILE1.gz [FILE2.gz ...]",
		Short: "Check every member of the given files without extracting",
		Long: `Decode every member of every given .gz file and check its CRC-32 and size.

Nothing is written to disk. Unlike extraction, a bad file does not stop
the remaining files from being checked.`,
		Args: cobra.ArbitraryArgs,

		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			files := gunzip.Select(splitArgs(cmd.Flags(), args))

			if g.help {
				return cmd.Help()
			}
			if len(files) == 0 {
				return &usageError{line: fmt.Sprintf("Usage: %s verify FILE1.gz [FILE2.gz ...]", program)}
			}

			logger := newLogger(g.debug, cmd.ErrOrStderr())
			defer logger.Sync()

			var progressCb verify.ProgressCallback
			var progress *mpb.Progress
			if g.progress {
				var cb gunzip.ProgressCallback
				cb, progress = gunzip.ProgressBarCallback()
				progressCb = verify.ProgressCallback(cb)
			}

			result, err := verify.Verify(&verify.Options{Files: files, Logger: logger}, progressCb)

			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, result.Listing())
			fmt.Fprintln(out)
			fmt.Fprint(out, result.Summary())

			if !result.IsValid() {
				return fmt.Errorf("verification failed for %d of %d files", len(result.Errors), len(result.Files))
			}
			return nil
		},
	}

	bindGlobalFlags(cmd.Flags(), &g)

	return cmd
}
