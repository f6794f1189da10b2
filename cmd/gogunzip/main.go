package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vbauerster/mpb/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/creativeyann17/go-gunzip/pkg/gunzip"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError is reported as a usage line rather than an "Error:" line
type usageError struct {
	line string
}

func (e *usageError) Error() string {
	return e.line
}

// globalFlags are understood by the root command and its subcommands
type globalFlags struct {
	progress bool
	debug    bool
	help     bool
}

func bindGlobalFlags(fs *pflag.FlagSet, g *globalFlags) {
	fs.BoolVar(&g.progress, "progress", false, "Show progress bars on stderr")
	fs.BoolVar(&g.debug, "debug", false, "Write diagnostic logs to stderr")
	fs.BoolVar(&g.help, "help", false, "Show help")
}

// newLogger returns a development console logger on w, or a no-op logger
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func newRootCmd(program string, stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags
	var verbose, showVersion bool

	cmd := &cobra.Command{
		Use:   "gogunzip FILE1.gz [FILE2.gz ...]",
		Short: "gogunzip - extract gzip members to their embedded names",
		Long:  "gogunzip walks every member of the given .gz files and writes each named member to its embedded file name.",
		Args:  cobra.ArbitraryArgs,

		// Every argument is a candidate path; switches are picked out by splitArgs
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,

		RunE: func(cmd *cobra.Command, args []string) error {
			files := gunzip.Select(splitArgs(cmd.Flags(), args))

			if g.help {
				return cmd.Help()
			}
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			if len(files) == 0 {
				return &usageError{line: fmt.Sprintf("Usage: %s FILE1.gz [FILE2.gz ...]", program)}
			}

			logger := newLogger(g.debug, stderr)
			defer logger.Sync()

			opts := &gunzip.Options{
				Files:   files,
				Stdout:  cmd.OutOrStdout(),
				Verbose: verbose,
				Logger:  logger,
			}

			var progressCb gunzip.ProgressCallback
			var progress *mpb.Progress
			if g.progress {
				progressCb, progress = gunzip.ProgressBarCallback()
			}

			result, err := gunzip.Gunzip(opts, progressCb)

			// Wait for progress bars to finish rendering
			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return err
			}

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), gunzip.FormatSummary(result))
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	bindGlobalFlags(cmd.Flags(), &g)
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show member sizes, digests and a summary")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	cmd.AddCommand(
		versionCmd(),
		verifyCmd(program),
	)

	return cmd
}

// run executes the command line and returns the process exit status
func run(program string, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(program, stdout, stderr)

	// Subcommands are only recognized as the first argument. Anywhere else a
	// word like "verify" is one more candidate path, so "--" stops cobra from
	// looking past flag-like inputs such as "-v.gz" for a command name.
	if len(args) == 0 || !isSubcommand(cmd, args[0]) {
		args = append([]string{"--"}, args...)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stdout, usage.line)
	} else {
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}
	return 1
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
