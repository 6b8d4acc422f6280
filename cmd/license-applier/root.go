package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// defaultConfigFile is loaded when --config is not given and the file exists.
const defaultConfigFile = ".license-applier.yaml"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitMissing = 3
)

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

type globalFlags struct {
	cfgFile   string
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "license-applier",
		Short: "Check, add, update or remove license headers in Go files",
		Long: `license-applier reconciles the license header of Go source files with a template.

The header is the run of comments before the package clause. A header holds the
license when it contains the template words in order, ignoring line wrapping,
spacing, and the values of ${variables}.

Actions:
  check     report files that are missing the license
  reformat  insert the license where it is missing (default)
  update    replace the header with the license
  remove    delete the header`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.cfgFile, "config", "c", "", "config file path (default "+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&globals.logFormat, "log-format", "", "log format: console, json")

	rootCmd.AddCommand(newRunCmd(globals))
	rootCmd.AddCommand(newActionCmd(globals, "check", "Report files that are missing the license"))
	rootCmd.AddCommand(newActionCmd(globals, "reformat", "Insert the license where it is missing"))
	rootCmd.AddCommand(newActionCmd(globals, "update", "Replace the header with the license"))
	rootCmd.AddCommand(newActionCmd(globals, "remove", "Delete the license header"))
	rootCmd.AddCommand(newWatchCmd(globals))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(), os.Args[1:])

	stop()
	os.Exit(code)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitFailure
}
