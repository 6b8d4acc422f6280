package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"license-applier/internal/config"
	"license-applier/internal/diagnostic"
	"license-applier/internal/header"
	"license-applier/internal/logging"
	"license-applier/internal/runner"
	"license-applier/internal/source"
)

type runFlags struct {
	licenseFile string
	properties  map[string]string
	jobs        int
	dryRun      bool
	diff        bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVarP(&f.licenseFile, "license-file", "l", "", "license template file")
	cmd.Flags().StringToStringVar(&f.properties, "set", nil, "template variable binding, e.g. --set year=2024")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "files processed in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "do not write files")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "print a diff of every changed file")
}

func newRunCmd(globals *globalFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [paths or packages...]",
		Short: "Apply the configured action",
		Long: `Apply the action from the configuration file (reformat by default).

Arguments are files, directories or package patterns such as ./...
Without arguments the paths from the configuration file are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, globals, flags, "", args)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

func newActionCmd(globals *globalFlags, action, short string) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   action + " [paths or packages...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, globals, flags, action, args)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

// session is everything a command needs to process files.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	runner *runner.Runner
	files  []string
}

func newSession(cmd *cobra.Command, globals *globalFlags, flags *runFlags, action string, args []string) (*session, error) {
	cfg, err := loadConfig(globals.cfgFile)
	if err != nil {
		return nil, err
	}

	applyOverrides(cmd, cfg, globals, flags, action, args)

	if res := cfg.Validate(); !res.IsValid() {
		return nil, res.Error()
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	applier, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	files, err := source.Discover(cmd.Context(), cfg.Paths...)
	if err != nil {
		return nil, err
	}

	r := &runner.Runner{
		Applier: applier,
		Logger:  logger,
		Jobs:    cfg.Jobs,
		DryRun:  flags.dryRun,
	}

	if flags.diff {
		r.Diff = cmd.OutOrStdout()
	}

	logger.Debug("configuration loaded",
		zap.Stringer("action", applier.Action()),
		zap.String("license_file", cfg.LicenseFile),
		zap.Int("files", len(files)),
		zap.Int("jobs", cfg.Jobs),
	)

	return &session{cfg: cfg, logger: logger, runner: r, files: files}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadFile(defaultConfigFile)
	}

	return config.Default(), nil
}

// applyOverrides lets explicit flags and arguments win over the config file.
func applyOverrides(cmd *cobra.Command, cfg *config.Config, globals *globalFlags, flags *runFlags, action string, args []string) {
	if action != "" {
		cfg.Action = action
	}

	if cmd.Flags().Changed("license-file") {
		cfg.LicenseFile = flags.licenseFile
	}

	for k, v := range flags.properties {
		cfg.PropertyValues[k] = v
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}

	if len(args) > 0 {
		cfg.Paths = args
	}

	if globals.verbose {
		cfg.Log.Level = "debug"
	}

	if globals.logFormat != "" {
		cfg.Log.Format = globals.logFormat
	}
}

func runAction(cmd *cobra.Command, globals *globalFlags, flags *runFlags, action string, args []string) error {
	s, err := newSession(cmd, globals, flags, action, args)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	report, err := s.runner.Run(cmd.Context(), s.files)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report, globals.verbose)

	return reportError(s.runner.Applier.Action(), report)
}

// reportError turns the outcome of a run into the command error.
func reportError(action header.Action, report *runner.Report) error {
	if err := report.Diagnostics.Error(); err != nil {
		return &exitError{code: exitFailure, err: errors.New("some files could not be processed")}
	}

	if action == header.ActionCheck && report.MissingLicense() {
		return &exitError{
			code: exitMissing,
			err:  fmt.Errorf("%d file(s) missing license", len(report.Diagnostics.Warnings)),
		}
	}

	return nil
}

func printReport(w io.Writer, report *runner.Report, verbose bool) {
	for _, d := range report.Diagnostics.Sorted() {
		if d.Severity == diagnostic.DiagnosticInfo && !verbose && d.Code == diagnostic.CodeLicensePresent {
			continue
		}

		fmt.Fprintln(w, d.String())
	}

	fmt.Fprintf(w, "%d %s processed, %d changed\n", report.Processed, plural(report.Processed, "file"), report.Changed)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
