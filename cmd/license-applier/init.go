package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"license-applier/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		licenseFile string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			cfg := config.Default()
			cfg.LicenseFile = licenseFile
			// Jobs follows the machine running the tool.
			cfg.Jobs = 0

			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config file %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&licenseFile, "license-file", "l", "LICENSE.tmpl", "license template file to reference")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
