package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
)

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(st *cliState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.sustaintrack/config.yaml
  sustaintrack config init

  # Overwrite an existing file
  sustaintrack config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if st.flags.configPath != "" {
				cfg.SetConfigPath(st.flags.configPath)
			}

			if !force {
				_, err := os.Stat(cfg.ConfigPath())
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized successfully\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}
