package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogup/internal/config"
	"github.com/ariel-frischer/changelogup/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage changelogup configuration",
	Long: `Manage changelogup configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. CLI flags
  2. Environment variables (CHANGELOGUP_*, GITHUB_TOKEN for the token)
  3. Project config (.changelogup/config.yml)
  4. User config (~/.config/changelogup/config.yml)
  5. Built-in defaults`,
}

var (
	configInitUserFlag  bool
	configInitForceFlag bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Example: `  # Create .changelogup/config.yml in the current project
  changelogup config init

  # Create the user-level config instead
  changelogup config init --user`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the resolved configuration",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitUserFlag, "user", false, "Write the user-level config instead of the project config")
	configInitCmd.Flags().BoolVar(&configInitForceFlag, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command) error {
	path := config.ProjectConfigPath()
	if configInitUserFlag {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return errors.WrapWithMessage(err, errors.IO, "resolving user config directory")
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		return errors.NewConfigError(
			fmt.Sprintf("config file already exists: %s", path),
			"Pass --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.IO, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.IO, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return errors.ConfigParseError(effectiveConfigPath(), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "token: %s\n", redactToken(cfg.Token))
	fmt.Fprintf(out, "repository: %s\n", cfg.Repository)
	fmt.Fprintf(out, "output: %s\n", cfg.Output)
	fmt.Fprintf(out, "branch: %s\n", cfg.Branch)
	fmt.Fprintf(out, "per_page: %d\n", cfg.PerPage)
	fmt.Fprintf(out, "max_commits: %d\n", cfg.MaxCommits)
	fmt.Fprintf(out, "categorize: %v\n", cfg.Categorize)
	fmt.Fprintf(out, "timeout: %d\n", cfg.Timeout)
	return nil
}

// redactToken keeps just enough of the token to recognize which one is set.
func redactToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 4) + token[len(token)-4:]
}
