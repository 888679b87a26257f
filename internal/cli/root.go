// Package cli implements the changelogup command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogup/internal/config"
	"github.com/ariel-frischer/changelogup/internal/errors"
	"github.com/ariel-frischer/changelogup/internal/version"
)

// configPathFlag overrides the project config path for every command.
var configPathFlag string

// effectiveConfigPath is the project config path after the --config override.
func effectiveConfigPath() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	return config.ProjectConfigPath()
}

var rootCmd = &cobra.Command{
	Use:   "changelogup",
	Short: "Generate a changelog from a GitHub repository's commit history",
	Long: `changelogup fetches the commit history of a GitHub repository through the
REST API and renders it into a markdown changelog file.

The run is a single forward pass: resolve configuration, fetch all commit
pages, render the document, write it to disk. The output file is wholly
replaced on every run.`,
	Example: `  # Generate CHANGELOG.md for a repository
  changelogup generate --repo acme/widgets --token $GITHUB_TOKEN

  # Inside a clone, the repository is detected from the origin remote
  changelogup generate

  # Group entries into conventional-commit sections
  changelogup generate --repo acme/widgets --categorize`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"Path to config file (default .changelogup/config.yml)")
}

// Execute runs the command tree and prints any failure as a structured,
// categorized error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			errors.PrintSimpleError(err, errors.Runtime)
		}
	}
	return err
}
