package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogup/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if version.IsDevBuild() {
			fmt.Fprintf(out, "changelogup %s (dev build)\n", version.Version)
		} else {
			fmt.Fprintf(out, "changelogup %s\n", version.Version)
		}
		fmt.Fprintf(out, "commit: %s\n", version.Commit)
		fmt.Fprintf(out, "built: %s\n", version.BuildDate)
		fmt.Fprintf(out, "go: %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
