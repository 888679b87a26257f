// Package output provides terminal output formatting utilities for the
// changelogup CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintFetchSummary prints how many commits were retrieved for a repository.
func PrintFetchSummary(out io.Writer, repo string, commits int) {
	dim := color.New(color.Faint).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	noun := "commits"
	if commits == 1 {
		noun = "commit"
	}
	fmt.Fprintf(out, "%s %s\n", white(fmt.Sprintf("Fetched %d %s", commits, noun)), dim("from "+repo))
}

// PrintWriteSuccess prints a colored success message for the written changelog.
// Uses green checkmark and cyan for the output path.
func PrintWriteSuccess(out io.Writer, path string, entries int) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	noun := "entries"
	if entries == 1 {
		noun = "entry"
	}
	fmt.Fprintf(out, "%s %s %s\n", green("✓"), cyan(path), fmt.Sprintf("(%d %s)", entries, noun))
}

// PrintDetectedRepository prints the repository derived from the origin remote.
func PrintDetectedRepository(out io.Writer, repo string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s\n", dim("Detected repository: "+repo))
}
