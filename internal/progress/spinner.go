package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// FetchSpinner shows fetch progress on stderr while commit pages are
// retrieved. All methods are no-ops when the terminal is not a TTY or the
// spinner was disabled, so callers never need to branch.
type FetchSpinner struct {
	spin *spinner.Spinner
	repo string
}

// NewFetchSpinner builds a spinner for the given repository. Pass
// enabled=false (e.g., for --quiet or non-TTY output) to get a no-op spinner.
func NewFetchSpinner(repo string, enabled bool) *FetchSpinner {
	caps := DetectTerminalCapabilities()
	if !enabled || !caps.IsTTY {
		return &FetchSpinner{repo: repo}
	}

	symbols := SelectSymbols(caps)
	spin := spinner.New(
		spinner.CharSets[symbols.SpinnerSet],
		100*time.Millisecond,
		spinner.WithWriter(os.Stderr),
	)
	if caps.SupportsColor {
		_ = spin.Color("cyan")
	}
	return &FetchSpinner{spin: spin, repo: repo}
}

// Start begins the spinner animation.
func (f *FetchSpinner) Start() {
	if f.spin == nil {
		return
	}
	f.spin.Suffix = fmt.Sprintf(" Fetching commits from %s...", f.repo)
	f.spin.Start()
}

// Page updates the spinner message for the page being fetched.
func (f *FetchSpinner) Page(page int) {
	if f.spin == nil {
		return
	}
	f.spin.Suffix = fmt.Sprintf(" Fetching commits from %s (page %d)...", f.repo, page)
}

// Stop halts the spinner and clears its line.
func (f *FetchSpinner) Stop() {
	if f.spin == nil {
		return
	}
	f.spin.Stop()
}
