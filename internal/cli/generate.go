package cli

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogup/internal/changelog"
	"github.com/ariel-frischer/changelogup/internal/config"
	"github.com/ariel-frischer/changelogup/internal/errors"
	"github.com/ariel-frischer/changelogup/internal/git"
	"github.com/ariel-frischer/changelogup/internal/github"
	"github.com/ariel-frischer/changelogup/internal/output"
	"github.com/ariel-frischer/changelogup/internal/progress"
)

var (
	generateTokenFlag      string
	generateRepoFlag       string
	generateOutputFlag     string
	generateBranchFlag     string
	generatePerPageFlag    int
	generateMaxCommitsFlag int
	generateTimeoutFlag    int
	generateCategorizeFlag bool
	generatePlainFlag      bool
	generateQuietFlag      bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Fetch commit history and write the changelog",
	Long: `Fetch the full commit history of a GitHub repository and write it as a
markdown changelog. The configured output file is wholly replaced; nothing is
written when fetching fails.

The token is resolved from --token, the CHANGELOGUP_TOKEN or GITHUB_TOKEN
environment variables, or the config file. The repository is resolved from
--repo, the config file, or the origin remote of the enclosing git clone.`,
	Example: `  # Explicit repository and token
  changelogup generate --repo acme/widgets --token ghp_xxx

  # Detect the repository from the origin remote, token from env
  changelogup generate

  # Write somewhere else and group by conventional-commit type
  changelogup generate --repo acme/widgets -o docs/CHANGES.md --categorize`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateTokenFlag, "token", "", "GitHub personal access token")
	generateCmd.Flags().StringVar(&generateRepoFlag, "repo", "", "Repository in owner/repo form")
	generateCmd.Flags().StringVarP(&generateOutputFlag, "output", "o", "", "Output path (default CHANGELOG.md)")
	generateCmd.Flags().StringVar(&generateBranchFlag, "branch", "", "Branch, tag, or SHA to list commits from")
	generateCmd.Flags().IntVar(&generatePerPageFlag, "per-page", 0, "Commits per API page (1-100)")
	generateCmd.Flags().IntVar(&generateMaxCommitsFlag, "max-commits", 0, "Cap on fetched commits (0 = all)")
	generateCmd.Flags().IntVar(&generateTimeoutFlag, "timeout", 0, "Request timeout in seconds (0 = config default)")
	generateCmd.Flags().BoolVar(&generateCategorizeFlag, "categorize", false, "Group entries into conventional-commit sections")
	generateCmd.Flags().BoolVar(&generatePlainFlag, "plain", false, "Disable colors and spinner animation")
	generateCmd.Flags().BoolVarP(&generateQuietFlag, "quiet", "q", false, "Suppress progress and summary output")
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	if generatePlainFlag {
		color.NoColor = true
	}

	spin := progress.NewFetchSpinner(cfg.Repository, !generateQuietFlag && !generatePlainFlag)

	client, err := github.NewClient(cfg.Token, cfg.Repository, github.Options{
		PerPage:    cfg.PerPage,
		Branch:     cfg.Branch,
		MaxCommits: cfg.MaxCommits,
		OnPage:     spin.Page,
	})
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
		defer cancel()
	}

	fetch := spinnerFetcher{client: client, spin: spin}
	return runPipeline(ctx, cfg, fetch, cmd.OutOrStdout(), generateQuietFlag)
}

// commitFetcher is the seam between the pipeline and the GitHub client.
type commitFetcher interface {
	FetchAll(ctx context.Context) ([]changelog.Commit, error)
}

// spinnerFetcher animates the fetch spinner for the duration of the fetch,
// so the summary output never interleaves with spinner updates.
type spinnerFetcher struct {
	client *github.Client
	spin   *progress.FetchSpinner
}

func (s spinnerFetcher) FetchAll(ctx context.Context) ([]changelog.Commit, error) {
	s.spin.Start()
	defer s.spin.Stop()
	return s.client.FetchAll(ctx)
}

// runPipeline executes fetch -> render -> write. A fetch failure aborts the
// run before the output path is touched.
func runPipeline(ctx context.Context, cfg *config.Configuration, fetch commitFetcher, out io.Writer, quiet bool) error {
	commits, err := fetch.FetchAll(ctx)
	if err != nil {
		return err
	}
	return writeChangelog(cfg, commits, out, quiet)
}

// resolveRunConfig loads configuration, applies flag overrides, fills in the
// repository from the local git remote when needed, and validates the result.
// All failures here are configuration errors raised before any API call.
func resolveRunConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return nil, errors.ConfigParseError(effectiveConfigPath(), err)
	}

	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.Token = generateTokenFlag
	}
	if flags.Changed("repo") {
		cfg.Repository = generateRepoFlag
	}
	if flags.Changed("output") {
		cfg.Output = generateOutputFlag
	}
	if flags.Changed("branch") {
		cfg.Branch = generateBranchFlag
	}
	if flags.Changed("per-page") {
		cfg.PerPage = generatePerPageFlag
	}
	if flags.Changed("max-commits") {
		cfg.MaxCommits = generateMaxCommitsFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = generateTimeoutFlag
	}
	if flags.Changed("categorize") {
		cfg.Categorize = generateCategorizeFlag
	}

	if cfg.Repository == "" {
		detected, derr := git.DetectRepository("")
		if derr == nil {
			cfg.Repository = detected
			if !generateQuietFlag {
				output.PrintDetectedRepository(cmd.ErrOrStderr(), detected)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, asConfigError(cfg, err)
	}

	return cfg, nil
}

// asConfigError maps a validation failure to its canned configuration error.
func asConfigError(cfg *config.Configuration, err error) error {
	var vErr *config.ValidationError
	if stderrors.As(err, &vErr) {
		switch vErr.Field {
		case "token":
			return errors.MissingToken()
		case "repository":
			if cfg.Repository == "" {
				return errors.MissingRepository()
			}
			return errors.InvalidRepositoryFormat(cfg.Repository)
		}
	}
	return errors.Wrap(err, errors.Configuration)
}

// writeChangelog renders the document and persists it, printing a short
// summary unless quiet. Nothing is written when rendering fails.
func writeChangelog(cfg *config.Configuration, commits []changelog.Commit, out io.Writer, quiet bool) error {
	doc := &changelog.Document{
		Repository: cfg.Repository,
		Commits:    commits,
		Categorize: cfg.Categorize,
	}

	rendered, err := changelog.RenderMarkdownString(doc)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "rendering changelog")
	}

	if err := changelog.WriteFile(cfg.Output, []byte(rendered)); err != nil {
		return errors.WriteFailed(cfg.Output, err)
	}

	if !quiet {
		output.PrintFetchSummary(out, cfg.Repository, len(commits))
		output.PrintWriteSuccess(out, cfg.Output, doc.EntryCount())
	}
	return nil
}
