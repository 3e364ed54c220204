// Package main provides the entry point for the auto-merge CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caretaking/auto-merge/internal/logger"
	"github.com/caretaking/auto-merge/internal/ui"
	"github.com/caretaking/auto-merge/pkg/config"
	"github.com/caretaking/auto-merge/pkg/git"
	"github.com/caretaking/auto-merge/pkg/platform"
	"github.com/caretaking/auto-merge/pkg/resolve"
	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"
)

var (
	errClaNotSigned  = errors.New("the CLA is not signed on this pull request")
	errNotMergeReady = errors.New("pull request is not marked as merge ready")
	errNoDestination = errors.New("target label resolves to no destination branches")
	errMergeAborted  = errors.New("merge aborted")
)

var (
	logLevel   string
	configPath string
	skipPrompt bool
	dryRun     bool

	log *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "auto-merge <pr-number>",
	Short: "Merge pull requests into the branches their target labels select",
	Long: `auto-merge reads a declarative merge configuration, resolves the target
labels attached to a pull request into a concrete list of destination
branches, and merges the pull request through the forge API once the
gating labels (CLA signed, merge ready) are present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pull request number %q", args[0])
		}
		return runMerge(number)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName,
		"Path to the merge configuration file")
	rootCmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false,
		"Skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Resolve and report, but do not merge")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMerge(number int) error {
	log = logger.NewLogger(logLevel)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.WithField("project-root", cfg.ProjectRoot).Debug("Configuration loaded")

	repo, err := git.OpenRepository(cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}
	repo.SetLogger(log)

	forge, err := repo.DetectPlatform()
	if err != nil {
		return fmt.Errorf("failed to detect platform: %w", err)
	}
	log.WithField("platform", forge).Info("Platform detected")

	if path, err := repo.RemoteRepoPath("origin"); err == nil {
		configured := fmt.Sprintf("%s/%s", cfg.Repository.User, cfg.Repository.Name)
		if path != configured {
			log.WithFields(map[string]interface{}{
				"origin": path, "configured": configured,
			}).Warn("Origin remote does not match configured repository")
		}
	}

	provider, err := platform.NewProvider(forge, log)
	if err != nil {
		return err
	}
	if err := provider.Initialize(cfg.Repository); err != nil {
		return err
	}

	pr, err := provider.GetPullRequest(number)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"title": pr.Title, "target": pr.TargetBranch,
	}).Info("Pull request fetched")

	branches, classification, err := resolveTargets(cfg, pr)
	if err != nil {
		return err
	}
	log.WithField("branches", strings.Join(branches, ", ")).Info("Destination branches resolved")

	if err := verifyBaseCommits(repo, forge, cfg, branches); err != nil {
		return err
	}

	return performMerge(provider, cfg, pr, branches, classification)
}

// resolveTargets applies the label gates and resolves the destination
// branches of the pull request.
func resolveTargets(cfg *config.Config, pr *platform.PullRequest) ([]string, resolve.Classification, error) {
	classification := resolve.Classify(cfg, pr.Labels)
	if !classification.ClaSigned {
		return nil, classification, errClaNotSigned
	}
	if !classification.MergeReady {
		return nil, classification, errNotMergeReady
	}

	if matched := resolve.MatchingLabels(cfg.Labels, pr.Labels); len(matched) > 1 {
		patterns := make([]string, len(matched))
		for i, entry := range matched {
			patterns[i] = entry.Pattern.String()
		}
		log.WithField("patterns", strings.Join(patterns, ", ")).
			Warn("Multiple target labels match; the first configured one wins")
	}

	branches, err := resolve.Targets(cfg.Labels, pr.Labels, pr.TargetBranch)
	if err != nil {
		return nil, classification, err
	}
	if len(branches) == 0 {
		return nil, classification, errNoDestination
	}
	return branches, classification, nil
}

// verifyBaseCommits refreshes the destination branch heads and checks the
// required base commits, when the configuration declares any.
func verifyBaseCommits(repo *git.Repository, forge git.Platform, cfg *config.Config, branches []string) error {
	if len(cfg.RequiredBaseCommits) == 0 {
		return nil
	}
	if err := repo.FetchUpstream(forge, cfg.Repository, branches); err != nil {
		return err
	}
	return repo.VerifyBaseCommits(cfg.RequiredBaseCommits, branches)
}

func performMerge(provider platform.Provider, cfg *config.Config, pr *platform.PullRequest,
	branches []string, classification resolve.Classification,
) error {
	if !cfg.GithubAPIMerge.Enabled {
		return fmt.Errorf("%w; merge this pull request manually", platform.ErrAPIMergeDisabled)
	}

	params := platform.MergeParams{
		Number: pr.Number,
		Method: cfg.GithubAPIMerge.Method(pr.Labels),
	}
	if classification.CommitFixup {
		params.CommitTitle = pr.Title
		log.Info("Commit message fixup requested; using pull request title")
	}

	if dryRun {
		log.WithFields(map[string]interface{}{
			"number":   pr.Number,
			"method":   string(params.Method),
			"branches": strings.Join(branches, ", "),
		}).Info("Dry run: would merge")
		return nil
	}

	if !skipPrompt {
		confirmed, err := ui.ConfirmMerge(pr.Number, branches)
		if err != nil {
			return err
		}
		if !confirmed {
			return errMergeAborted
		}
	}

	if err := provider.Merge(params); err != nil {
		return err
	}
	log.WithField("url", pr.WebURL).Info("Pull request merged")
	return nil
}
