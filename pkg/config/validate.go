package config

import "path/filepath"

// Validation error messages. Kept as exact strings because callers and tests
// match on them and they are shown verbatim to configuration authors.
const (
	errMissingProjectRoot   = "Missing project root."
	errNoLabels             = "No label configuration."
	errLabelsNotArray       = "Label configuration needs to be an array."
	errNoRepository         = "No repository is configured."
	errRepositoryIncomplete = "Repository configuration needs to specify a `user` and repository `name`."
	errNoClaSignedLabel     = "No CLA signed label configured."
	errNoMergeReadyLabel    = "No merge ready label configured."
	errNoAPIMergeChoice     = "No explicit choice of merge strategy. Please set `githubApiMerge`."
)

// Validate checks the configuration for structural completeness. All checks
// run independently so a single call reports every problem at once. The
// returned slice is nil when the configuration is valid; any error means the
// configuration must not be used. Validate never mutates the receiver and
// never fills in defaults.
func (c *Config) Validate() []string {
	var errs []string

	if c.ProjectRoot == "" {
		errs = append(errs, errMissingProjectRoot)
	}

	switch {
	case c.labelsNotArray:
		errs = append(errs, errLabelsNotArray)
	case c.Labels == nil:
		errs = append(errs, errNoLabels)
	}

	switch {
	case c.Repository == nil:
		errs = append(errs, errNoRepository)
	case c.Repository.User == "" || c.Repository.Name == "":
		errs = append(errs, errRepositoryIncomplete)
	}

	if c.ClaSignedLabel.IsEmpty() {
		errs = append(errs, errNoClaSignedLabel)
	}

	if c.MergeReadyLabel.IsEmpty() {
		errs = append(errs, errNoMergeReadyLabel)
	}

	if c.GithubAPIMerge == nil {
		errs = append(errs, errNoAPIMergeChoice)
	}

	return errs
}

// ResolveProjectRoot makes ProjectRoot absolute by joining it against the
// directory the configuration was loaded from. It must run exactly once,
// after validation succeeds; the loader takes care of both.
func (c *Config) ResolveProjectRoot(baseDir string) {
	if filepath.IsAbs(c.ProjectRoot) {
		return
	}
	c.ProjectRoot = filepath.Join(baseDir, c.ProjectRoot)
}
