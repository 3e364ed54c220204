package git_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caretaking/auto-merge/pkg/config"
	autogit "github.com/caretaking/auto-merge/pkg/git"
	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initTestRepo creates a repository with two commits and returns the
// directory, the underlying go-git repository and the two commit hashes
// (first is the parent of second).
func initTestRepo(t *testing.T) (string, *gogit.Repository, plumbing.Hash, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	first := commitFile(t, wt, dir, "a.txt", "one")
	second := commitFile(t, wt, dir, "a.txt", "two")
	return dir, repo, first, second
}

func commitFile(t *testing.T, wt *gogit.Worktree, dir, name, content string) plumbing.Hash {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Add: %v", err)
	}
	hash, err := wt.Commit("commit "+content, &gogit.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash
}

func setBranch(t *testing.T, repo *gogit.Repository, name string, hash plumbing.Hash) {
	t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	if err := repo.Storer.SetReference(ref); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
}

func TestOpenRepository(t *testing.T) {
	dir, _, _, _ := initTestRepo(t)

	if _, err := autogit.OpenRepository(dir); err != nil {
		t.Fatalf("OpenRepository() error: %v", err)
	}

	if _, err := autogit.OpenRepository(t.TempDir()); err == nil {
		t.Fatal("OpenRepository() = nil error for a non-repository directory")
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    autogit.Platform
		wantErr bool
	}{
		{"github https", "https://github.com/acme/widgets.git", autogit.PlatformGitHub, false},
		{"github ssh", "git@github.com:acme/widgets.git", autogit.PlatformGitHub, false},
		{"gitlab https", "https://gitlab.com/acme/widgets.git", autogit.PlatformGitLab, false},
		{"self-hosted gitlab", "https://gitlab.example.org/acme/widgets.git", autogit.PlatformGitLab, false},
		{"unknown host", "https://example.com/acme/widgets.git", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, repo, _, _ := initTestRepo(t)
			_, err := repo.CreateRemote(&gitcfg.RemoteConfig{Name: "origin", URLs: []string{tt.url}})
			if err != nil {
				t.Fatalf("CreateRemote: %v", err)
			}

			r, err := autogit.OpenRepository(dir)
			if err != nil {
				t.Fatalf("OpenRepository: %v", err)
			}

			got, err := r.DetectPlatform()
			if tt.wantErr {
				if err == nil {
					t.Fatal("DetectPlatform() = nil error, want detection failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectPlatform() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectPlatform_NoOrigin(t *testing.T) {
	dir, _, _, _ := initTestRepo(t)
	r, err := autogit.OpenRepository(dir)
	if err != nil {
		t.Fatalf("OpenRepository: %v", err)
	}
	if _, err := r.DetectPlatform(); err == nil {
		t.Fatal("DetectPlatform() = nil error without an origin remote")
	}
}

func TestRemoteRepoPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https with git suffix", "https://github.com/acme/widgets.git", "acme/widgets"},
		{"https without suffix", "https://github.com/acme/widgets", "acme/widgets"},
		{"ssh colon", "git@gitlab.com:acme/widgets.git", "acme/widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, repo, _, _ := initTestRepo(t)
			_, err := repo.CreateRemote(&gitcfg.RemoteConfig{Name: "origin", URLs: []string{tt.url}})
			if err != nil {
				t.Fatalf("CreateRemote: %v", err)
			}

			r, err := autogit.OpenRepository(dir)
			if err != nil {
				t.Fatalf("OpenRepository: %v", err)
			}
			got, err := r.RemoteRepoPath("origin")
			if err != nil {
				t.Fatalf("RemoteRepoPath() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RemoteRepoPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpstreamURL(t *testing.T) {
	tests := []struct {
		name     string
		platform autogit.Platform
		repo     *config.Repository
		want     string
	}{
		{
			name:     "github https",
			platform: autogit.PlatformGitHub,
			repo:     &config.Repository{User: "acme", Name: "widgets"},
			want:     "https://github.com/acme/widgets.git",
		},
		{
			name:     "github ssh",
			platform: autogit.PlatformGitHub,
			repo:     &config.Repository{User: "acme", Name: "widgets", UseSSH: true},
			want:     "git@github.com:acme/widgets.git",
		},
		{
			name:     "gitlab https",
			platform: autogit.PlatformGitLab,
			repo:     &config.Repository{User: "acme", Name: "widgets"},
			want:     "https://gitlab.com/acme/widgets.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := autogit.UpstreamURL(tt.platform, tt.repo)
			if err != nil {
				t.Fatalf("UpstreamURL() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("UpstreamURL() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("nil repository", func(t *testing.T) {
		if _, err := autogit.UpstreamURL(autogit.PlatformGitHub, nil); err == nil {
			t.Fatal("UpstreamURL(nil) = nil error, want missing repository error")
		}
	})
}

func TestVerifyBaseCommits(t *testing.T) {
	dir, repo, first, second := initTestRepo(t)
	setBranch(t, repo, "release", second)
	setBranch(t, repo, "stale", first)

	r, err := autogit.OpenRepository(dir)
	if err != nil {
		t.Fatalf("OpenRepository: %v", err)
	}

	t.Run("branch contains required base", func(t *testing.T) {
		required := map[string]string{"release": first.String()}
		if err := r.VerifyBaseCommits(required, []string{"release"}); err != nil {
			t.Errorf("VerifyBaseCommits() error: %v", err)
		}
	})

	t.Run("branch head equals required base", func(t *testing.T) {
		required := map[string]string{"release": second.String()}
		if err := r.VerifyBaseCommits(required, []string{"release"}); err != nil {
			t.Errorf("VerifyBaseCommits() error: %v", err)
		}
	})

	t.Run("branch missing required base", func(t *testing.T) {
		required := map[string]string{"stale": second.String()}
		err := r.VerifyBaseCommits(required, []string{"stale"})
		if !errors.Is(err, autogit.ErrBaseCommitMissing) {
			t.Fatalf("VerifyBaseCommits() error = %v, want ErrBaseCommitMissing", err)
		}
	})

	t.Run("unconstrained branch is skipped", func(t *testing.T) {
		required := map[string]string{"release": first.String()}
		if err := r.VerifyBaseCommits(required, []string{"stale"}); err != nil {
			t.Errorf("VerifyBaseCommits() error: %v", err)
		}
	})

	t.Run("no constraints at all", func(t *testing.T) {
		if err := r.VerifyBaseCommits(nil, []string{"release", "stale"}); err != nil {
			t.Errorf("VerifyBaseCommits() error: %v", err)
		}
	})

	t.Run("unknown branch", func(t *testing.T) {
		required := map[string]string{"ghost": first.String()}
		if err := r.VerifyBaseCommits(required, []string{"ghost"}); err == nil {
			t.Fatal("VerifyBaseCommits() = nil error for unknown branch")
		}
	})
}
