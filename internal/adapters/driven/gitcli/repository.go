// Package gitcli implements the repository port by shelling out to the
// git binary. No repository state is cached; every method asks git.
package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/permalink-cli/permalink/internal/core/domain"
	"github.com/permalink-cli/permalink/internal/core/ports/driven"
	"github.com/permalink-cli/permalink/internal/logger"
)

// Ensure the adapter implements the ports.
var (
	_ driven.Repository       = (*Repository)(nil)
	_ driven.RepositoryOpener = (*Opener)(nil)
)

// Opener discovers repositories with git rev-parse.
type Opener struct{}

// NewOpener creates a git CLI backed repository opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Repository is a working tree rooted at root.
type Repository struct {
	root string
}

// Open discovers the repository containing dir. git itself walks
// ancestor directories, so opening from a subdirectory works.
func (o *Opener) Open(ctx context.Context, dir string) (driven.Repository, error) {
	bare, err := git(ctx, dir, "rev-parse", "--is-bare-repository")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, dir)
	}
	if bare == "true" {
		return nil, domain.ErrBareRepository
	}

	root, err := git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, dir)
	}
	return &Repository{root: root}, nil
}

// Root returns the absolute working tree path.
func (r *Repository) Root() string {
	return r.root
}

// Head resolves HEAD to a short branch name or a full commit hash.
func (r *Repository) Head(ctx context.Context) (string, bool, error) {
	branch, err := git(ctx, r.root, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err == nil {
		// A symbolic HEAD on an unborn branch has no commit behind it.
		if _, err := git(ctx, r.root, "rev-parse", "--verify", "--quiet", "HEAD^{commit}"); err != nil {
			return "", false, domain.ErrEmptyRepository
		}
		return branch, true, nil
	}

	hash, err := git(ctx, r.root, "rev-parse", "--verify", "HEAD^{commit}")
	if err != nil {
		return "", false, domain.ErrRefResolution
	}
	return hash, false, nil
}

// RemoteURL returns the fetch URL of the named remote.
func (r *Repository) RemoteURL(ctx context.Context, name string) (string, error) {
	url, err := git(ctx, r.root, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("%w: no remote %q", domain.ErrMissingRemote, name)
	}
	return url, nil
}

// git runs a git subcommand in dir and returns trimmed stdout.
func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		logger.Debug("git %s: %v (%s)",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
