// Package services contains the orchestration layer: it gathers
// repository state through the driven ports and feeds it to the pure
// domain logic.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/permalink-cli/permalink/internal/core/domain"
	"github.com/permalink-cli/permalink/internal/core/ports/driven"
	"github.com/permalink-cli/permalink/internal/logger"
)

// Request carries everything needed to resolve one permalink.
type Request struct {
	// File is the target path, absolute or relative to the process
	// working directory.
	File string
	// Dir is where repository discovery starts. Empty means ".".
	Dir string
	// Line is a 1-based line number; values < 1 mean no line anchor.
	Line int
	// Platform forces a platform instead of sniffing the remote URL.
	Platform domain.Platform
	// RemoteURL overrides remote lookup. It is used verbatim, without
	// normalization.
	RemoteURL string
	// Remote is the remote to read the URL from. Empty means "origin".
	Remote string
}

// Permalink resolves requests into hosting-platform blob URLs.
type Permalink struct {
	opener driven.RepositoryOpener
}

// NewPermalink creates a permalink service backed by the given opener.
func NewPermalink(opener driven.RepositoryOpener) *Permalink {
	return &Permalink{opener: opener}
}

// Resolve turns a request into a blob URL.
func (s *Permalink) Resolve(ctx context.Context, req Request) (string, error) {
	dir := req.Dir
	if dir == "" {
		dir = "."
	}

	repo, err := s.opener.Open(ctx, dir)
	if err != nil {
		return "", err
	}
	logger.Debug("working tree root: %s", repo.Root())

	ref, isBranch, err := repo.Head(ctx)
	if err != nil {
		return "", err
	}
	if isBranch {
		logger.Debug("HEAD is branch %q", ref)
	} else {
		logger.Debug("HEAD is detached at %s", ref)
	}

	rel, err := relativeToRoot(repo.Root(), req.File)
	if err != nil {
		return "", err
	}
	logger.Debug("repository path: %s", rel)

	base := req.RemoteURL
	if base == "" {
		raw, err := repo.RemoteURL(ctx, remoteName(req.Remote))
		if err != nil {
			return "", err
		}
		base, err = domain.NormalizeRemoteURL(raw)
		if err != nil {
			return "", err
		}
		logger.Debug("normalized remote url: %s", base)
	}

	platform := req.Platform
	if platform == "" {
		platform, err = domain.DetectPlatform(base)
		if err != nil {
			return "", err
		}
		logger.Debug("detected platform: %s", platform)
	}

	return platform.BlobURL(base, ref, rel, req.Line), nil
}

// relativeToRoot canonicalizes file and strips the working tree prefix,
// returning a slash-separated repository path.
func relativeToRoot(root, file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	// Resolve symlinks on both sides so the prefix strip works when
	// the tree is reached through a link (e.g. /tmp on macOS).
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	canonRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(canonRoot, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", domain.ErrPathOutsideWorkTree, file)
	}
	return filepath.ToSlash(rel), nil
}

func remoteName(name string) string {
	if name == "" {
		return "origin"
	}
	return name
}
