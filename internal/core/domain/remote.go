package domain

import (
	"fmt"
	"strings"
)

// NormalizeRemoteURL converts a raw git remote URL into the https base
// URL of the repository's web UI:
//
//	git@github.com:owner/repo.git     -> https://github.com/owner/repo
//	https://github.com/owner/repo.git -> https://github.com/owner/repo
//
// An empty input means the repository has no usable remote. The final
// substring check is deliberately coarse and preserved as-is for
// compatibility with existing behaviour.
func NormalizeRemoteURL(raw string) (string, error) {
	if raw == "" {
		return "", ErrMissingRemote
	}

	var base string
	switch {
	case strings.HasPrefix(raw, "git@"):
		// ssh shorthand
		trimmed := strings.TrimPrefix(raw, "git@")
		if !strings.HasSuffix(trimmed, ".git") {
			return "", fmt.Errorf("%w: %s", ErrInvalidRemoteForm, raw)
		}
		trimmed = strings.TrimSuffix(trimmed, ".git")
		base = "https://" + strings.ReplaceAll(trimmed, ":", "/")
	case strings.HasSuffix(raw, ".git"):
		base = strings.TrimSuffix(raw, ".git")
	default:
		return "", fmt.Errorf("%w: %s", ErrCannotDetermineURL, raw)
	}

	if !strings.Contains(base, "http") {
		return "", fmt.Errorf("%w: %s", ErrInvalidRemoteForm, raw)
	}
	return base, nil
}
