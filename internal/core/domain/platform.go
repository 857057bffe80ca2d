package domain

import (
	"fmt"
	"strings"
)

// Platform identifies a supported hosting platform.
type Platform string

const (
	// PlatformGitHub renders blobs under /blob/.
	PlatformGitHub Platform = "github"
	// PlatformGitLab renders blobs under /-/blob/.
	PlatformGitLab Platform = "gitlab"
)

// ParsePlatform converts a user-supplied platform name.
// Matching is case-insensitive; anything other than github or gitlab
// fails with ErrInvalidPlatform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "github":
		return PlatformGitHub, nil
	case "gitlab":
		return PlatformGitLab, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPlatform, s)
	}
}

// DetectPlatform guesses the platform from a repository base URL.
// The check is a naive case-sensitive substring match, so self-hosted
// instances need an explicit platform. GitHub wins when a URL somehow
// contains both substrings.
func DetectPlatform(baseURL string) (Platform, error) {
	switch {
	case strings.Contains(baseURL, "github"):
		return PlatformGitHub, nil
	case strings.Contains(baseURL, "gitlab"):
		return PlatformGitLab, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, baseURL)
	}
}

// BlobURL builds the web URL for a file at a given ref.
// ref is a branch name or commit hash, path is slash-separated and
// relative to the repository root. A positive line is appended as a
// #L<line> fragment.
func (p Platform) BlobURL(baseURL, ref, path string, line int) string {
	sep := "/blob/"
	if p == PlatformGitLab {
		sep = "/-/blob/"
	}

	url := baseURL + sep + ref + "/" + path
	if line > 0 {
		url += fmt.Sprintf("#L%d", line)
	}
	return url
}
