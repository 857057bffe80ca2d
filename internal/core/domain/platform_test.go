package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Platform
		wantErr  bool
	}{
		{
			name:     "github lowercase",
			input:    "github",
			expected: PlatformGitHub,
		},
		{
			name:     "github mixed case",
			input:    "GitHub",
			expected: PlatformGitHub,
		},
		{
			name:     "gitlab uppercase",
			input:    "GITLAB",
			expected: PlatformGitLab,
		},
		{
			name:    "unknown platform",
			input:   "bitbucket",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlatform(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected Platform
		wantErr  bool
	}{
		{
			name:     "github.com",
			baseURL:  "https://github.com/nbouliol/git-files",
			expected: PlatformGitHub,
		},
		{
			name:     "gitlab.com",
			baseURL:  "https://gitlab.com/nbouliol/git-files",
			expected: PlatformGitLab,
		},
		{
			name:     "github substring anywhere",
			baseURL:  "https://mygithub.example.com/owner/repo",
			expected: PlatformGitHub,
		},
		{
			name: "github wins when both substrings present",
			// contrived, but pins the if/else ordering
			baseURL:  "https://github.gitlab.example.com/owner/repo",
			expected: PlatformGitHub,
		},
		{
			name:    "self-hosted custom domain",
			baseURL: "https://git.example.com/owner/repo",
			wantErr: true,
		},
		{
			name:    "sniffing is case-sensitive",
			baseURL: "https://GITHUB.com/owner/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DetectPlatform(tt.baseURL)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestBlobURL_GitHub(t *testing.T) {
	url := PlatformGitHub.BlobURL("https://github.com/nbouliol/git-files", "master", "readme.md", 0)

	assert.Equal(t, "https://github.com/nbouliol/git-files/blob/master/readme.md", url)
}

func TestBlobURL_GitHubWithLine(t *testing.T) {
	url := PlatformGitHub.BlobURL("https://github.com/nbouliol/git-files", "master", "readme.md", 5)

	assert.Equal(t, "https://github.com/nbouliol/git-files/blob/master/readme.md#L5", url)
}

func TestBlobURL_GitLab(t *testing.T) {
	url := PlatformGitLab.BlobURL("https://gitlab.com/nbouliol/git-files", "master", "readme.md", 0)

	assert.Equal(t, "https://gitlab.com/nbouliol/git-files/-/blob/master/readme.md", url)
}

func TestBlobURL_GitLabWithLine(t *testing.T) {
	url := PlatformGitLab.BlobURL("https://gitlab.com/nbouliol/git-files", "master", "readme.md", 5)

	assert.Equal(t, "https://gitlab.com/nbouliol/git-files/-/blob/master/readme.md#L5", url)
}

func TestBlobURL_CommitRefAndNestedPath(t *testing.T) {
	url := PlatformGitHub.BlobURL(
		"https://github.com/owner/repo",
		"0123456789abcdef0123456789abcdef01234567",
		"internal/core/domain/platform.go",
		42,
	)

	assert.Equal(t,
		"https://github.com/owner/repo/blob/0123456789abcdef0123456789abcdef01234567/internal/core/domain/platform.go#L42",
		url)
}

func TestBlobURL_NegativeLineIgnored(t *testing.T) {
	url := PlatformGitHub.BlobURL("https://github.com/owner/repo", "main", "x.go", -1)

	assert.Equal(t, "https://github.com/owner/repo/blob/main/x.go", url)
}
