package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  error
	}{
		{
			name:     "ssh shorthand",
			raw:      "git@github.com:someone/repo.git",
			expected: "https://github.com/someone/repo",
		},
		{
			name:     "https with .git suffix",
			raw:      "https://github.com/someone/repo.git",
			expected: "https://github.com/someone/repo",
		},
		{
			name:     "gitlab ssh shorthand",
			raw:      "git@gitlab.com:group/project.git",
			expected: "https://gitlab.com/group/project",
		},
		{
			name:    "https without .git suffix",
			raw:     "https://github.com/someone/repo",
			wantErr: ErrCannotDetermineURL,
		},
		{
			name:    "ssh shorthand without .git suffix",
			raw:     "git@github.com:someone/repo",
			wantErr: ErrInvalidRemoteForm,
		},
		{
			name: "scp form without git@ prefix",
			// strips .git but has no scheme, so the http check fails
			raw:     "github.com:someone/repo.git",
			wantErr: ErrInvalidRemoteForm,
		},
		{
			name:    "missing remote",
			raw:     "",
			wantErr: ErrMissingRemote,
		},
		{
			name: "coarse http check accepts xhttpx",
			// known quirk: any substring "http" passes the sanity check
			raw:      "xhttpx.dev/owner/repo.git",
			expected: "xhttpx.dev/owner/repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := NormalizeRemoteURL(tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, base)
		})
	}
}
