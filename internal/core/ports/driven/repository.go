package driven

import "context"

// Repository provides read access to a git working tree's metadata.
type Repository interface {
	// Root returns the absolute path of the working tree root.
	Root() string

	// Head resolves HEAD. For a symbolic branch reference it returns
	// the short branch name and isBranch=true; for a detached HEAD it
	// returns the full commit hash and isBranch=false.
	// An unborn HEAD fails with domain.ErrEmptyRepository.
	Head(ctx context.Context) (ref string, isBranch bool, err error)

	// RemoteURL returns the fetch URL of the named remote.
	// A missing remote fails with domain.ErrMissingRemote.
	RemoteURL(ctx context.Context, name string) (string, error)
}

// RepositoryOpener discovers and opens the repository containing dir.
type RepositoryOpener interface {
	// Open walks upward from dir until it finds a repository.
	// Bare repositories fail with domain.ErrBareRepository; a dir
	// outside any repository fails with domain.ErrRepositoryNotFound.
	Open(ctx context.Context, dir string) (Repository, error)
}
