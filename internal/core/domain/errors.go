package domain

import "errors"

// Domain errors represent permalink resolution failures.
// Every failure is terminal; nothing is retried.
var (
	// ErrRepositoryNotFound indicates no git repository contains the
	// starting directory or any of its ancestors.
	ErrRepositoryNotFound = errors.New("not a git repository")

	// ErrBareRepository indicates the repository has no working tree.
	ErrBareRepository = errors.New("cannot use a bare repository")

	// ErrEmptyRepository indicates HEAD is unborn (no commits yet).
	ErrEmptyRepository = errors.New("cannot use an empty repository")

	// ErrRefResolution indicates HEAD could not be resolved to a
	// branch name or a commit hash.
	ErrRefResolution = errors.New("cannot resolve HEAD to a branch or commit")

	// ErrPathOutsideWorkTree indicates the target file does not live
	// under the repository root.
	ErrPathOutsideWorkTree = errors.New("file is outside the working tree")

	// ErrMissingRemote indicates the repository has no usable remote.
	ErrMissingRemote = errors.New("repository has no remote url")

	// ErrInvalidRemoteForm indicates the remote URL is malformed.
	ErrInvalidRemoteForm = errors.New("invalid remote form")

	// ErrCannotDetermineURL indicates the remote URL matches no known shape.
	ErrCannotDetermineURL = errors.New("cannot determine repository url")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrUnknownPlatform indicates platform sniffing matched no known host.
	ErrUnknownPlatform = errors.New("unknown platform, try passing --platform")
)
