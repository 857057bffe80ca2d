// Package domain contains the pure permalink logic: platform selection,
// remote URL normalization, and blob URL construction.
//
// Nothing in this package performs I/O. Repository state (HEAD, remotes,
// the working tree) is read by adapters and handed in as plain strings.
package domain
