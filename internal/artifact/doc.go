// Package artifact keeps job outputs alive while the result view shows them.
//
// Each artifact is backed by a temporary file and exposed through a file://
// URI, the desktop stand-in for a revocable object URL. Revoking an artifact
// deletes its file; the URI is dead afterwards.
package artifact
