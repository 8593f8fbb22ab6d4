// Package internal has rendering and report I/O logic for repo-doctor.
// The core package produces a schema.RepositoryHealth value; everything in
// here only consumes it.
package internal
