// Package cli wires the cobra command tree: the root scaffolding run plus
// the version and doctor subcommands, and the mapping from error kinds to
// process exit codes.
package cli
