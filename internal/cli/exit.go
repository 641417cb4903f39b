package cli

import (
	"errors"

	"github.com/vitegen-labs/vitegen/internal/generator"
	"github.com/vitegen-labs/vitegen/internal/manifest"
	"github.com/vitegen-labs/vitegen/internal/scaffold"
	"github.com/vitegen-labs/vitegen/internal/toolchain"
)

// Process exit codes, one per error kind.
const (
	// ExitSuccess indicates the run completed.
	ExitSuccess = 0

	// ExitGeneralError indicates an unclassified error.
	ExitGeneralError = 1

	// ExitMissingArgument indicates a missing or invalid project name.
	// Nothing was written when this is returned.
	ExitMissingArgument = 2

	// ExitBootstrapFailure indicates the external bootstrapper failed.
	ExitBootstrapFailure = 3

	// ExitSynthesisError indicates a file write or delete failed.
	ExitSynthesisError = 4

	// ExitManifestCorrupt indicates package.json could not be parsed.
	ExitManifestCorrupt = 5

	// ExitManifestWrite indicates the merged package.json could not be saved.
	ExitManifestWrite = 6
)

// ExitCodeFor maps an error to its process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, generator.ErrInvalidName):
		return ExitMissingArgument
	case errors.Is(err, toolchain.ErrBootstrap):
		return ExitBootstrapFailure
	case errors.Is(err, scaffold.ErrSynthesis):
		return ExitSynthesisError
	case errors.Is(err, manifest.ErrCorrupt):
		return ExitManifestCorrupt
	case errors.Is(err, manifest.ErrWrite):
		return ExitManifestWrite
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of an exit code for diagnostics.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitMissingArgument:
		return "Missing Argument"
	case ExitBootstrapFailure:
		return "Bootstrap Failure"
	case ExitSynthesisError:
		return "Synthesis Error"
	case ExitManifestCorrupt:
		return "Manifest Corrupt"
	case ExitManifestWrite:
		return "Manifest Write Error"
	default:
		return "Unknown"
	}
}
