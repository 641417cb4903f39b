package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitegen-labs/vitegen/internal/generator"
	"github.com/vitegen-labs/vitegen/internal/manifest"
	"github.com/vitegen-labs/vitegen/internal/scaffold"
	"github.com/vitegen-labs/vitegen/internal/toolchain"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unclassified", errors.New("boom"), ExitGeneralError},
		{"invalid name", fmt.Errorf("step: %w", generator.ErrInvalidName), ExitMissingArgument},
		{"bootstrap", fmt.Errorf("step: %w", toolchain.ErrBootstrap), ExitBootstrapFailure},
		{"synthesis", fmt.Errorf("step: %w", scaffold.ErrSynthesis), ExitSynthesisError},
		{"manifest corrupt", fmt.Errorf("step: %w", manifest.ErrCorrupt), ExitManifestCorrupt},
		{"manifest write", fmt.Errorf("step: %w", manifest.ErrWrite), ExitManifestWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestExitCodeNamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for code := ExitSuccess; code <= ExitManifestWrite; code++ {
		name := ExitCodeName(code)
		assert.NotEqual(t, "Unknown", name, "code %d", code)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
