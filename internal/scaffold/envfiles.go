package scaffold

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvFile is one environment-scoped variable definition file: a file name
// and its KEY=VALUE lines. No quoting or escaping is modeled.
type EnvFile struct {
	Name  string
	Lines []string
}

// EnvFiles returns the environment file set. The default file mirrors the
// development profile. These are rewritten to generator defaults on every
// run: unlike the script table, local edits do not survive. That asymmetry
// is deliberate and called out in the generated README.
func EnvFiles() []EnvFile {
	development := []string{
		"API_URL=https://dev.api.example.com",
		"ENABLE_ANALYTICS=false",
	}
	production := []string{
		"API_URL=https://api.example.com",
		"ENABLE_ANALYTICS=true",
	}
	return []EnvFile{
		{Name: ".env", Lines: development},
		{Name: ".env.development", Lines: development},
		{Name: ".env.production", Lines: production},
	}
}

// EmitEnvFiles writes the environment file set under root, unconditionally.
func EmitEnvFiles(root string) ([]string, error) {
	var written []string
	for _, ef := range EnvFiles() {
		target := filepath.Join(root, ef.Name)
		content := strings.Join(ef.Lines, "\n") + "\n"
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("%w: writing %s: %v", ErrSynthesis, ef.Name, err)
		}
		written = append(written, ef.Name)
	}
	return written, nil
}

// EnvEntry is a single key-value pair from a .env file.
type EnvEntry struct {
	Key   string
	Value string
}

// ParseEnvFile reads a .env file and returns key-value entries.
// It skips blank lines and lines starting with #.
func ParseEnvFile(path string) ([]EnvEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	var entries []EnvEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, EnvEntry{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}
