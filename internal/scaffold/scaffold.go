package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrSynthesis indicates a file write or delete failed. The wrapping error
// names the offending path.
var ErrSynthesis = errors.New("synthesis failed")

// Data holds the template variables available to catalog templates.
type Data struct {
	Name  string // project name, verbatim (e.g., "shop")
	Title string // display title derived from the name (e.g., "Shop")
	Year  int    // current year
}

// NewData creates a Data with derived fields populated.
func NewData(name string) Data {
	title := cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
	return Data{
		Name:  name,
		Title: title,
		Year:  time.Now().Year(),
	}
}

// Result holds the outcome of a synthesis pass.
type Result struct {
	Written []string // files written (AlwaysWrite, or WriteIfAbsent on first run)
	Skipped []string // WriteIfAbsent targets that already existed
	Deleted []string // DeleteIfPresent targets that were actually removed
}

// Synthesize creates the directory set and applies every FileSpec's policy
// under root. Two passes with the same Data over the same tree produce an
// identical final file set for AlwaysWrite and DeleteIfPresent entries.
func Synthesize(root string, specs []FileSpec, data Data) (*Result, error) {
	for _, dir := range Dirs() {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return nil, fmt.Errorf("%w: creating directory %s: %v", ErrSynthesis, dir, err)
		}
	}
	return Apply(root, specs, data)
}

// Apply runs the FileSpecs against root without touching the directory set.
// Parent directories of individual targets are still created on demand.
func Apply(root string, specs []FileSpec, data Data) (*Result, error) {
	result := &Result{}

	for _, spec := range specs {
		target := filepath.Join(root, spec.RelPath)

		switch spec.Policy {
		case DeleteIfPresent:
			err := os.Remove(target)
			if err != nil {
				if os.IsNotExist(err) {
					continue // absence is success
				}
				return result, fmt.Errorf("%w: removing %s: %v", ErrSynthesis, spec.RelPath, err)
			}
			result.Deleted = append(result.Deleted, spec.RelPath)

		case WriteIfAbsent:
			if _, err := os.Stat(target); err == nil {
				result.Skipped = append(result.Skipped, spec.RelPath)
				continue
			}
			if err := writeRendered(target, spec, data); err != nil {
				return result, err
			}
			result.Written = append(result.Written, spec.RelPath)

		case AlwaysWrite:
			if err := writeRendered(target, spec, data); err != nil {
				return result, err
			}
			result.Written = append(result.Written, spec.RelPath)

		default:
			return result, fmt.Errorf("%w: %s has unknown policy %d", ErrSynthesis, spec.RelPath, spec.Policy)
		}
	}

	return result, nil
}

// Render produces the final content of a single catalog entry.
func Render(source string, data Data) ([]byte, error) {
	raw, err := templateFS.ReadFile(path.Join("templates", source))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", source, err)
	}

	tmpl, err := template.New(path.Base(source)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", source, err)
	}
	return buf.Bytes(), nil
}

func writeRendered(target string, spec FileSpec, data Data) error {
	content, err := Render(spec.Source, data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSynthesis, spec.RelPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("%w: creating parent of %s: %v", ErrSynthesis, spec.RelPath, err)
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrSynthesis, spec.RelPath, err)
	}
	return nil
}
