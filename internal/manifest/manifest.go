package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the manifest file name inside a project root.
const FileName = "package.json"

// Sentinel errors for the two fatal manifest failure modes. Callers match
// with errors.Is to pick an exit code.
var (
	// ErrCorrupt indicates the manifest could not be parsed. No mutation
	// is attempted when this is returned.
	ErrCorrupt = errors.New("manifest corrupt")

	// ErrWrite indicates the merged manifest could not be persisted.
	ErrWrite = errors.New("manifest write failed")
)

// Document is a package.json parsed into a generic mapping. All keys the
// generator does not understand are carried through a merge untouched.
type Document map[string]any

// Load reads and parses the manifest at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorrupt, path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s holds null, not an object", ErrCorrupt, path)
	}

	return doc, nil
}

// Scripts returns the document's scripts table, creating an empty one if
// absent. The returned map aliases the document.
func (d Document) Scripts() (map[string]any, error) {
	raw, ok := d["scripts"]
	if !ok {
		scripts := map[string]any{}
		d["scripts"] = scripts
		return scripts, nil
	}

	scripts, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: scripts is %T, not an object", ErrCorrupt, raw)
	}
	return scripts, nil
}

// MergeScripts inserts every desired entry whose key is absent from the
// scripts table. Existing values are never replaced, even when they differ
// from the desired command line. It returns the added keys in sorted order.
func (d Document) MergeScripts(desired map[string]string) ([]string, error) {
	scripts, err := d.Scripts()
	if err != nil {
		return nil, err
	}

	var added []string
	for name, commandLine := range desired {
		if _, exists := scripts[name]; exists {
			continue
		}
		scripts[name] = commandLine
		added = append(added, name)
	}
	sort.Strings(added)
	return added, nil
}

// Encode serializes the document with deterministic key order, two-space
// indentation, and a trailing newline. Encoding the same document twice
// yields byte-identical output.
func (d Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encoding: %v", ErrWrite, err)
	}
	return append(data, '\n'), nil
}

// Save writes the document to path atomically: the encoded bytes go to a
// temp file in the same directory, which then replaces the target. A crash
// mid-write never leaves a truncated manifest behind.
func (d Document) Save(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrWrite, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", ErrWrite, tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", ErrWrite, path, err)
	}
	return nil
}

// MergeFile loads the manifest at path, merges the desired scripts, and
// saves it back. Returns the script keys that were added.
func MergeFile(path string, desired map[string]string) ([]string, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	added, err := doc.MergeScripts(desired)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(path); err != nil {
		return nil, err
	}
	return added, nil
}
