package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmitEnvFiles(t *testing.T) {
	root := t.TempDir()

	written, err := EmitEnvFiles(root)
	if err != nil {
		t.Fatalf("EmitEnvFiles() error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("wrote %d files, want 3: %v", len(written), written)
	}

	defaultEnv := readGenerated(t, root, ".env")
	devEnv := readGenerated(t, root, ".env.development")
	prodEnv := readGenerated(t, root, ".env.production")

	if defaultEnv != devEnv {
		t.Error(".env must mirror the development profile")
	}
	assertContains(t, devEnv, "API_URL=https://dev.api.example.com")
	assertContains(t, devEnv, "ENABLE_ANALYTICS=false")
	assertContains(t, prodEnv, "API_URL=https://api.example.com")
	assertContains(t, prodEnv, "ENABLE_ANALYTICS=true")
}

func TestEmitEnvFilesResetsEdits(t *testing.T) {
	root := t.TempDir()

	if _, err := EmitEnvFiles(root); err != nil {
		t.Fatalf("EmitEnvFiles() error: %v", err)
	}
	baseline := readGenerated(t, root, ".env.development")

	edited := filepath.Join(root, ".env.development")
	if err := os.WriteFile(edited, []byte("API_URL=http://localhost:9999\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Env files are always reset to defaults, unlike the script table.
	if _, err := EmitEnvFiles(root); err != nil {
		t.Fatalf("EmitEnvFiles() error: %v", err)
	}
	if got := readGenerated(t, root, ".env.development"); got != baseline {
		t.Error("environment file not reset to generator defaults")
	}
}

func TestParseEnvFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "test.env")
	content := "# comment\n\nAPI_URL=https://api.example.com\nENABLE_ANALYTICS = true\nmalformed line\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ParseEnvFile(path)
	if err != nil {
		t.Fatalf("ParseEnvFile() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0].Key != "API_URL" || entries[0].Value != "https://api.example.com" {
		t.Errorf("entry[0] = %+v", entries[0])
	}
	if entries[1].Key != "ENABLE_ANALYTICS" || entries[1].Value != "true" {
		t.Errorf("entry[1] = %+v, want trimmed key and value", entries[1])
	}
}

func TestEmittedEnvFilesParseBack(t *testing.T) {
	root := t.TempDir()
	if _, err := EmitEnvFiles(root); err != nil {
		t.Fatalf("EmitEnvFiles() error: %v", err)
	}

	for _, ef := range EnvFiles() {
		entries, err := ParseEnvFile(filepath.Join(root, ef.Name))
		if err != nil {
			t.Fatalf("ParseEnvFile(%s) error: %v", ef.Name, err)
		}
		if len(entries) != len(ef.Lines) {
			t.Errorf("%s: parsed %d entries, want %d", ef.Name, len(entries), len(ef.Lines))
		}
	}
}
