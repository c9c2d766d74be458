package glossary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "glossary.json")

	content := `{"облак": "cloud", "възел": "node"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write glossary: %v", err)
	}

	g, missing, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if missing {
		t.Error("Expected missing=false for existing file")
	}
	if g.Len() != 2 {
		t.Errorf("Expected 2 terms, got %d", g.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	g, missing, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}
	if !missing {
		t.Error("Expected missing=true")
	}
	if g.Len() != 0 {
		t.Errorf("Expected empty glossary, got %d terms", g.Len())
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write glossary: %v", err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestApply(t *testing.T) {
	g := New(map[string]string{"облак": "cloud", "възел": "node"})

	got := g.Apply("свържете облак и възел")
	want := "свържете cloud и node"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	g := New(map[string]string{"облак": "cloud"})

	once := g.Apply("облак в облак")
	twice := g.Apply(once)
	if once != twice {
		t.Errorf("Apply not idempotent: once=%q twice=%q", once, twice)
	}
}

func TestApply_LongestTermFirst(t *testing.T) {
	g := New(map[string]string{
		"поток":       "stream",
		"поток данни": "data stream",
	})

	got := g.Apply("поток данни")
	if got != "data stream" {
		t.Errorf("Apply = %q, want %q", got, "data stream")
	}
}

func TestPromptLines(t *testing.T) {
	g := New(map[string]string{"a": "x", "bb": "y"})

	want := "bb -> y\na -> x"
	if got := g.PromptLines(); got != want {
		t.Errorf("PromptLines = %q, want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"pre", "post", "both"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseMode("during"); err == nil {
		t.Error("Expected error for invalid mode")
	}
}
