package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigEditPathPrefersFlag(t *testing.T) {
	path, err := resolveConfigEditPath("./custom.yaml", "/home/x/.hrformatter.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "./custom.yaml" {
		t.Fatalf("expected flag value, got %s", path)
	}
}

func TestResolveConfigEditPathFallsBackToUsedFile(t *testing.T) {
	path, err := resolveConfigEditPath("", "/home/x/.hrformatter.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/home/x/.hrformatter.yaml" {
		t.Fatalf("expected config-in-use value, got %s", path)
	}
}

func TestResolveConfigEditPathDefaultsToHome(t *testing.T) {
	path, err := resolveConfigEditPath("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".hrformatter.yaml") {
		t.Fatalf("expected home default, got %s", path)
	}
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".hrformatter.yaml")

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created config: %v", err)
	}
	if !strings.Contains(string(content), "filename_prefix") {
		t.Fatalf("template content missing expected keys: %s", content)
	}

	created, err = ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if created {
		t.Fatal("expected existing file to be left alone")
	}
}

func TestResolveEditorValue(t *testing.T) {
	if got := resolveEditorValue("code --wait", "nano"); got != "code --wait" {
		t.Fatalf("expected VISUAL to win, got %s", got)
	}
	if got := resolveEditorValue("", "nano"); got != "nano" {
		t.Fatalf("expected EDITOR fallback, got %s", got)
	}
	if got := resolveEditorValue("", ""); got != "vi" {
		t.Fatalf("expected vi default, got %s", got)
	}
}

func TestBuildEditorCommand(t *testing.T) {
	cmd, err := buildEditorCommand("code --wait", "/tmp/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "--wait" || cmd.Args[2] != "/tmp/config.yaml" {
		t.Fatalf("unexpected command args: %v", cmd.Args)
	}

	if _, err := buildEditorCommand("   ", "/tmp/config.yaml"); err == nil {
		t.Fatal("expected error for empty editor value")
	}
}
