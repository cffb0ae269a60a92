package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	content := "SERVER_ADDRESS=127.0.0.1:9000\nGO_ENV=development\nINTEREST_SCHEDULE=@daily\n"
	if err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600); err != nil {
		t.Fatalf("os.WriteFile returned error: %v", err)
	}

	t.Setenv("LOG_LEVEL", "debug")

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", dir, err)
	}

	want := Config{
		ServerAddress:    "127.0.0.1:9000",
		Environment:      "development",
		LogLevel:         "debug",
		InterestSchedule: "@daily",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("SERVER_ADDRESS", "localhost:7000")

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", dir, err)
	}

	want := Config{
		ServerAddress: "localhost:7000",
		Environment:   "production",
		LogLevel:      "info",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}
