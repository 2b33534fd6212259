package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line string
		key  string
		val  string
		ok   bool
	}{
		{"PORT=9090", "PORT", "9090", true},
		{"  PORT = 9090 ", "PORT", "9090", true},
		{`DATABASE_URL="postgres://localhost/app"`, "DATABASE_URL", "postgres://localhost/app", true},
		{"LLM_PROVIDER='openai'", "LLM_PROVIDER", "openai", true},
		{"export STATIC_DIR=./dist", "STATIC_DIR", "./dist", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"no-equals-sign", "", "", false},
		{"=value-without-key", "", "", false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || val != tc.val {
			t.Fatalf("parseEnvLine(%q) = %q, %q, %v; want %q, %q, %v",
				tc.line, key, val, ok, tc.key, tc.val, tc.ok)
		}
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "TEST_DOTENV_KEY=from-file\n# ignored\nexport TEST_DOTENV_EXPORTED=\"yes\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TEST_DOTENV_KEY", "")
	t.Setenv("TEST_DOTENV_EXPORTED", "")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("TEST_DOTENV_KEY"); got != "from-file" {
		t.Fatalf("expected TEST_DOTENV_KEY=from-file, got %q", got)
	}
	if got := os.Getenv("TEST_DOTENV_EXPORTED"); got != "yes" {
		t.Fatalf("expected TEST_DOTENV_EXPORTED=yes, got %q", got)
	}
}
