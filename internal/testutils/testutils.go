package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/ecoshare/internal/config"
)

// ConfigForTests reads the .env.test file at the project root and returns the
// configuration it describes, with overrides applied on top. The process environment
// is not consulted, so tests do not depend on the developer's shell.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(ProjectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range overrides {
		env[key] = value
	}

	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}

// ProjectRoot finds the directory holding go.mod, starting from the working directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	path, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
