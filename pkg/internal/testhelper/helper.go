// Package testhelper contains shared testing utilities for tests
// throughout the rest of the project.
package testhelper

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
	"go.uber.org/goleak"
)

func Logger(tb testing.TB) *slog.Logger {
	tb.Helper()

	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return NewLogger(tb, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return NewLogger(tb, nil)
}

func LoggerWarn(tb testing.TB) *slog.Logger {
	tb.Helper()
	return NewLogger(tb, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// WrapTestMain performs common setup and teardown tasks for all packages.
// It loads the project .env file on setup and checks for goroutine leaks on teardown.
func WrapTestMain(m *testing.M) {
	err := loadEnvFile()
	if err != nil {
		panic(err)
	}

	status := m.Run()

	if status == 0 {
		if err := goleak.Find(); err != nil {
			fmt.Fprintf(os.Stderr, "goleak: Errors on successful test run: %v\n", err)
			status = 1
		}
	}

	os.Exit(status)
}

func loadEnvFile() error {
	// Start from the directory of the test file
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)

	for {
		envPath := filepath.Join(basepath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		// go.mod marks the project root
		if _, err := os.Stat(filepath.Join(basepath, "go.mod")); err == nil {
			return nil
		}

		parent := filepath.Dir(basepath)
		if parent == basepath {
			return nil
		}
		basepath = parent
	}
}
