package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Golden wraps generated text for comparison against a file on disk.
type Golden string

// MatchesFile compares the text against a golden file. On mismatch it
// reports a diff and instructions for updating. When PATHKIT_UPDATE_GOLDEN=1
// is set, the file is silently rewritten instead.
func (g Golden) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("PATHKIT_UPDATE_GOLDEN") == "1" {
		if err := g.UpdateFile(path); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file missing: %s\n\nTo create: PATHKIT_UPDATE_GOLDEN=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load golden file: %v", err)
		return
	}

	if diff := g.Diff(Golden(expected)); diff != "" {
		t.Errorf("golden file mismatch: %s\n%s\n\nTo update: PATHKIT_UPDATE_GOLDEN=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes the text to the given path, creating directories
// as needed.
func (g Golden) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(g), 0o644)
}

// Diff returns a line-oriented diff between this text and other. Returns
// empty string if equal.
func (g Golden) Diff(other Golden) string {
	if g == other {
		return ""
	}
	return unifiedDiff(string(other), string(g))
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := len(expectedLines)
	if len(actualLines) > maxLen {
		maxLen = len(actualLines)
	}

	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
