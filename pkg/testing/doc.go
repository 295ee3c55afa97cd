// Package testing provides test helpers for pathkit.
//
// # Golden Files
//
// Compare generated text against a golden file on disk:
//
//	pathtest.Golden(doc).MatchesFile(t, "testdata/heart.svg")
//
// Update goldens with:
//
//	PATHKIT_UPDATE_GOLDEN=1 go test ./...
//
// # Deterministic Time
//
// FakeClock drives animation code without real delays:
//
//	clock := pathtest.NewFakeClock()
//	clock.Advance(500 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pathtest "github.com/go-drift/pathkit/pkg/testing"
package testing
