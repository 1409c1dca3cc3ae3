// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Fixture files under test/testdata.
const (
	SearchResultFixture = "search_result.json"
	FlightDetailFixture = "flight_detail.json"
	IPLocationFixture   = "ip_location.json"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t testing.TB, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	testDataPath := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadTestFixture decodes a testdata JSON file into T.
func LoadTestFixture[T any](t testing.TB, filename string) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(LoadTestJSON(t, filename), &v); err != nil {
		t.Fatalf("Failed to decode test file %s: %v", filename, err)
	}
	return v
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
