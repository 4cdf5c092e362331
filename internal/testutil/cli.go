package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "Failed to parse JSON output: %s", output)

	return result
}

// JSONData returns the "data" member of a successful JSON response.
func JSONData(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	require.Equal(t, true, result["success"], "expected success response, got %s", output)
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %s", output)
	return data
}

// JSONError returns the "error" member of a failed JSON response.
func JSONError(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	require.NotEqual(t, true, result["success"], "expected error response, got %s", output)
	errData, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %s", output)
	return errData
}
