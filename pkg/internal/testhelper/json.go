package testhelper

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SerializeToJson marshals value and fails the test on error.
func SerializeToJson(tb testing.TB, value any) string {
	tb.Helper()

	jsonBytes, err := json.Marshal(value)
	require.NoError(tb, err)

	return string(jsonBytes)
}

// JsonToMap decodes a JSON object into a generic map so tests can assert on
// field names independently of the Go types that produced it.
func JsonToMap(tb testing.TB, value string) map[string]any {
	tb.Helper()

	var result map[string]any
	require.NoError(tb, json.Unmarshal([]byte(value), &result))

	return result
}
