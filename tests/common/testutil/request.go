//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body decoded into a generic map.
type Mutation func(t *testing.T, m map[string]any)

// RequestMap round-trips v through JSON so tests can send bodies a typed DTO
// cannot express (missing fields, wrong types).
func RequestMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(t, m)
	}
	return m
}

// Set assigns value at a dotted path such as "address.city".
func Set(path string, value any) Mutation {
	return func(t *testing.T, m map[string]any) {
		t.Helper()
		parent, key := walk(t, m, path)
		parent[key] = value
	}
}

// Without deletes the field at a dotted path.
func Without(path string) Mutation {
	return func(t *testing.T, m map[string]any) {
		t.Helper()
		parent, key := walk(t, m, path)
		delete(parent, key)
	}
}

func walk(t *testing.T, m map[string]any, path string) (map[string]any, string) {
	t.Helper()
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		require.Truef(t, ok, "%s: %q is not an object", path, p)
		cur = next
	}
	return cur, parts[len(parts)-1]
}
