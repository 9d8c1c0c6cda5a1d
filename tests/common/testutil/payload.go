//go:build unit || e2e

// Package testutil edits request payloads for validation tables.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a decoded payload.
type Edit func(map[string]any)

// Payload round-trips v through JSON so tests can send shapes the DTO type cannot express.
func Payload(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Set(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Edit {
	return func(m map[string]any) { delete(m, key) }
}
