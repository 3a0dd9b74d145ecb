package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	doc := Default(2025, 8)
	path := filepath.Join(t.TempDir(), "export.json")

	require.NoError(t, Export(path, doc, time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)))

	got, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Settings, got.Settings)
	assert.Equal(t, doc.Incomes, got.Incomes)
	assert.Equal(t, doc.Liabilities, got.Liabilities)
	assert.Equal(t, doc.Cards, got.Cards)
}

func TestEnvelopeShape(t *testing.T) {
	doc := Default(2025, 8)
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, Export(path, doc, time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "schemaVersion")
	assert.Contains(t, raw, "exportedAt")
	assert.Contains(t, raw, "data")
	assert.Equal(t, "1", string(raw["schemaVersion"]))
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	payload := `{"schemaVersion": 99, "exportedAt": "2025-08-31T12:00:00Z", "data": {}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := Import(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Import(path)
	require.Error(t, err)
}
