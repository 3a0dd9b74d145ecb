package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SchemaVersion is the current export envelope version.
const SchemaVersion = 1

// Envelope wraps a plan document for JSON export. The shape matches
// what external hosts persist, so an exported file can be re-imported
// losslessly.
type Envelope struct {
	SchemaVersion int       `json:"schemaVersion"`
	ExportedAt    time.Time `json:"exportedAt"`
	Data          Document  `json:"data"`
}

// Export writes a plan document to a JSON envelope file.
func Export(path string, doc *Document, now time.Time) error {
	env := Envelope{
		SchemaVersion: SchemaVersion,
		ExportedAt:    now.UTC(),
		Data:          *doc,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling envelope: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}
	return nil
}

// Import reads a JSON envelope file back into a plan document. Any
// schema version up to the current one is accepted.
func Import(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading envelope: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing envelope: %w", err)
	}
	if env.SchemaVersion < 1 || env.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", env.SchemaVersion)
	}
	return &env.Data, nil
}
