package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/config"
)

// run executes the CLI with the given args and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowcast.yaml")
	require.NoError(t, config.Save(path, config.Default(2025, 8)))
	return path
}

func TestMonthCommand(t *testing.T) {
	path := writePlan(t)

	out, err := run(t, "month", "--plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Projection for 2025-08")
	assert.Contains(t, out, "End bank:")
	assert.Contains(t, out, "Required starting bank:")
}

func TestHorizonCommand(t *testing.T) {
	path := writePlan(t)

	out, err := run(t, "horizon", "--plan", path, "--months", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-08")
	assert.Contains(t, out, "2025-09")
	assert.Contains(t, out, "2025-10")
}

func TestHorizonCommandRejectsZeroMonths(t *testing.T) {
	path := writePlan(t)

	_, err := run(t, "horizon", "--plan", path, "--months", "0")
	require.Error(t, err)
}

func TestCheckCommandCleanPlan(t *testing.T) {
	path := writePlan(t)

	out, err := run(t, "check", "--plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan is clean.")
}

func TestCheckCommandReportsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowcast.yaml")
	doc := config.Default(2025, 8)
	doc.Liabilities[2].Source = "no-such-card"
	require.NoError(t, config.Save(path, doc))

	out, err := run(t, "check", "--plan", path)
	require.Error(t, err)
	assert.Contains(t, out, "matches no card")
}

func TestCheckCommandToleratesCoercions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowcast.yaml")
	doc := config.Default(2025, 8)
	doc.Liabilities[0].Frequency = "fortnightly"
	require.NoError(t, config.Save(path, doc))

	// Enum coercions print but do not fail the check.
	out, err := run(t, "check", "--plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unknown frequency")
}

func TestExportImportRoundTrip(t *testing.T) {
	path := writePlan(t)
	envPath := filepath.Join(t.TempDir(), "export.json")

	_, err := run(t, "export", "--plan", path, "--out", envPath)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "imported.yaml")
	_, err = run(t, "import", "--plan", target, "--in", envPath)
	require.NoError(t, err)

	doc, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, 2025, doc.Settings.Year)
	assert.Len(t, doc.Cards, 1)
}

func TestMonthCommandMissingPlan(t *testing.T) {
	_, err := run(t, "month", "--plan", filepath.Join(t.TempDir(), "gone.yaml"))
	require.Error(t, err)
}
