package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/countdown/internal/copytext"
)

// writeConfig creates a configuration that stores everything under a
// temporary directory
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "countdown.yaml")
	content := "storage:\n  backend: file\n  path: " + filepath.Join(dir, "data") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs a fresh command tree and returns its output
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "countdown", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, expected := range []string{"show", "explain", "catalog", "assumptions", "snapshot", "whatif", "schedule", "validate", "reset", "version"} {
		assert.Contains(t, names, expected)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "countdown")
	assert.Contains(t, out, "snapshot")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "countdown dev"))
}

func TestShow_Console(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Coffees left")
	assert.Contains(t, out, "36,400")
	assert.Contains(t, out, "2,600")
}

func TestShow_FlagsOverrideWithoutSaving(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "show", "--age", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "1,560")

	out, err = execute(t, cfg, "assumptions", "show", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"age": 30`)
}

func TestShow_JSON(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "show", "--format", "json", "--coffees", "4")
	require.NoError(t, err)

	var report struct {
		Counters []struct {
			Kind  string `json:"kind"`
			Value int    `json:"value"`
		} `json:"counters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Counters, 4)
	assert.Equal(t, "coffees", report.Counters[0].Kind)
	assert.Equal(t, 72800, report.Counters[0].Value)
}

func TestShow_Errors(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, cfg, "show", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, err = execute(t, cfg, "show", "--age", "500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")

	_, err = execute(t, cfg, "show", "--tone", "cheerful")
	assert.Error(t, err)
}

func TestShow_OutputDir(t *testing.T) {
	cfg := writeConfig(t)
	dir := t.TempDir()

	out, err := execute(t, cfg, "show", "--format", "md", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "countdown_report_*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Existential Countdown")
}

func TestExplain(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "explain", "sundays")
	require.NoError(t, err)
	assert.Contains(t, out, "Sundays remaining: 2,600")
	assert.Contains(t, out, "(adjustedLifeExpectancyAge - age) × 52")
	assert.Contains(t, out, "Age: 30")
	assert.Contains(t, out, copytext.DetailsFooter)

	out, err = execute(t, cfg, "explain", "sundays", "--unit", "yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "Years remaining: 50")

	_, err = execute(t, cfg, "explain", "mondays")
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "matches-burned")
	assert.Contains(t, out, "40 items")

	out, err = execute(t, cfg, "catalog", "show", "matches-burned")
	require.NoError(t, err)
	assert.Contains(t, out, "Affected by:")
	assert.Contains(t, out, "Base count × factor:")

	_, err = execute(t, cfg, "catalog", "show", "unicorns")
	assert.Error(t, err)
}

func TestAssumptions_SetShowReset(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "assumptions", "set", "--age", "40", "--tone", "cosmic")
	require.NoError(t, err)
	assert.Contains(t, out, copytext.AssumptionsUpdated)

	out, err = execute(t, cfg, "assumptions", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "age: 40")
	assert.Contains(t, out, "tone: cosmic")

	out, err = execute(t, cfg, "explain", "sundays")
	require.NoError(t, err)
	assert.Contains(t, out, "Sundays remaining: 2,080")

	_, err = execute(t, cfg, "assumptions", "set", "--optimism", "11")
	assert.Error(t, err)

	_, err = execute(t, cfg, "assumptions", "reset")
	require.NoError(t, err)
	out, err = execute(t, cfg, "assumptions", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "age: 30")
}

func TestSnapshots(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, copytext.NoSnapshots)

	for i := 0; i < 4; i++ {
		out, err = execute(t, cfg, "snapshot", "save")
		require.NoError(t, err)
		assert.Contains(t, out, "2600 Sundays")
	}
	assert.Contains(t, out, "(3 stored)")

	out, err = execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "•"))

	_, err = execute(t, cfg, "assumptions", "set", "--age", "40")
	require.NoError(t, err)

	out, err = execute(t, cfg, "snapshot", "compare", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, 5, len(strings.Split(strings.TrimSpace(out), "\n")), "header, base and three snapshots")

	out, err = execute(t, cfg, "snapshot", "compare", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = execute(t, cfg, "snapshot", "compare", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, cfg, "snapshot", "clear")
	require.NoError(t, err)
	out, err = execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, copytext.NoSnapshots)
}

func TestSchedule(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "schedule", "--once")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")

	out, err = execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "•"))

	_, err = execute(t, cfg, "schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron spec required")

	_, err = execute(t, cfg, "schedule", "not a spec")
	assert.Error(t, err)
}

func TestResetAll(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, cfg, "snapshot", "save")
	require.NoError(t, err)
	_, err = execute(t, cfg, "assumptions", "set", "--age", "60")
	require.NoError(t, err)

	_, err = execute(t, cfg, "reset")
	require.NoError(t, err)
	out, err := execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, copytext.NoSnapshots, "plain reset keeps snapshots")

	_, err = execute(t, cfg, "reset", "--all")
	require.NoError(t, err)
	out, err = execute(t, cfg, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, copytext.NoSnapshots)
}

func TestValidate(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "", "validate", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("storage:\n  backend: floppy\n"), 0o644))
	_, err = execute(t, "", "validate", bad)
	assert.Error(t, err)

	_, err = execute(t, "", "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWhatIf(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, cfg, "whatif", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "quit_coffee")

	out, err = execute(t, cfg, "whatif", "--with", "quit_coffee,optimist", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(out), "\n")), "header, base and two variants")
	assert.Contains(t, out, "quit_coffee")

	out, err = execute(t, cfg, "whatif", "--apply", "age_by:years=10", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "Fast-forward 10 years")

	_, err = execute(t, cfg, "whatif")
	assert.Error(t, err)

	_, err = execute(t, cfg, "whatif", "--with", "buy_boat")
	assert.Error(t, err)

	_, err = execute(t, cfg, "whatif", "--apply", "age_by:years=500")
	assert.Error(t, err)
}
