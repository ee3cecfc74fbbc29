package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/search_index.js"

var commands = []string{"add", "list", "search", "show", "delete", "check", "export", "ask"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")

	_, statErr := os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(statErr), "help should not create the database")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

// run executes the CLI against the database at dbPath.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := filepath.Join(dir, "docindex.db")

	stdout, _, err := run(t, db, "add", "gridkit", fixture)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Added collection "gridkit"`)
	assert.Contains(t, stdout, "Stored 7 entries")

	stdout, _, err = run(t, db, "add", "gridkit", fixture)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Collection "gridkit" unchanged (7 entries)`)

	bad := filepath.Join(dir, "bad.js")
	require.NoError(t, os.WriteFile(bad, []byte(`{"docs":[{"location":1}]}`), 0644))
	_, stderr, err := run(t, db, "add", "gridkit", bad, "--force")
	require.Error(t, err)
	assert.Contains(t, stderr, `field "location" is not a string`)

	stdout, _, err = run(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gridkit  7 entries  "+fixture)

	stdout, _, err = run(t, db, "search", "gridkit", "CARRYING capacity")
	require.NoError(t, err)
	assert.Equal(t, "type      #Gridkit.LogisticGrowth  Gridkit.LogisticGrowth\n", stdout)

	stdout, _, err = run(t, db, "search", "gridkit", "rules", "--category", "page")
	require.NoError(t, err)
	assert.Equal(t, "page      example/#  Examples\n", stdout)

	stdout, _, err = run(t, db, "show", "gridkit", "#Gridkit.step!")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Gridkit.step! (#Gridkit.step!)")
	assert.Contains(t, stdout, "Advance the grid by one timestep.")

	_, stderr, err = run(t, db, "show", "gridkit", "#missing")
	require.Error(t, err)
	assert.Contains(t, stderr, `no entry at "#missing"`)

	out := filepath.Join(dir, "export")
	stdout, _, err = run(t, db, "export", "gridkit", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 7 entries")
	_, err = os.Stat(filepath.Join(out, "gridkit", "index.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "gridkit", "example", "index.md"))
	require.NoError(t, err)

	stdout, _, err = run(t, db, "delete", "gridkit", "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Deleted collection "gridkit"`)

	stdout, _, err = run(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No collections found")
}

func TestMain_Run_CheckDoesNotOpenDatabase(t *testing.T) {
	t.Parallel()

	db := filepath.Join(t.TempDir(), "docindex.db")

	stdout, _, err := run(t, db, "check", fixture)

	require.NoError(t, err)
	assert.Equal(t, "ok    "+fixture+": 7 entries (function=1, module=1, page=2, section=2, type=1)\n", stdout)
	_, statErr := os.Stat(db)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_AskRequiresAPIKey(t *testing.T) {
	// Not parallel: modifies the environment.
	t.Setenv("GEMINI_API_KEY", "")

	db := filepath.Join(t.TempDir(), "docindex.db")

	_, stderr, err := run(t, db, "ask", "gridkit", "what is a grid?")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY not set")
	assert.Contains(t, stderr, "GEMINI_API_KEY")
}
