package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ringsum/internal/cli"
	"github.com/katalvlaran/ringsum/quest"
	"github.com/stretchr/testify/require"
)

// writeInput stores rows as dir/name.
func writeInput(t *testing.T, dir, name string, rows ...string) {
	t.Helper()
	body := strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestRun_Quest17(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "quest17_1.txt", "121", "2@2", "121")
	writeInput(t, dir, "quest17_2.txt", "11511", "13331", "53@35", "13331", "11511")

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(out, logs, []string{"-data", dir, "-radius", "1", "17", "1"}))
	require.Equal(t, "8\n", out.String())

	out.Reset()
	require.NoError(t, run(out, logs, []string{"-data", dir, "-log-level", "debug", "q17_2"}))
	require.Equal(t, "64\n", out.String())
	require.Contains(t, logs.String(), "Ring step.")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "in-17-1", "121", "2@2", "121")
	cfgPath := filepath.Join(dir, "ringsum.hcl")
	cfg := "data_dir = \"" + filepath.ToSlash(dir) + "\"\nfile_pattern = \"in-%d-%d\"\nradius = 0\n\nlog {\n  format = \"json\"\n}\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(out, logs, []string{"-config", cfgPath, "17", "1"}))
	require.Equal(t, "0\n", out.String())
	require.Contains(t, logs.String(), `"msg":"Solved."`)

	// the flag overrides the file
	out.Reset()
	require.NoError(t, run(out, logs, []string{"-config", cfgPath, "-radius", "2", "17", "1"}))
	require.Equal(t, "12\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")

	out.Reset()
	require.NoError(t, run(out, &bytes.Buffer{}, nil))
	require.Contains(t, out.String(), "Usage:")

	out.Reset()
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-list"}))
	for _, e := range quest.Registry() {
		require.Contains(t, out.String(), e.Name)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"UnknownFlag", []string{"--no-such-flag"}, "flag provided but not defined"},
		{"UnknownEntry", []string{"2", "1"}, "no solver for quest part"},
		{"UnknownName", []string{"q2_1"}, "no solver for quest part"},
		{"NotIntegers", []string{"a", "b"}, "must be integers"},
		{"TooMany", []string{"17", "1", "x"}, "too many arguments"},
		{"BadLevel", []string{"-log-level", "loud", "17", "1"}, "log level"},
		{"MissingConfig", []string{"-config", "/no/such/file.hcl", "17", "1"}, "config:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, &bytes.Buffer{}, tc.args)
			require.Error(t, err)
			exitErr, ok := err.(*cli.ExitError)
			require.True(t, ok, "want *cli.ExitError, got %T", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.msg)
		})
	}
}

func TestRun_SolveError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "quest17_1.txt", "123", "456")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-data", dir, "17", "1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "center cell not found")
	_, isExit := err.(*cli.ExitError)
	require.False(t, isExit)
}
