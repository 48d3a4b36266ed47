package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/finreport/internal/categorize"
	"github.com/cleared-dev/finreport/internal/commands"
	"github.com/cleared-dev/finreport/internal/config"
)

// runFinreport executes the CLI in-process and returns stdout and stderr.
func runFinreport(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func initProject(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runFinreport(t, append([]string{"init", dir}, extra...)...)
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initProject(t)

	for _, d := range []string{"rules", "logs", "reports", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "import/")
}

func TestInit_Config(t *testing.T) {
	dir := initProject(t)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_Rules(t *testing.T) {
	dir := initProject(t)

	rules, err := categorize.LoadRules(filepath.Join(dir, categorize.RulesFile))
	require.NoError(t, err)
	assert.Equal(t, categorize.DefaultRules(), rules)
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir := initProject(t)
	_, _, err := runFinreport(t, "init", dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestInit_Git(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	out, _, err := runFinreport(t, "init", dir, "--git")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized finreport project at "+dir)

	ls := exec.Command("git", "ls-files")
	ls.Dir = dir
	files, err := ls.Output()
	require.NoError(t, err)
	assert.Contains(t, string(files), config.FileName)
	assert.Contains(t, string(files), categorize.RulesFile)
}

func TestVersion(t *testing.T) {
	out, _, err := runFinreport(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none")
}
