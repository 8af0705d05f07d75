package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/macromind/internal/config"
	"github.com/inovacc/macromind/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmdEnv runs commands against its own data directory.
type cmdEnv struct {
	t   *testing.T
	dir string
}

func newCmdEnv(t *testing.T) *cmdEnv {
	t.Helper()

	for _, name := range []string{"MACROMIND_ESTIMATOR_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "API_KEY"} {
		t.Setenv(name, "")
	}

	t.Cleanup(func() {
		resetCommandState()
		slog.SetDefault(slog.New(slog.DiscardHandler))
	})

	return &cmdEnv{t: t, dir: t.TempDir()}
}

// resetCommandState undoes what a previous Execute left behind in the
// package-level command tree.
func resetCommandState() {
	closeLog()

	appCfg, appLogger = nil, nil
	cfgFile = ""
	v = config.New()

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}

		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)

		for _, sub := range c.Commands() {
			walk(sub)
		}
	}

	walk(rootCmd)
}

func (e *cmdEnv) run(stdin string, args ...string) (string, string, error) {
	e.t.Helper()

	resetCommandState()

	var stdout, stderr bytes.Buffer

	rootCmd.SetArgs(append(args, "--data-dir", e.dir, "--config", filepath.Join(e.dir, config.FileName)))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	closeLog()

	return stdout.String(), stderr.String(), err
}

func (e *cmdEnv) mustRun(args ...string) string {
	e.t.Helper()

	out, stderr, err := e.run("", args...)
	require.NoError(e.t, err, stderr)

	return out
}

func (e *cmdEnv) day() dayReport {
	e.t.Helper()

	var report dayReport
	require.NoError(e.t, json.Unmarshal([]byte(e.mustRun("log", "--json")), &report))

	return report
}

func TestAddCmd_RejectsConflictingInput(t *testing.T) {
	env := newCmdEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"description with manual values", []string{"add", "toast", "--name", "Toast", "--calories", "90"}, "either a description"},
		{"favorite with description", []string{"add", "toast", "--favorite", "toast"}, "--favorite cannot be combined"},
		{"nothing to add", []string{"add"}, "describe the food"},
		{"missing calories", []string{"add", "--name", "Toast"}, "calories"},
		{"future date", []string{"add", "--name", "Toast", "--calories", "90", "--date", "2999-01-01"}, "in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.run("", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.Empty(t, env.day().Entries)
}

func TestAddCmd_WithoutAPIKeyPointsToManualEntry(t *testing.T) {
	env := newCmdEnv(t)

	_, _, err := env.run("", "add", "two eggs and toast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name/--calories")
	assert.Empty(t, env.day().Entries)
}

func TestAddCmd_SaveReportsDuplicateFavorite(t *testing.T) {
	env := newCmdEnv(t)

	out := env.mustRun("add", "--name", "Banana", "--calories", "105", "--carbs", "27", "--save")
	assert.Equal(t, "Added Banana (105 kcal)\n", out)

	out, stderr, err := env.run("", "add", "--name", "banana", "--calories", "100", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Added banana")
	assert.Contains(t, stderr, "banana is already in your favorites")

	var favorites []model.SavedFood
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("favorites", "--json")), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, 105.0, favorites[0].Calories)

	assert.Len(t, env.day().Entries, 2)

	env.mustRun("add", "--favorite", "BANANA")
	assert.Len(t, env.day().Entries, 3)
}

func TestClearCmd_NeedsConfirmation(t *testing.T) {
	if isTerminal(os.Stdin) {
		t.Skip("stdin is a terminal")
	}

	env := newCmdEnv(t)
	env.mustRun("add", "--name", "Toast", "--calories", "90")

	_, _, err := env.run("y\n", "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass --yes")
	assert.Len(t, env.day().Entries, 1)

	out := env.mustRun("clear", "-y")
	assert.Equal(t, "Removed 1 entries\n", out)
	assert.Empty(t, env.day().Entries)
}

func TestGoalsCmd_PartialUpdate(t *testing.T) {
	env := newCmdEnv(t)

	out := env.mustRun("goals", "--calories", "1800")
	assert.Contains(t, out, "Calories  1,800 kcal")
	assert.Contains(t, out, "Protein   150g")

	var goals model.DailyGoals
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("goals", "--json", "--fat", "55")), &goals))
	assert.Equal(t, model.DailyGoals{Calories: 1800, Protein: 150, Carbs: 200, Fat: 55}, goals)

	_, _, err := env.run("", "goals", "--protein=-5")
	require.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(env.mustRun("goals", "--json")), &goals))
	assert.Equal(t, 150.0, goals.Protein, "a rejected update changes nothing")

	require.NoError(t, json.Unmarshal([]byte(env.mustRun("goals", "--reset", "--json")), &goals))
	assert.Equal(t, model.DefaultGoals(), goals)
}

func TestDeleteCmd_ByIDPrefix(t *testing.T) {
	env := newCmdEnv(t)

	var entry model.FoodEntry
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("add", "--name", "Apple", "--calories", "95", "--json")), &entry))
	env.mustRun("add", "--name", "Pear", "--calories", "100")

	out := env.mustRun("delete", shortID(entry.ID))
	assert.Equal(t, "Deleted Apple\n", out)

	entries := env.day().Entries
	require.Len(t, entries, 1)
	assert.Equal(t, "Pear", entries[0].Name)
}
