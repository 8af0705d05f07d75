package store

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/inovacc/macromind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV returns an error from every Get.
type failingKV struct{ KV }

func (failingKV) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRecords_Defaults(t *testing.T) {
	records := NewRecords(openTestKV(t, DriverBolt), nil)

	assert.Empty(t, records.Entries())
	assert.NotNil(t, records.Entries())
	assert.Empty(t, records.SavedFoods())
	assert.Equal(t, model.DefaultGoals(), records.Goals())

	_, ok := records.Theme()
	assert.False(t, ok)
}

func TestRecords_RoundTrip(t *testing.T) {
	for _, driver := range []Driver{DriverBolt, DriverSQLite} {
		t.Run(string(driver), func(t *testing.T) {
			records := NewRecords(openTestKV(t, driver), nil)

			entries := []model.FoodEntry{
				{ID: "a", Name: "Oatmeal", Calories: 350, Protein: 12, Carbs: 60, Fat: 6, Timestamp: 1767600000000},
				{ID: "b", Name: "Coffee", Calories: 5, Timestamp: 1767603600000},
			}
			foods := []model.SavedFood{{ID: "f", Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4}}
			goals := model.DailyGoals{Calories: 1800, Protein: 140, Carbs: 180, Fat: 60}

			require.NoError(t, records.SaveEntries(entries))
			require.NoError(t, records.SaveSavedFoods(foods))
			require.NoError(t, records.SaveGoals(goals))
			require.NoError(t, records.SaveTheme(model.ThemeDark))

			assert.Equal(t, entries, records.Entries())
			assert.Equal(t, foods, records.SavedFoods())
			assert.Equal(t, goals, records.Goals())

			theme, ok := records.Theme()
			assert.True(t, ok)
			assert.Equal(t, model.ThemeDark, theme)
		})
	}
}

func TestRecords_CorruptKeyFallsBackIndependently(t *testing.T) {
	var logs bytes.Buffer

	kv := openTestKV(t, DriverBolt)
	records := NewRecords(kv, testLogger(&logs))

	goals := model.DailyGoals{Calories: 2500, Protein: 180, Carbs: 250, Fat: 80}
	require.NoError(t, records.SaveGoals(goals))
	require.NoError(t, records.SaveSavedFoods([]model.SavedFood{{ID: "x", Name: "Toast"}}))
	require.NoError(t, kv.Put(KeyEntries, []byte(`[{"id": "broken"`)))

	assert.Empty(t, records.Entries())
	assert.Equal(t, goals, records.Goals())
	assert.Len(t, records.SavedFoods(), 1)
	assert.Contains(t, logs.String(), KeyEntries)
}

func TestRecords_InvalidGoalsFallBack(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"null", `null`},
		{"empty object", `{}`},
		{"missing field", `{"calories":1800,"protein":120,"carbs":180}`},
		{"negative calories", `{"calories":-500,"protein":150,"carbs":200,"fat":65}`},
		{"wrong type", `{"calories":"lots","protein":150,"carbs":200,"fat":65}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := openTestKV(t, DriverBolt)
			require.NoError(t, kv.Put(KeyGoals, []byte(tt.payload)))

			assert.Equal(t, model.DefaultGoals(), NewRecords(kv, testLogger(&bytes.Buffer{})).Goals())
		})
	}
}

func TestRecords_ZeroGoalsAreKept(t *testing.T) {
	kv := openTestKV(t, DriverBolt)
	records := NewRecords(kv, nil)

	require.NoError(t, records.SaveGoals(model.DailyGoals{}))
	assert.Equal(t, model.DailyGoals{}, records.Goals())
}

func TestRecords_NullEntries(t *testing.T) {
	kv := openTestKV(t, DriverBolt)
	require.NoError(t, kv.Put(KeyEntries, []byte("null")))

	entries := NewRecords(kv, nil).Entries()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRecords_UnknownTheme(t *testing.T) {
	kv := openTestKV(t, DriverBolt)
	require.NoError(t, kv.Put(KeyTheme, []byte("sepia")))

	_, ok := NewRecords(kv, testLogger(&bytes.Buffer{})).Theme()
	assert.False(t, ok)
}

func TestLoad_ReadErrorReturnsDefault(t *testing.T) {
	var logs bytes.Buffer

	got := Load(failingKV{}, KeyGoals, model.DefaultGoals(), testLogger(&logs))
	assert.Equal(t, model.DefaultGoals(), got)
	assert.Contains(t, logs.String(), "disk on fire")
}
