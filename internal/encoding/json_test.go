package encoding

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[[]sample]([]byte(`[{"name":"a","value":1.5}]`))
	require.NoError(t, err)
	assert.Equal(t, []sample{{Name: "a", Value: 1.5}}, got)
}

func TestParseJSON_Empty(t *testing.T) {
	_, err := ParseJSON[sample]([]byte("  \n"))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("ParseJSON() error = %v, want ErrEmpty", err)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON[sample]([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sample{Name: "b", Value: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"b","value":2}`, string(data))

	back, err := ParseJSON[sample](data)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "b", Value: 2}, back)
}

func TestWriteFileSecure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.yaml")

	require.NoError(t, WriteFileSecure(path, []byte("x: 1\n")))
	assert.True(t, FileExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)

	if info.Mode().Perm()&0o077 != 0 {
		t.Errorf("file mode = %v, want owner-only", info.Mode().Perm())
	}
}

func TestToJSONIndent(t *testing.T) {
	data, err := ToJSONIndent(sample{Name: "a", Value: 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"value\": 2\n}", string(data))

	_, err = ToJSONIndent(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}
