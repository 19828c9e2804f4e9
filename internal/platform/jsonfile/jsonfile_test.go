package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")
	want := []doc{{Name: "a", Tags: []string{"x", "y"}, Count: 2}, {Name: "b"}}

	require.NoError(t, Write(path, want))

	var got []doc
	require.NoError(t, Read(path, &got))
	assert.Equal(t, want, got)
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, Write(path, []doc{{Name: "old"}, {Name: "older"}}))
	require.NoError(t, Write(path, []doc{{Name: "new"}}))

	var got []doc
	require.NoError(t, Read(path, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)
}

func TestReadMissingFile(t *testing.T) {
	var got []doc
	err := Read(filepath.Join(t.TempDir(), "absent.json"), &got)
	require.Error(t, err)
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	var got []doc
	require.Error(t, Read(path, &got))
}
