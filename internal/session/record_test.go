package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempRecord(t *testing.T) *RecordFile {
	t.Helper()
	return NewRecordFile(filepath.Join(t.TempDir(), "session.txt"))
}

func TestRecord_RoundTrip(t *testing.T) {
	r := tempRecord(t)

	require.NoError(t, r.Write("a@b.com", "secret"))

	id, secret, ok := r.Read()
	require.True(t, ok)
	require.Equal(t, "a@b.com", id)
	require.Equal(t, "secret", secret)
}

func TestRecord_AbsentFile(t *testing.T) {
	r := tempRecord(t)

	_, _, ok := r.Read()
	require.False(t, ok)
}

func TestRecord_ClearYieldsNoSession(t *testing.T) {
	r := tempRecord(t)

	require.NoError(t, r.Write("a@b.com", "secret"))
	require.NoError(t, r.Clear())

	_, _, ok := r.Read()
	require.False(t, ok, "empty pair denotes no session")
}

func TestRecord_MalformedContentIsAbsence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.txt")
	r := NewRecordFile(path)

	for name, content := range map[string]string{
		"empty":          "",
		"one line":       "a@b.com",
		"three lines":    "a@b.com\nsecret\nextra\n",
		"leadingshadow":  "\nsecret\n",
		"just newlines":  "\n\n\n",
		"whitespace mix": "a@b.com\nsecret\nmore\nlines\n",
	} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600), name)
		_, _, ok := r.Read()
		require.False(t, ok, "content %q must read as absence", name)
	}
}

func TestRecord_WriteOverwritesPriorContent(t *testing.T) {
	r := tempRecord(t)

	require.NoError(t, r.Write("old@b.com", "old"))
	require.NoError(t, r.Write("new@b.com", "new"))

	id, secret, ok := r.Read()
	require.True(t, ok)
	require.Equal(t, "new@b.com", id)
	require.Equal(t, "new", secret)
}
