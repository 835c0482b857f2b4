package session

import (
	"os"
	"strings"
)

// RecordFile persists the current credentials as exactly two newline-
// separated lines (identifier, secret) at a fixed location. It is an
// optimistic cache: its content must be re-verified against the credential
// store before a session may be restored from it.
type RecordFile struct {
	path string
}

// NewRecordFile binds a record file to the given path.
func NewRecordFile(path string) *RecordFile {
	return &RecordFile{path: path}
}

// Read returns the persisted identifier/secret pair. ok is false when the
// file is absent, malformed (not exactly two lines), or holds the empty pair
// written by a logout. Malformed content is treated as absence, never as an
// error.
func (r *RecordFile) Read() (identifier, secret string, ok bool) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", "", false
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		return "", "", false
	}
	if lines[0] == "" {
		return "", "", false
	}
	return lines[0], lines[1], true
}

// Write overwrites the record with the given pair.
func (r *RecordFile) Write(identifier, secret string) error {
	content := identifier + "\n" + secret + "\n"
	return os.WriteFile(r.path, []byte(content), 0o600)
}

// Clear overwrites the record with the empty pair, denoting "no session".
func (r *RecordFile) Clear() error {
	return r.Write("", "")
}
