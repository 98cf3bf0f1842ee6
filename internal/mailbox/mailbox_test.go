package mailbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMbox = "From alice@example.com Mon Jan  2 15:04:05 2006\n" +
	"From: alice@example.com\n" +
	"Subject: first\n" +
	"\n" +
	"hello\n" +
	"\n" +
	"From bob@example.com Tue Jan  3 15:04:05 2006\n" +
	"From: bob@example.com\n" +
	"Subject: second\n" +
	"\n" +
	">From the archive\n"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "INBOX"), []byte(testMbox), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Entw&APw-rfe"), []byte(testMbox), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return NewStore(dir)
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	names, skipped, err := newTestStore(t).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Entwürfe", "INBOX"}, names)
	assert.Empty(t, skipped)
}

func TestStore_ListMissingDirectory(t *testing.T) {
	t.Parallel()

	_, _, err := NewStore(filepath.Join(t.TempDir(), "nope")).List()
	require.Error(t, err)
}

func TestStore_Messages(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	msgs, err := s.Messages("Entwürfe")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, strings.HasPrefix(string(msgs[0]), "From: alice@example.com\n"))
	assert.Contains(t, string(msgs[1]), "From the archive")

	msg, err := s.Message("INBOX", 1)
	require.NoError(t, err)
	assert.Contains(t, string(msg), "Subject: second")
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.Messages("Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Message("INBOX", 2)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = s.Message("INBOX", -1)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		_, err = s.Path(name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestSplitHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, headers, body string
	}{
		{"lf", "A: 1\nB: 2\n\nbody\n", "A: 1\nB: 2\n", "body\n"},
		{"crlf", "A: 1\r\n\r\nbody", "A: 1\r\n", "body"},
		{"lf before crlf", "A: 1\n\nx\r\n\r\ny", "A: 1\n", "x\r\n\r\ny"},
		{"headers only", "A: 1\n", "A: 1\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, b := SplitHeaders([]byte(tt.in))
			assert.Equal(t, tt.headers, h)
			assert.Equal(t, tt.body, b)
		})
	}
}

func TestNames_RoundTrip(t *testing.T) {
	t.Parallel()

	enc, err := EncodeName("日本語")
	require.NoError(t, err)
	assert.NotEqual(t, "日本語", enc)

	dec, err := DecodeName(enc)
	require.NoError(t, err)
	assert.Equal(t, "日本語", dec)
}
