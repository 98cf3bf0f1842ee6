package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurenMRz/mboxrender/internal/mailbox"
)

const testMbox = "From alice@example.com Mon Jan  2 15:04:05 2006\n" +
	"From: Alice <alice@example.com>\n" +
	"To: bob@example.com\n" +
	"Subject: hello\n" +
	"Date: Mon, 02 Jan 2006 15:04:05 +0000\n" +
	"Message-ID: <hello@example.com>\n" +
	"\n" +
	"first body\n" +
	"\n" +
	"From nobody Tue Jan  3 15:04:05 2006\n" +
	"From: dave@example.com\n" +
	"Subject: second\n" +
	"Status: D\n" +
	"\n" +
	"second body\n"

func runMode(t *testing.T, opts options) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "INBOX")
	require.NoError(t, os.WriteFile(path, []byte(testMbox), 0o644))
	opts.path = path
	if opts.locale == "" {
		opts.locale = "en"
	}

	var out strings.Builder
	err := run(&out, slog.New(slog.DiscardHandler), opts)
	return out.String(), err
}

func TestRun_Render(t *testing.T) {
	t.Parallel()

	out, err := runMode(t, options{mode: "render", msgIndex: 0})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "From:"), out)
	assert.Contains(t, out, "Alice <alice@example.com>")
	assert.Contains(t, out, "first body")
}

func TestRun_RenderAll(t *testing.T) {
	t.Parallel()

	out, err := runMode(t, options{mode: "render", msgIndex: -1})
	require.NoError(t, err)
	assert.Contains(t, out, "Message 0:\n")
	assert.Contains(t, out, "Message 1:\n")
}

func TestRun_RenderStrict(t *testing.T) {
	t.Parallel()

	_, err := runMode(t, options{mode: "render", msgIndex: 1, strict: true})
	require.Error(t, err)
}

func TestRun_Headers(t *testing.T) {
	t.Parallel()

	out, err := runMode(t, options{mode: "headers", msgIndex: 1, format: "text"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Message 1:\n"), out)
	assert.Contains(t, out, "Status:")
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	out, err := runMode(t, options{mode: "validate", msgIndex: -1})
	require.NoError(t, err)
	assert.NotContains(t, out, "Message 0:")
	assert.Contains(t, out, "Message 1: Date header is missing\n")
	assert.Contains(t, out, "Message 1: To header is missing (required for rendering)\n")
	assert.Contains(t, out, "Message 1: Status = D (marked deleted)\n")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := runMode(t, options{mode: "render", msgIndex: 5})
	assert.ErrorIs(t, err, mailbox.ErrMessageNotFound)

	_, err = runMode(t, options{mode: "bogus", msgIndex: 0})
	require.Error(t, err)

	var out strings.Builder
	err = run(&out, slog.New(slog.DiscardHandler), options{mode: "render", path: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, mailbox.ErrNotFound)
}

func TestRun_Item(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "task.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`kind: task
fields:
  Subject: Write report
  StartDate: "2024-03-01T09:00:00Z"
  PercentageComplete: 0.5
  Owner: Alice
  Categories: [work, q1]
body:
  text: "details follow\n"
`), 0o644))

	var out strings.Builder
	err := run(&out, slog.New(slog.DiscardHandler), options{mode: "item", path: path, locale: "en"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Write report")
	assert.Contains(t, out.String(), "50%")
	assert.Contains(t, out.String(), "work; q1")
	assert.True(t, strings.HasSuffix(out.String(), "details follow\n"), out.String())
}

func TestRun_ItemNestedAddresses(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "appointment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`kind: appointment
fields:
  Subject: Planning
  Start: 2024-05-01T10:00:00Z
  Organizer: {Name: Alice, Email: alice@example.com}
  MandatoryParticipants:
    - {Name: Bob, Email: bob@example.com}
    - Carol
  Attachments:
    - {Name: agenda.docx, Size: 2048}
body:
  text: "see you\n"
`), 0o644))

	var out strings.Builder
	err := run(&out, slog.New(slog.DiscardHandler), options{mode: "item", path: path, locale: "en"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Alice <alice@example.com>")
	assert.Contains(t, out.String(), "Bob <bob@example.com>; Carol")
	assert.Contains(t, out.String(), "agenda.docx (2.0 kB)")
}

func TestRun_ItemUnknownKind(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: fax\nfields: {}\n"), 0o644))

	var out strings.Builder
	err := run(&out, slog.New(slog.DiscardHandler), options{mode: "item", path: path, locale: "en"})
	require.Error(t, err)
}
