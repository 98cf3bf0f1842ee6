package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurenMRz/mboxrender/internal/labels"
	"github.com/emurenMRz/mboxrender/internal/mailbox"
	"github.com/emurenMRz/mboxrender/internal/mboxheader"
	"github.com/emurenMRz/mboxrender/internal/render"
	"github.com/emurenMRz/mboxrender/internal/rtfhtml"
)

const testMbox = "From alice@example.com Mon Jan  2 15:04:05 2006\n" +
	"From: Alice <alice@example.com>\n" +
	"To: bob@example.com\n" +
	"Subject: older\n" +
	"Date: Mon, 02 Jan 2006 15:04:05 +0000\n" +
	"Message-ID: <older@example.com>\n" +
	"Content-Type: text/html; charset=utf-8\n" +
	"\n" +
	"<html><head></head><body><p>hi</p></body></html>\n" +
	"\n" +
	"From carol@example.com Tue Jan  3 15:04:05 2006\n" +
	"From: carol@example.com\n" +
	"To: bob@example.com\n" +
	"Subject: newer\n" +
	"Date: Tue, 03 Jan 2006 15:04:05 +0000\n" +
	"Message-ID: <newer@example.com>\n" +
	"\n" +
	"plain body\n" +
	"\n" +
	"From nobody Wed Jan  4 15:04:05 2006\n" +
	"From: dave@example.com\n" +
	"Subject: undated\n" +
	"\n" +
	"no date\n"

func newTestServer(t *testing.T, opts ...render.Option) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "INBOX"), []byte(testMbox), 0o644))

	table, err := labels.Load("en")
	require.NoError(t, err)

	opts = append([]render.Option{render.WithConverter(rtfhtml.Converter{}), render.WithHyperlinks(true)}, opts...)
	srv := New(Options{
		Store:     mailbox.NewStore(dir),
		Labels:    table,
		Renderer:  render.New(table, opts...),
		StaticDir: t.TempDir(),
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var b strings.Builder
	_, err = io.Copy(&b, resp.Body)
	require.NoError(t, err)
	return resp, b.String()
}

func TestMailboxes(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/mailboxes/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(body), &names))
	assert.Equal(t, []string{"INBOX"}, names)
}

func TestListEmails_NewestFirst(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var emails []Summary
	require.NoError(t, json.Unmarshal([]byte(body), &emails))
	require.Len(t, emails, 3)

	assert.Equal(t, []int{1, 0, 2}, []int{emails[0].ID, emails[1].ID, emails[2].ID})
	assert.Equal(t, "newer", emails[0].Subject)
	assert.Equal(t, "Alice <alice@example.com>", emails[1].From)
	assert.Equal(t, "2006-01-02T15:04:05Z", emails[1].Date)
	assert.Empty(t, emails[2].Date)
}

func TestEmailContent_HTML(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails/0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	assert.True(t, strings.HasPrefix(body, "<html><head></head><body><table"), body)
	assert.Contains(t, body, `<a href="mailto:alice@example.com">Alice</a>`)
	assert.Contains(t, body, "</table><br/>\n<p>hi</p></body></html>")
}

func TestEmailContent_Text(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	assert.True(t, strings.HasPrefix(body, "From:"), body)
	assert.Contains(t, body, "carol@example.com")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "plain body"), body)
}

func TestEmailContent_StrictMissingField(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, render.WithStrict(true))
	resp, _ := get(t, ts, "/api/mailboxes/INBOX/emails/2")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = get(t, ts, "/api/mailboxes/INBOX/emails/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmailHeaders(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails/0/headers?format=text")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Subject:")
	assert.Contains(t, body, "older")
	assert.Contains(t, body, "Content-Type:")

	resp, body = get(t, ts, "/api/mailboxes/INBOX/emails/0/headers")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "<html><head></head><body><table"), body)
	assert.Contains(t, body, "Message-ID")
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	_, body := get(t, ts, "/api/mailboxes/INBOX/emails/0/validate")
	assert.JSONEq(t, "[]", body)

	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails/2/validate")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []mboxheader.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	assert.Contains(t, results, mboxheader.ValidationResult{MsgIndex: 2, Field: "Date", Status: mboxheader.StatusMissing})
	assert.Contains(t, results, mboxheader.ValidationResult{MsgIndex: 2, Field: "Message-ID", Status: mboxheader.StatusMissing})
	assert.Contains(t, results, mboxheader.ValidationResult{MsgIndex: 2, Field: "To", Status: mboxheader.StatusMissing, Detail: "required for rendering"})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/mailboxes/Missing/emails", http.StatusNotFound},
		{"/api/mailboxes/INBOX/emails/x", http.StatusBadRequest},
		{"/api/mailboxes/INBOX/emails/-1", http.StatusBadRequest},
		{"/api/mailboxes/INBOX/emails/9", http.StatusNotFound},
		{"/api/mailboxes/INBOX/emails/0/unknown", http.StatusNotFound},
		{"/api/mailboxes/INBOX/other", http.StatusNotFound},
		{"/api/mailboxes/../emails", http.StatusNotFound},
		{"/nothing-here", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, _ := get(t, ts, tt.path)
		assert.Equal(t, tt.want, resp.StatusCode, tt.path)
	}

	resp, err := http.Post(ts.URL+"/api/mailboxes/INBOX/emails/0/read", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestEmailItem(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/mailboxes/INBOX/emails/0/item")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Kind   string         `json:"kind"`
		Fields map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "email", got.Kind)
	assert.Equal(t, "older", got.Fields[render.KeySubject])
	assert.Equal(t, "2006-01-02T15:04:05Z", got.Fields[render.KeyEmailSentOn])
}
