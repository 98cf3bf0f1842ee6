package mboxheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurenMRz/mboxrender/internal/render"
)

const sampleHeaders = "From: Alice <alice@example.com>\r\n" +
	"Received: from a\r\n" +
	"\tby b\r\n" +
	"received: from c\n" +
	"garbage line\n" +
	" orphan continuation\n" +
	"Subject: hello\n" +
	"\n" +
	"X-After-Body: ignored\n"

func TestParse(t *testing.T) {
	t.Parallel()

	h := Parse(sampleHeaders)

	assert.Equal(t, 4, h.Len())
	v, ok := h.Get("RECEIVED")
	require.True(t, ok)
	assert.Equal(t, "from a by b", v)
	assert.True(t, h.Has("subject"))
	assert.False(t, h.Has("X-After-Body"))

	_, ok = h.Get("To")
	assert.False(t, ok)
}

func TestKeyedItem(t *testing.T) {
	t.Parallel()

	k := KeyedItem(sampleHeaders)

	assert.Equal(t, render.KindKeyed, k.Kind())
	assert.Equal(t, []render.KeyValue{
		{Key: "From", Value: "Alice <alice@example.com>"},
		{Key: "Received", Value: "from a by b"},
		{Key: "received", Value: "from c"},
		{Key: "Subject", Value: "hello"},
	}, k.Pairs)
}

func TestValidateHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers string
		want    []ValidationResult
	}{
		{
			name: "valid",
			headers: "From: a@example.com\n" +
				"Date: Mon, 02 Jan 2006 15:04:05 +0000\n" +
				"Message-ID: <x@example.com>\n",
			want: nil,
		},
		{
			name:    "missing",
			headers: "Subject: hi\n",
			want: []ValidationResult{
				{MsgIndex: 3, Field: "From", Status: StatusMissing},
				{MsgIndex: 3, Field: "Date", Status: StatusMissing},
				{MsgIndex: 3, Field: "Message-ID", Status: StatusMissing},
			},
		},
		{
			name: "invalid and deleted",
			headers: "From: not an address\n" +
				"Date: yesterday\n" +
				"Message-Id: no-at-sign\n" +
				"Status: RO D\n",
			want: []ValidationResult{
				{MsgIndex: 3, Field: "From", Status: StatusInvalid, Detail: "invalid address format"},
				{MsgIndex: 3, Field: "Date", Status: StatusInvalid, Detail: "invalid date format"},
				{MsgIndex: 3, Field: "Message-ID", Status: StatusInvalid, Detail: "invalid message id format"},
				{MsgIndex: 3, Field: "Status", Status: StatusDeleted},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ValidateHeaders(tt.headers, 3))
		})
	}
}

func TestValidateItem(t *testing.T) {
	t.Parallel()

	labels := render.LabelMap{
		render.LabelEmailFrom:    "From",
		render.LabelEmailTo:      "To",
		render.LabelEmailSubject: "Subject",
	}

	results, err := ValidateItem(&render.Email{Subject: "hi"}, labels, 1)
	require.NoError(t, err)
	assert.Equal(t, []ValidationResult{
		{MsgIndex: 1, Field: "From", Status: StatusMissing, Detail: "required for rendering"},
		{MsgIndex: 1, Field: "To", Status: StatusMissing, Detail: "required for rendering"},
	}, results)

	_, err = ValidateItem((*render.Email)(nil), labels, 1)
	assert.ErrorIs(t, err, render.ErrUnsupportedItemType)
}

func TestHTMLKeyedItem(t *testing.T) {
	t.Parallel()

	k := HTMLKeyedItem("Subject: <script>x</script>\nFrom: a & b <a@example.com>\n")
	assert.Equal(t, []render.KeyValue{
		{Key: "Subject", Value: "&lt;script&gt;x&lt;/script&gt;"},
		{Key: "From", Value: "a &amp; b &lt;a@example.com&gt;"},
	}, k.Pairs)
}
