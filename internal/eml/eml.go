// Package eml extracts renderable items and bodies from RFC 5322 messages.
package eml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/mail"

	"github.com/emurenMRz/mboxrender/internal/render"
)

// ErrEmptyMessage is returned when the input holds no header block.
var ErrEmptyMessage = errors.New("empty message")

// Message is a parsed message.
type Message struct {
	ID    string
	Date  time.Time
	Email *render.Email
	Body  render.Body
}

// Parser turns raw messages into render items. Importance texts come from
// labels.
type Parser struct {
	labels render.Labels
	logger *slog.Logger
}

func NewParser(labels render.Labels, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{labels: labels, logger: logger}
}

// Parse reads one message from r. Parts that cannot be read are logged and
// skipped.
func (p *Parser) Parse(r io.Reader) (*Message, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		return nil, ErrEmptyMessage
	}

	mr, err := mail.CreateReader(br)
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, fmt.Errorf("parsing message: %w", err)
	}
	defer mr.Close()

	h := mr.Header
	msg := &Message{
		ID:    messageID(h),
		Date:  p.date(h),
		Email: p.email(h),
	}
	if !msg.Date.IsZero() {
		msg.Email.SentOn = &msg.Date
		if msg.Email.Signed {
			msg.Email.SignedOn = &msg.Date
		}
	}

	p.readParts(mr, msg)
	return msg, nil
}

func messageID(h mail.Header) string {
	if id, err := h.MessageID(); err == nil && id != "" {
		return id
	}
	return strings.Trim(strings.TrimSpace(h.Get("Message-Id")), "<>")
}

func (p *Parser) date(h mail.Header) time.Time {
	if t, err := h.Date(); err == nil {
		return t
	}
	return parseDate(h.Get("Date"))
}

func (p *Parser) email(h mail.Header) *render.Email {
	e := &render.Email{
		To:         p.addresses(h, "To"),
		Cc:         p.addresses(h, "Cc"),
		Bcc:        p.addresses(h, "Bcc"),
		Importance: render.ImportanceText(p.labels, importance(h)),
		Categories: keywords(h),
	}

	from := p.addresses(h, "From")
	if len(from) == 0 {
		from = p.addresses(h, "Sender")
	}
	if len(from) > 0 {
		e.From = from[0]
	}

	subject, err := h.Subject()
	if err != nil {
		p.logger.Warn("decoding subject", "error", err)
		subject = h.Get("Subject")
	}
	e.Subject = subject

	if t, _, _ := h.ContentType(); t == "multipart/signed" {
		e.Signed = true
		e.SignedBy = e.From.Name
		if e.SignedBy == "" {
			e.SignedBy = e.From.Email
		}
	}

	if flag := strings.TrimSpace(h.Get("X-Message-Flag")); flag != "" {
		e.FollowUp = &render.FollowUp{Request: flag}
		if due := parseDate(h.Get("Reply-By")); !due.IsZero() {
			e.FollowUp.Due = &due
		}
	}
	return e
}

// addresses parses an address list header. A list that does not parse is
// kept as a single display name.
func (p *Parser) addresses(h mail.Header, key string) []render.Address {
	if !h.Has(key) {
		return nil
	}
	list, err := h.AddressList(key)
	if err != nil {
		text, terr := h.Text(key)
		if terr != nil {
			text = h.Get(key)
		}
		p.logger.Warn("parsing address list", "header", key, "error", err)
		if text = strings.TrimSpace(text); text == "" {
			return nil
		}
		return []render.Address{{Name: text}}
	}

	out := make([]render.Address, 0, len(list))
	for _, a := range list {
		out = append(out, render.Address{Name: a.Name, Email: a.Address})
	}
	return out
}

// importance maps the Importance header, or X-Priority when it is absent.
func importance(h mail.Header) render.Importance {
	switch strings.ToLower(strings.TrimSpace(h.Get("Importance"))) {
	case "low":
		return render.ImportanceLow
	case "normal":
		return render.ImportanceNormal
	case "high":
		return render.ImportanceHigh
	}

	prio := strings.TrimSpace(h.Get("X-Priority"))
	if prio == "" {
		return render.ImportanceNone
	}
	// "1 (Highest)" and similar carry a leading digit.
	n, err := strconv.Atoi(strings.Fields(prio)[0])
	if err != nil {
		return render.ImportanceNone
	}
	switch {
	case n <= 2:
		return render.ImportanceHigh
	case n == 3:
		return render.ImportanceNormal
	default:
		return render.ImportanceLow
	}
}

func keywords(h mail.Header) []string {
	raw, err := h.Text("Keywords")
	if err != nil {
		raw = h.Get("Keywords")
	}
	var out []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
