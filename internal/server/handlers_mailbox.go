package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/emurenMRz/mboxrender/internal/eml"
	"github.com/emurenMRz/mboxrender/internal/mailbox"
	"github.com/emurenMRz/mboxrender/internal/mboxheader"
	"github.com/emurenMRz/mboxrender/internal/render"
)

func (s *Server) mailboxesHandler(w http.ResponseWriter, _ *http.Request) {
	names, skipped, err := s.store.List()
	if err != nil {
		s.logger.Error("listing mailboxes", "error", err)
		http.Error(w, "failed to read directory", http.StatusInternalServerError)
		return
	}
	for _, name := range skipped {
		s.logger.Warn("skipping mailbox with undecodable name", "file", name)
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, names)
}

func (s *Server) listEmailsHandler(w http.ResponseWriter, r *http.Request, mailboxName string) {
	msgs, err := s.store.Messages(mailboxName)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	emails := make([]Summary, 0, len(msgs))
	for i, raw := range msgs {
		msg, err := s.parser.Parse(bytes.NewReader(raw))
		if err != nil {
			s.logger.Warn("skipping unparsable message", "mailbox", mailboxName, "index", i, "error", err)
			continue
		}
		emails = append(emails, summarize(i, msg))
	}

	// Newest first; messages without a date go last.
	sort.SliceStable(emails, func(a, b int) bool {
		ta, tb := emails[a].Timestamp, emails[b].Timestamp
		if ta.Equal(tb) {
			return emails[a].ID < emails[b].ID
		}
		if ta.IsZero() {
			return false
		}
		if tb.IsZero() {
			return true
		}
		return ta.After(tb)
	})

	writeJSON(w, emails)
}

func summarize(id int, msg *eml.Message) Summary {
	e := msg.Email
	sum := Summary{
		ID:          id,
		From:        render.FormatAddress(e.From, render.NewRenderContext(false, false)),
		Subject:     e.Subject,
		Importance:  e.Importance,
		Attachments: len(e.Attachments),
		Signed:      e.Signed,
		Timestamp:   msg.Date,
	}
	if !msg.Date.IsZero() {
		sum.Date = msg.Date.Format(time.RFC3339)
	}
	return sum
}

func (s *Server) emailContentHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) {
	msg, _, ok := s.loadMessage(w, r, mailboxName, emailIDStr)
	if !ok {
		return
	}

	doc, isHTML, err := s.renderer.Render(msg.Email, msg.Body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeDocument(w, doc, isHTML)
}

// emailHeadersHandler dumps the raw header fields of a message as a header
// block. ?format=text selects plain text.
func (s *Server) emailHeadersHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) {
	_, raw, ok := s.loadMessage(w, r, mailboxName, emailIDStr)
	if !ok {
		return
	}

	headers, _ := mailbox.SplitHeaders(raw)
	isHTML := r.URL.Query().Get("format") != "text"
	item := mboxheader.KeyedItem(headers)
	if isHTML {
		item = mboxheader.HTMLKeyedItem(headers)
	}
	block, err := s.renderer.Header(item, render.NewRenderContext(isHTML, false))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if isHTML {
		block = render.Merge(render.EmptyHTMLDocument, block, true)
	}
	writeDocument(w, block, isHTML)
}

func (s *Server) validateEmailHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) {
	msg, raw, ok := s.loadMessage(w, r, mailboxName, emailIDStr)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(emailIDStr)

	headers, _ := mailbox.SplitHeaders(raw)
	results := mboxheader.ValidateHeaders(headers, id)
	itemResults, err := mboxheader.ValidateItem(msg.Email, s.labels, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	results = append(results, itemResults...)
	if results == nil {
		results = []mboxheader.ValidationResult{}
	}
	writeJSON(w, results)
}

// emailItemHandler returns the parsed message in the map form used for
// loosely typed item interchange.
func (s *Server) emailItemHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) {
	msg, _, ok := s.loadMessage(w, r, mailboxName, emailIDStr)
	if !ok {
		return
	}
	m, err := render.ToMap(msg.Email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"kind": msg.Email.Kind().String(), "fields": m})
}

func (s *Server) loadMessage(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) (*eml.Message, []byte, bool) {
	emailID, err := strconv.Atoi(emailIDStr)
	if err != nil || emailID < 0 {
		http.Error(w, "invalid email id", http.StatusBadRequest)
		return nil, nil, false
	}

	raw, err := s.store.Message(mailboxName, emailID)
	if err != nil {
		s.fail(w, r, err)
		return nil, nil, false
	}
	msg, err := s.parser.Parse(bytes.NewReader(raw))
	if err != nil {
		s.fail(w, r, err)
		return nil, nil, false
	}
	return msg, raw, true
}

// fail maps err to a status code. Unexpected errors are logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, mailbox.ErrNotFound), errors.Is(err, mailbox.ErrMessageNotFound):
		http.NotFound(w, r)
	case errors.Is(err, mailbox.ErrInvalidName):
		http.Error(w, "invalid mailbox name", http.StatusBadRequest)
	case errors.Is(err, render.ErrUnsupportedItemType), errors.Is(err, render.ErrMissingRequiredField):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.logger.Error("handling request", "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeDocument(w http.ResponseWriter, doc string, isHTML bool) {
	if isHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	_, _ = w.Write([]byte(doc))
}
