package eml

import (
	"errors"
	"io"
	"strings"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/mail"

	"github.com/emurenMRz/mboxrender/internal/render"
)

var signatureTypes = map[string]bool{
	"application/pkcs7-signature":   true,
	"application/x-pkcs7-signature": true,
	"application/pgp-signature":     true,
}

// readParts walks the leaf parts of mr. The first HTML, RTF and plain text
// parts become the body; named non-text parts become attachments.
func (p *Parser) readParts(mr *mail.Reader, msg *Message) {
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil && !message.IsUnknownCharset(err) {
			p.logger.Warn("reading message part", "id", msg.ID, "error", err)
			return
		}

		switch h := part.Header.(type) {
		case *mail.AttachmentHeader:
			ctype, _, _ := h.ContentType()
			if signatureTypes[ctype] {
				continue
			}
			name, _ := h.Filename()
			p.attach(msg, name, part.Body)

		case *mail.InlineHeader:
			ctype, _, _ := h.ContentType()
			if signatureTypes[ctype] {
				continue
			}
			if name := inlineFilename(h); name != "" && !strings.HasPrefix(ctype, "text/") {
				p.attach(msg, name, part.Body)
				continue
			}
			p.body(msg, ctype, part.Body)
		}
	}
}

func inlineFilename(h *mail.InlineHeader) string {
	if _, params, err := h.ContentDisposition(); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	if _, params, err := h.ContentType(); err == nil {
		return params["name"]
	}
	return ""
}

func (p *Parser) attach(msg *Message, name string, body io.Reader) {
	size, err := io.Copy(io.Discard, body)
	if err != nil {
		p.logger.Warn("reading attachment", "id", msg.ID, "name", name, "error", err)
	}
	if name == "" {
		name = "attachment"
	}
	msg.Email.Attachments = append(msg.Email.Attachments, render.Attachment{Name: name, Size: size})
}

func (p *Parser) body(msg *Message, ctype string, r io.Reader) {
	b := &msg.Body
	var dst *string
	switch ctype {
	case "text/html":
		if b.HTML != "" {
			return
		}
		dst = &b.HTML
	case "text/rtf", "application/rtf":
		if b.RTF != nil {
			return
		}
		dst = new(string)
		b.RTF = dst
	case "text/plain", "":
		if b.Text != nil {
			return
		}
		dst = new(string)
		b.Text = dst
	default:
		return
	}

	data, err := io.ReadAll(r)
	if err != nil {
		p.logger.Warn("reading body part", "id", msg.ID, "type", ctype, "error", err)
		if len(data) == 0 {
			return
		}
	}
	*dst = string(data)
}
