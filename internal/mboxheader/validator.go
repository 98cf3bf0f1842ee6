package mboxheader

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/emurenMRz/mboxrender/internal/render"
)

var (
	requiredHeaders = []string{"From", "Date", "Message-ID"}

	messageIDRegex = regexp.MustCompile(`^<[^<>@]+@[^<>@]+>$`)
)

// ValidateHeaders checks a header block for the fields RFC 5322 requires,
// their syntax, and an mbox deletion mark.
func ValidateHeaders(headers string, msgIndex int) []ValidationResult {
	var results []ValidationResult
	h := Parse(headers)

	for _, name := range requiredHeaders {
		if !h.Has(name) {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    name,
				Status:   StatusMissing,
			})
		}
	}

	if from, ok := h.Get("From"); ok && !isValidFrom(from) {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "From",
			Status:   StatusInvalid,
			Detail:   "invalid address format",
		})
	}

	if date, ok := h.Get("Date"); ok && !isValidDate(date) {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "Date",
			Status:   StatusInvalid,
			Detail:   "invalid date format",
		})
	}

	if id, ok := h.Get("Message-ID"); ok && !isValidMessageID(id) {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "Message-ID",
			Status:   StatusInvalid,
			Detail:   "invalid message id format",
		})
	}

	if status, ok := h.Get("Status"); ok && strings.Contains(status, "D") {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "Status",
			Status:   StatusDeleted,
		})
	}

	return results
}

// ValidateItem reports the required header fields of item that would render
// empty. Field names are the localized labels.
func ValidateItem(item render.Item, labels render.Labels, msgIndex int) ([]ValidationResult, error) {
	tmpl, err := render.BuildTemplate(item, render.NewRenderContext(false, false), labels)
	if err != nil {
		return nil, fmt.Errorf("validating message %d: %w", msgIndex, err)
	}

	results := make([]ValidationResult, 0, len(tmpl.Missing))
	for _, id := range tmpl.Missing {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    labels.Label(id),
			Status:   StatusMissing,
			Detail:   "required for rendering",
		})
	}
	return results, nil
}

func isValidFrom(from string) bool {
	_, err := mail.ParseAddressList(from)
	return err == nil
}

func isValidDate(date string) bool {
	_, err := mail.ParseDate(date)
	return err == nil
}

func isValidMessageID(id string) bool {
	id = strings.Trim(id, "<>")
	return messageIDRegex.MatchString("<" + id + ">")
}
