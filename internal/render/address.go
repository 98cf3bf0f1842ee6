package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/net/html"
)

// FormatAddress renders a single address for rc. The result is safe to insert
// without further encoding.
func FormatAddress(a Address, rc RenderContext) string {
	display := a.Name
	switch {
	case display == "":
		display = a.Email
	case a.Email != "" && !strings.EqualFold(a.Name, a.Email) && !rc.Hyperlinks:
		display = a.Name + " <" + a.Email + ">"
	}

	if !rc.HTML {
		return display
	}
	if rc.Hyperlinks && a.Email != "" {
		return `<a href="mailto:` + html.EscapeString(a.Email) + `">` + html.EscapeString(display) + "</a>"
	}
	return html.EscapeString(display)
}

// FormatAddresses renders addresses joined by "; ". Empty addresses are skipped.
func FormatAddresses(addrs []Address, rc RenderContext) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name == "" && a.Email == "" {
			continue
		}
		parts = append(parts, FormatAddress(a, rc))
	}
	return strings.Join(parts, "; ")
}

// FormatAttachments renders each attachment as "name (size)" for rc.
func FormatAttachments(atts []Attachment, rc RenderContext) []string {
	out := make([]string, 0, len(atts))
	for _, a := range atts {
		name := a.Name
		if rc.HTML {
			name = html.EscapeString(name)
			if rc.Hyperlinks && a.Href != "" {
				name = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(a.Href), name)
			}
		}
		if a.Size > 0 {
			name += " (" + humanize.Bytes(uint64(a.Size)) + ")"
		}
		out = append(out, name)
	}
	return out
}
