package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

const (
	htmlTableStart = `<table style="border: none; font-family: Times New Roman; font-size: 12pt;">` + "\n"
	htmlTableEnd   = "</table><br/>\n"
	htmlRowStart   = `<tr style="height: 18px; vertical-align: top; ">`
	htmlEmptyRow   = htmlRowStart + "<td>&nbsp;</td></tr>\n"
)

// HeaderField is one label/value line of a header block.
type HeaderField struct {
	Label string
	Value string
	// Encode marks values that still need HTML escaping in HTML mode.
	Encode bool
	// Always renders the line even when Value is empty.
	Always bool
}

// FieldWidth returns the text-mode label column width for labels: the widest
// label plus two columns for the colon and a separating space.
func FieldWidth(labels []string) int {
	widest := 0
	for _, l := range labels {
		if w := runewidth.StringWidth(l); w > widest {
			widest = w
		}
	}
	return widest + 2
}

// FormatField renders f as one HTML table row or one padded text line. An empty
// value without Always renders nothing.
func FormatField(f HeaderField, rc RenderContext, width int) string {
	if f.Value == "" && !f.Always {
		return ""
	}

	if rc.HTML {
		value := f.Value
		if f.Encode {
			lines := splitLines(value)
			for i, line := range lines {
				lines[i] = html.EscapeString(line)
			}
			value = strings.Join(lines, "<br/>")
		}
		return htmlRowStart +
			`<td style="font-weight: bold; white-space:nowrap;">` + html.EscapeString(f.Label) + ":</td>" +
			"<td>" + value + "</td></tr>\n"
	}

	lines := splitLines(f.Value)
	var b strings.Builder
	b.WriteString(runewidth.FillRight(f.Label+":", width))
	b.WriteString(lines[0])
	b.WriteByte('\n')
	for _, line := range lines[1:] {
		b.WriteString(strings.Repeat(" ", width))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// EmptyLine renders a blank separator line.
func EmptyLine(rc RenderContext) string {
	if rc.HTML {
		return htmlEmptyRow
	}
	return "\n"
}

func blockStart(rc RenderContext) string {
	if rc.HTML {
		return htmlTableStart
	}
	return ""
}

func blockEnd(rc RenderContext) string {
	if rc.HTML {
		return htmlTableEnd
	}
	return "\n"
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
