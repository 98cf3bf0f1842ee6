package rtfhtml

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	plainDocumentStart = `<html><head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"></head><body>` + "\n"
	plainDocumentEnd   = "</body></html>"
	plainTab           = "&nbsp;&nbsp;&nbsp;&nbsp;"
)

// plainToHTML renders the text of a non-encapsulated RTF document as HTML
// paragraphs. Character formatting is dropped.
func plainToHTML(rtf string) string {
	w := newWalker(rtf)
	sink := newTextSink()
	var paragraphs []string

	for {
		tok, ok := w.next()
		if !ok {
			break
		}

		switch tok.kind {
		case tokText, tokHex:
			sink.writeByte(tok.b)
		case tokSymbol:
			switch tok.b {
			case '\\', '{', '}':
				sink.writeByte(tok.b)
			case '~':
				sink.writeRune('\u00a0')
			case '_':
				sink.writeRune('\u2011')
			}
		case tokWord:
			switch tok.word {
			case "ansicpg":
				sink.setCodePage(tok.param)
			case "par", "sect", "page":
				paragraphs = append(paragraphs, sink.String())
				sink.Reset()
			case "line":
				sink.writeRune('\n')
			case "tab":
				sink.writeRune('\t')
			case "u":
				if r, ok := w.unicode(tok.param); ok {
					sink.writeRune(r)
				}
			default:
				if r, ok := specialChar[tok.word]; ok {
					sink.writeRune(r)
				}
			}
		}
	}
	if sink.Len() > 0 {
		paragraphs = append(paragraphs, sink.String())
	}

	var b strings.Builder
	b.WriteString(plainDocumentStart)
	for _, p := range paragraphs {
		b.WriteString("<p>")
		if strings.TrimSpace(p) == "" {
			b.WriteString("&nbsp;")
		} else {
			p = html.EscapeString(p)
			p = strings.ReplaceAll(p, "\n", "<br/>")
			p = strings.ReplaceAll(p, "\t", plainTab)
			b.WriteString(p)
		}
		b.WriteString("</p>\n")
	}
	b.WriteString(plainDocumentEnd)
	return b.String()
}
