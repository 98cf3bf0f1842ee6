package rtfhtml

import "strings"

// deencapsulate extracts the original HTML from RTF produced by the
// \fromhtml1 encapsulation. Content of {\*\htmltag} groups is HTML markup;
// text between them is visible content unless inside \htmlrtf ... \htmlrtf0.
func deencapsulate(rtf string) (string, bool) {
	if !strings.Contains(rtf, `\fromhtml`) {
		return "", false
	}

	w := newWalker(rtf, "htmltag", "mhtmltag")
	sink := newTextSink()
	inHTMLRTF, seenTag := false, false

	for {
		tok, ok := w.next()
		if !ok {
			break
		}

		if tok.kind == tokWord {
			switch tok.word {
			case "ansicpg":
				sink.setCodePage(tok.param)
				continue
			case "htmlrtf":
				inHTMLRTF = !tok.hasParam || tok.param != 0
				continue
			}
		}

		inTag := w.dest() != ""
		if inTag {
			seenTag = true
		} else if inHTMLRTF || !seenTag {
			continue
		}

		switch tok.kind {
		case tokText, tokHex:
			sink.writeByte(tok.b)
		case tokSymbol:
			switch tok.b {
			case '\\', '{', '}':
				sink.writeByte(tok.b)
			case '~':
				sink.writeString("&nbsp;")
			case '_':
				sink.writeString("&#8209;")
			}
		case tokWord:
			switch tok.word {
			case "par", "line":
				if inTag {
					sink.writeString("\r\n")
				}
			case "tab":
				if inTag {
					sink.writeString("\t")
				}
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

	out := strings.TrimSpace(sink.String())
	return out, out != ""
}
