package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Merge inserts header into body. HTML bodies receive the header right after
// the first <body> start tag, or in front of everything when there is none;
// text bodies receive it in front.
func Merge(body, header string, isHTML bool) string {
	if header == "" {
		return body
	}
	if !isHTML {
		return header + body
	}
	at := bodyContentOffset(body)
	if at < 0 {
		return header + body
	}
	return body[:at] + header + body[at:]
}

// bodyContentOffset returns the byte offset just past the first <body> start
// tag, or -1.
func bodyContentOffset(doc string) int {
	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return -1
		}
		offset += len(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		if name, _ := z.TagName(); string(name) == "body" {
			return offset
		}
	}
}
