package render

import (
	"fmt"
	"strings"
)

const (
	// InlineObjectToken replaces RTF inline object placeholders before
	// conversion so they survive as plain text in the produced HTML.
	InlineObjectToken = "[*[RTFINLINEOBJECT]*]"

	// EmptyHTMLDocument is the body used when a message carries none.
	EmptyHTMLDocument = "<html><head></head><body></body></html>"

	rtfInlineObject = `\objattph`
)

// Converter turns an RTF document into HTML.
type Converter interface {
	Convert(rtf string) (string, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(rtf string) (string, error)

func (f ConverterFunc) Convert(rtf string) (string, error) {
	return f(rtf)
}

// Body holds the body representations of a message. RTF and Text are nil when
// the message does not carry them.
type Body struct {
	HTML string
	RTF  *string
	Text *string
}

// ResolveBody picks the body to render: HTML first, then RTF converted to HTML,
// then plain text, then an empty HTML document.
func ResolveBody(body Body, conv Converter) (string, bool, error) {
	switch {
	case body.HTML != "":
		return body.HTML, true, nil

	case body.RTF != nil:
		if conv == nil {
			return "", false, fmt.Errorf("resolving body: %w: no converter configured", ErrConversionFailed)
		}
		rtf := strings.ReplaceAll(*body.RTF, rtfInlineObject, InlineObjectToken)
		converted, err := conv.Convert(rtf)
		if err != nil {
			return "", false, fmt.Errorf("resolving body: %w: %w", ErrConversionFailed, err)
		}
		return converted, true, nil

	case body.Text != nil:
		return *body.Text, false, nil
	}
	return EmptyHTMLDocument, true, nil
}
