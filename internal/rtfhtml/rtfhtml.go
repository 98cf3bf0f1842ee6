// Package rtfhtml converts RTF message bodies to HTML. Bodies that carry
// encapsulated HTML get the original markup back; other documents are
// reduced to their text, one paragraph per \par.
package rtfhtml

import (
	"errors"
	"strings"

	"github.com/emurenMRz/mboxrender/internal/render"
)

// ErrNotRTF is returned for input that does not start with an RTF header.
var ErrNotRTF = errors.New("not an rtf document")

// Converter implements render.Converter.
type Converter struct{}

var _ render.Converter = Converter{}

func (Converter) Convert(rtf string) (string, error) {
	return Convert(rtf)
}

// Convert returns the HTML form of rtf.
func Convert(rtf string) (string, error) {
	rtf = strings.TrimLeft(rtf, "\ufeff \t\r\n")
	if !strings.HasPrefix(rtf, `{\rtf`) {
		return "", ErrNotRTF
	}
	if out, ok := deencapsulate(rtf); ok {
		return out, nil
	}
	return plainToHTML(rtf), nil
}
