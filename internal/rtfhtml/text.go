package rtfhtml

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// textSink accumulates decoded text. Bytes from literal text and \'XX escapes
// are buffered and decoded with the document code page on flush.
type textSink struct {
	out     strings.Builder
	pending []byte
	dec     *encoding.Decoder
}

func newTextSink() *textSink {
	return &textSink{dec: charmap.Windows1252.NewDecoder()}
}

// setCodePage switches the decoder for \ansicpgN. Unknown pages keep the
// current decoder.
func (s *textSink) setCodePage(cp int) {
	s.flush()
	if cp == 65001 {
		s.dec = nil
		return
	}
	enc, err := codePage(cp)
	if err != nil || enc == nil {
		return
	}
	s.dec = enc.NewDecoder()
}

func (s *textSink) writeByte(b byte) {
	s.pending = append(s.pending, b)
}

func (s *textSink) writeString(str string) {
	s.flush()
	s.out.WriteString(str)
}

func (s *textSink) writeRune(r rune) {
	s.flush()
	s.out.WriteRune(r)
}

func (s *textSink) flush() {
	if len(s.pending) == 0 {
		return
	}
	if s.dec == nil {
		s.out.Write(s.pending)
	} else if decoded, err := s.dec.Bytes(s.pending); err == nil {
		s.out.Write(decoded)
	} else {
		s.out.Write(s.pending)
	}
	s.pending = s.pending[:0]
}

func (s *textSink) String() string {
	s.flush()
	return s.out.String()
}

func (s *textSink) Len() int {
	return s.out.Len() + len(s.pending)
}

func (s *textSink) Reset() {
	s.out.Reset()
	s.pending = s.pending[:0]
}

func codePage(cp int) (encoding.Encoding, error) {
	switch {
	case cp == 437:
		return charmap.CodePage437, nil
	case cp == 850:
		return charmap.CodePage850, nil
	case cp == 866:
		return charmap.CodePage866, nil
	case cp == 874:
		return charmap.Windows874, nil
	case cp >= 1250 && cp <= 1258:
		return ianaindex.IANA.Encoding(fmt.Sprintf("windows-%d", cp))
	case cp == 932:
		return ianaindex.IANA.Encoding("Shift_JIS")
	case cp == 936:
		return ianaindex.IANA.Encoding("GBK")
	case cp == 949:
		return ianaindex.IANA.Encoding("EUC-KR")
	case cp == 950:
		return ianaindex.IANA.Encoding("Big5")
	}
	return nil, fmt.Errorf("unsupported code page %d", cp)
}

// specialChar maps RTF control words that stand for a single character.
var specialChar = map[string]rune{
	"emdash":    '\u2014',
	"endash":    '\u2013',
	"emspace":   '\u2003',
	"enspace":   '\u2002',
	"qmspace":   '\u2005',
	"bullet":    '\u2022',
	"lquote":    '\u2018',
	"rquote":    '\u2019',
	"ldblquote": '\u201c',
	"rdblquote": '\u201d',
	"zwj":       '\u200d',
	"zwnj":      '\u200c',
}

// unicodeRune interprets the parameter of \uN, which is a signed 16-bit value.
func unicodeRune(n int) rune {
	if n < 0 {
		n += 0x10000
	}
	return rune(n)
}
