package rtfhtml

type tokenKind int

const (
	tokText tokenKind = iota
	tokGroupStart
	tokGroupEnd
	tokWord   // \word or \wordN
	tokSymbol // \ followed by a single non-letter
	tokHex    // \'XX
)

type token struct {
	kind     tokenKind
	word     string
	param    int
	hasParam bool
	b        byte
}

// lexer splits an RTF stream into tokens. Bare CR/LF are dropped.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(rtf string) *lexer {
	return &lexer{data: []byte(rtf)}
}

func (l *lexer) next() (token, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch c {
		case '\r', '\n':
			l.pos++
			continue
		case '{':
			l.pos++
			return token{kind: tokGroupStart}, true
		case '}':
			l.pos++
			return token{kind: tokGroupEnd}, true
		case '\\':
			return l.control(), true
		}
		l.pos++
		return token{kind: tokText, b: c}, true
	}
	return token{}, false
}

func (l *lexer) control() token {
	i := l.pos + 1
	if i >= len(l.data) {
		l.pos = i
		return token{kind: tokSymbol, b: '\\'}
	}

	c := l.data[i]
	if !isAlpha(c) {
		if c == '\'' && i+2 < len(l.data) {
			hi, lo := unhex(l.data[i+1]), unhex(l.data[i+2])
			if hi >= 0 && lo >= 0 {
				l.pos = i + 3
				return token{kind: tokHex, b: byte(hi<<4 | lo)}
			}
		}
		l.pos = i + 1
		return token{kind: tokSymbol, b: c}
	}

	start := i
	for i < len(l.data) && isAlpha(l.data[i]) {
		i++
	}
	tok := token{kind: tokWord, word: string(l.data[start:i])}

	neg := false
	if i < len(l.data) && l.data[i] == '-' && i+1 < len(l.data) && isDigit(l.data[i+1]) {
		neg = true
		i++
	}
	for i < len(l.data) && isDigit(l.data[i]) {
		tok.param = tok.param*10 + int(l.data[i]-'0')
		tok.hasParam = true
		i++
	}
	if neg {
		tok.param = -tok.param
	}

	// A single space delimits the control word and is not content.
	if i < len(l.data) && l.data[i] == ' ' {
		i++
	}
	l.pos = i
	return tok
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func unhex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
