package rtfhtml

import "unicode/utf16"

// ignoredDestinations are groups whose content is never document text.
var ignoredDestinations = map[string]bool{
	"fonttbl":            true,
	"colortbl":           true,
	"stylesheet":         true,
	"info":               true,
	"pict":               true,
	"objdata":            true,
	"objclass":           true,
	"listtable":          true,
	"listoverridetable":  true,
	"rsidtbl":            true,
	"filetbl":            true,
	"revtbl":             true,
	"themedata":          true,
	"colorschememapping": true,
	"datastore":          true,
	"latentstyles":       true,
	"generator":          true,
	"xmlnstbl":           true,
	"fldinst":            true,
	"header":             true,
	"headerl":            true,
	"headerr":            true,
	"headerf":            true,
	"footer":             true,
	"footerl":            true,
	"footerr":            true,
	"footerf":            true,
	"ftnsep":             true,
	"ftnsepc":            true,
}

type group struct {
	skip bool
	dest string
	uc   int
}

// walker yields the tokens of an RTF stream that lie outside ignored
// destinations. Group tokens, \uc and \bin are consumed here, as are the
// fallback characters that follow \uN.
type walker struct {
	lex      *lexer
	keep     map[string]bool
	stack    []group
	cur      group
	fresh    bool
	starred  bool
	fallback int
	high     rune
}

// newWalker returns a walker that keeps the content of the named starred
// destinations instead of skipping them.
func newWalker(rtf string, keep ...string) *walker {
	w := &walker{
		lex:  newLexer(rtf),
		keep: make(map[string]bool, len(keep)),
		cur:  group{uc: 1},
	}
	for _, k := range keep {
		w.keep[k] = true
	}
	return w
}

// dest reports the kept destination the walker is in, or "".
func (w *walker) dest() string {
	return w.cur.dest
}

func (w *walker) next() (token, bool) {
	for {
		tok, ok := w.lex.next()
		if !ok {
			return token{}, false
		}

		switch tok.kind {
		case tokGroupStart:
			w.stack = append(w.stack, w.cur)
			w.fresh, w.starred, w.fallback = true, false, 0
			continue
		case tokGroupEnd:
			if n := len(w.stack); n > 0 {
				w.cur = w.stack[n-1]
				w.stack = w.stack[:n-1]
			}
			w.fresh, w.starred, w.fallback = false, false, 0
			continue
		}

		if w.fresh && tok.kind == tokSymbol && tok.b == '*' {
			w.starred = true
			continue
		}
		if w.fresh && tok.kind == tokWord {
			switch {
			case w.starred && w.keep[tok.word]:
				w.cur.dest = tok.word
			case w.starred, ignoredDestinations[tok.word]:
				w.cur.skip = true
			}
		}
		w.fresh, w.starred = false, false

		if tok.kind == tokWord && tok.word == "bin" && tok.param > 0 {
			w.lex.pos += tok.param
			continue
		}
		if w.cur.skip {
			continue
		}
		if w.fallback > 0 {
			w.fallback--
			continue
		}

		if tok.kind == tokWord {
			switch tok.word {
			case "uc":
				w.cur.uc = tok.param
				continue
			case "u":
				w.fallback = w.cur.uc
			}
		}
		return tok, true
	}
}

// unicode decodes the parameter of \uN. A high surrogate is held until the
// low surrogate that completes it.
func (w *walker) unicode(n int) (rune, bool) {
	r := unicodeRune(n)
	switch {
	case utf16.IsSurrogate(r) && r < 0xdc00:
		w.high = r
		return 0, false
	case utf16.IsSurrogate(r):
		high := w.high
		w.high = 0
		if high == 0 {
			return 0, false
		}
		return utf16.DecodeRune(high, r), true
	}
	w.high = 0
	return r, true
}
