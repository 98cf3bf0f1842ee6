// Package mboxheader inspects raw message header blocks: it dumps them as
// keyed render items and reports header and rendering problems.
package mboxheader

import (
	"bufio"
	"strings"

	"golang.org/x/net/html"

	"github.com/emurenMRz/mboxrender/internal/render"
)

type field struct {
	name   string   // as written
	values []string // one per folded line
}

func (f field) value() string {
	return strings.TrimSpace(strings.Join(f.values, " "))
}

// Headers is a parsed header block that keeps field order and the original
// spelling of field names.
type Headers struct {
	index  map[string]int // lowercased name -> first field
	fields []field
}

func Parse(headers string) Headers {
	fields := parseFields(headers)
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		key := strings.ToLower(f.name)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return Headers{index: index, fields: fields}
}

func parseFields(headers string) (fields []field) {
	var current *field
	scanner := bufio.NewScanner(strings.NewReader(headers))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case line == "":
			return fields
		case strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t"):
			if current != nil {
				current.values = append(current.values, strings.TrimLeft(line, " \t"))
			}
		default:
			i := strings.Index(line, ":")
			if i == -1 {
				current = nil
				continue
			}
			fields = append(fields, field{
				name:   strings.TrimSpace(line[:i]),
				values: []string{strings.TrimSpace(line[i+1:])},
			})
			current = &fields[len(fields)-1]
		}
	}
	return fields
}

// Get returns the unfolded value of the first field named key, matched
// case-insensitively.
func (h Headers) Get(key string) (string, bool) {
	i, ok := h.index[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return h.fields[i].value(), true
}

func (h Headers) Has(key string) bool {
	_, ok := h.index[strings.ToLower(key)]
	return ok
}

func (h Headers) Len() int {
	return len(h.fields)
}

// KeyedItem returns every field in original order, repeated fields included.
func (h Headers) KeyedItem() *render.Keyed {
	k := &render.Keyed{}
	for _, f := range h.fields {
		k.Add(f.name, f.value())
	}
	return k
}

// KeyedItem parses headers and returns them as a keyed render item.
func KeyedItem(headers string) *render.Keyed {
	return Parse(headers).KeyedItem()
}

// HTMLKeyedItem is KeyedItem with values escaped for HTML output. Keyed items
// are rendered verbatim, so raw header text must not reach an HTML document.
func HTMLKeyedItem(headers string) *render.Keyed {
	k := KeyedItem(headers)
	for i := range k.Pairs {
		k.Pairs[i].Value = html.EscapeString(k.Pairs[i].Value)
	}
	return k
}
