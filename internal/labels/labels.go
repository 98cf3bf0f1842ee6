// Package labels provides the localized label tables used when rendering
// header blocks.
package labels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/emurenMRz/mboxrender/internal/render"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Table is the label set of one locale. Labels missing from the locale fall
// back to English, then to the label identifier.
type Table struct {
	tag      language.Tag
	labels   map[render.LabelID]string
	fallback *Table
}

type tableFile struct {
	Locale string            `yaml:"locale"`
	Labels map[string]string `yaml:"labels"`
}

var (
	loadOnce sync.Once
	loadErr  error
	tables   []*Table
	tags     []language.Tag
	matcher  language.Matcher
)

func loadTables() {
	entries, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		loadErr = err
		return
	}

	var english *Table
	for _, name := range entries {
		t, err := parseTable(name)
		if err != nil {
			loadErr = err
			return
		}
		if t.tag == language.English {
			english = t
		}
		tables = append(tables, t)
	}
	if english == nil {
		loadErr = fmt.Errorf("labels: no English table in %v", entries)
		return
	}

	// English first so it wins when nothing matches.
	for i, t := range tables {
		if t == english {
			tables[0], tables[i] = tables[i], tables[0]
		}
	}
	for _, t := range tables {
		if t != english {
			t.fallback = english
		}
		tags = append(tags, t.tag)
	}
	matcher = language.NewMatcher(tags)
}

func parseTable(name string) (*Table, error) {
	data, err := localeFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	locale := file.Locale
	if locale == "" {
		locale = path.Base(name[:len(name)-len(path.Ext(name))])
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: locale %q: %w", name, locale, err)
	}

	t := &Table{tag: tag, labels: make(map[render.LabelID]string, len(file.Labels))}
	for k, v := range file.Labels {
		t.labels[render.LabelID(k)] = v
	}
	return t, nil
}

// Load returns the table best matching locale, an IETF BCP 47 tag or an
// Accept-Language style list. Unknown locales get the English table.
func Load(locale string) (*Table, error) {
	loadOnce.Do(loadTables)
	if loadErr != nil {
		return nil, loadErr
	}

	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return tables[0], nil
	}
	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return tables[0], nil
	}
	return tables[index], nil
}

// Available lists the locales that have a table.
func Available() ([]language.Tag, error) {
	loadOnce.Do(loadTables)
	if loadErr != nil {
		return nil, loadErr
	}
	return append([]language.Tag(nil), tags...), nil
}

// Tag returns the locale of t.
func (t *Table) Tag() language.Tag {
	return t.tag
}

// Label implements render.Labels.
func (t *Table) Label(id render.LabelID) string {
	if s, ok := t.labels[id]; ok {
		return s
	}
	if t.fallback != nil {
		return t.fallback.Label(id)
	}
	return string(id)
}
