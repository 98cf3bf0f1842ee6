package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emurenMRz/mboxrender/internal/render"
)

// itemFile is a loosely typed item with an optional body, as written by
// exporters of non-mail items. Times are RFC 3339 strings.
type itemFile struct {
	Kind   string         `yaml:"kind"`
	Fields map[string]any `yaml:"fields"`
	Body   struct {
		HTML string  `yaml:"html"`
		RTF  *string `yaml:"rtf"`
		Text *string `yaml:"text"`
	} `yaml:"body"`
}

func renderItemFile(w io.Writer, renderer *render.Renderer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading item %s: %w", path, err)
	}

	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing item %s: %w", path, err)
	}

	item, err := render.FromMap(render.ParseKind(f.Kind), f.Fields)
	if err != nil {
		return fmt.Errorf("item %s: %w", path, err)
	}

	body := render.Body{HTML: f.Body.HTML, RTF: f.Body.RTF, Text: f.Body.Text}
	doc, _, err := renderer.Render(item, body)
	if err != nil {
		return fmt.Errorf("item %s: %w", path, err)
	}
	fmt.Fprint(w, doc)
	return nil
}
