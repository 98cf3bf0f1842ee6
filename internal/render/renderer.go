package render

import "fmt"

// Renderer synthesizes header blocks and merges them into message bodies.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	labels     Labels
	converter  Converter
	hyperlinks bool
	strict     bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConverter sets the RTF to HTML converter used for RTF bodies.
func WithConverter(c Converter) Option {
	return func(r *Renderer) { r.converter = c }
}

// WithHyperlinks renders addresses and attachments as links in HTML output.
func WithHyperlinks(v bool) Option {
	return func(r *Renderer) { r.hyperlinks = v }
}

// WithStrict makes empty required fields an error instead of an empty line.
func WithStrict(v bool) Option {
	return func(r *Renderer) { r.strict = v }
}

// New returns a Renderer that resolves labels through labels.
func New(labels Labels, opts ...Option) *Renderer {
	r := &Renderer{labels: labels}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves body, builds the header block for item and returns the merged
// document along with its content type.
func (r *Renderer) Render(item Item, body Body) (string, bool, error) {
	if !supported(item) {
		return "", false, fmt.Errorf("rendering: %w: %T", ErrUnsupportedItemType, item)
	}

	content, isHTML, err := ResolveBody(body, r.converter)
	if err != nil {
		return "", false, err
	}

	header, err := r.Header(item, NewRenderContext(isHTML, r.hyperlinks))
	if err != nil {
		return "", false, err
	}
	return Merge(content, header, isHTML), isHTML, nil
}

// Header builds only the header block for item.
func (r *Renderer) Header(item Item, rc RenderContext) (string, error) {
	rc = NewRenderContext(rc.HTML, rc.Hyperlinks)

	t, err := BuildTemplate(item, rc, r.labels)
	if err != nil {
		return "", err
	}
	if r.strict && len(t.Missing) > 0 {
		return "", &MissingFieldError{Kind: t.Kind, Field: t.Missing[0]}
	}
	return t.Render(rc), nil
}

func supported(item Item) bool {
	switch it := item.(type) {
	case *Email:
		return it != nil
	case *Appointment:
		return it != nil
	case *Contact:
		return it != nil
	case *Task:
		return it != nil
	case *Keyed:
		return it != nil
	}
	return false
}
