package render

// RenderContext is the content-type mode of one render.
type RenderContext struct {
	HTML       bool
	Hyperlinks bool
}

// NewRenderContext builds a context. Hyperlinks are only honoured in HTML mode.
func NewRenderContext(isHTML, hyperlinks bool) RenderContext {
	return RenderContext{
		HTML:       isHTML,
		Hyperlinks: isHTML && hyperlinks,
	}
}
