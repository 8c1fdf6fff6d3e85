package template

import "errors"

// Document wraps a loaded template body together with its origin and the
// frame size resolved from the origin's path. A Document is immutable once
// loaded; a generator holds one per render session.
type Document struct {
	source Source
	body   string
	size   Size
}

// NewDocument validates the template payload and resolves its size from the
// source location.
func NewDocument(src Source, body []byte, fallback Size) (Document, error) {
	if src == nil {
		return Document{}, errors.New("template: source is required")
	}
	if len(body) == 0 {
		return Document{}, errors.New("template: document is empty")
	}
	return Document{
		source: src,
		body:   string(body),
		size:   ParseSize(src.Location(), fallback),
	}, nil
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Body returns the raw template text.
func (d Document) Body() string {
	return d.body
}

// Size returns the frame dimensions resolved from the source path.
func (d Document) Size() Size {
	return d.size
}
