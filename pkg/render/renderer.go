package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vango-dev/attrs/pkg/attr"
)

var (
	// ErrUnsafeAttributeName is returned for a flattened attribute name that
	// cannot be written into a tag.
	ErrUnsafeAttributeName = errors.New("render: unsafe attribute name")

	// ErrInvalidTag is returned for an element tag that is not a valid name.
	ErrInvalidTag = errors.New("render: invalid tag name")

	// ErrVoidChildren is returned when a void element is given children.
	ErrVoidChildren = errors.New("render: void element cannot have children")
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Normalizer flattens attribute values. Defaults to attr.New().
	Normalizer *attr.Normalizer
}

// Renderer writes Node trees as HTML. A Renderer holds no per-render state
// and may be shared.
type Renderer struct {
	norm *attr.Normalizer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	norm := config.Normalizer
	if norm == nil {
		norm = attr.New()
	}
	return &Renderer{norm: norm}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter writes a node tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *Node) error {
	return r.renderNode(w, node)
}

// RenderAttributes normalizes attrs and writes them as they would appear in
// an opening tag, each preceded by a space. It returns the entries written.
func (r *Renderer) RenderAttributes(w io.Writer, attrs []attr.Attr) ([]attr.Entry, error) {
	entries, err := r.norm.NormalizeAll(attrs...)
	if err != nil {
		return nil, err
	}
	if err := WriteEntries(w, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WriteEntries writes normalized entries as ` name="value"` or ` name`.
// Names are validated and values escaped.
func WriteEntries(w io.Writer, entries []attr.Entry) error {
	if err := checkEntries(entries); err != nil {
		return err
	}
	return writeEntries(w, entries)
}

func checkEntries(entries []attr.Entry) error {
	for _, e := range entries {
		if !validAttrName(e.Name) {
			return fmt.Errorf("%w: %q", ErrUnsafeAttributeName, e.Name)
		}
	}
	return nil
}

func writeEntries(w io.Writer, entries []attr.Entry) error {
	for _, e := range entries {
		text, ok := e.Value.Value()
		if !ok {
			if _, err := fmt.Fprintf(w, " %s", e.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, e.Name, escapeAttr(text)); err != nil {
			return err
		}
	}
	return nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node)
	case KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *Node) error {
	tag := node.Tag
	if !validTagName(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	// Attribute failures must not leave a half-written tag behind.
	entries, err := r.norm.NormalizeAll(node.Attrs...)
	if err != nil {
		return err
	}

	if err := checkEntries(entries); err != nil {
		return err
	}
	void := IsVoidElement(tag)
	if void && len(node.Children) > 0 {
		return fmt.Errorf("%w: <%s>", ErrVoidChildren, tag)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := writeEntries(w, entries); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if void {
		return nil
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "</%s>", tag)
	return err
}
