// Package render writes HTML elements whose attributes are flattened by
// package attr.
//
// The renderer is the collaborator the normalizer hands its entries to: it
// validates flattened names, escapes text values and joins attributes with a
// single space. It is intentionally small and has no notion of documents,
// components or hydration.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(render.El("div", []attr.Attr{
//	    render.A("class", []string{"bg-red-500", "rounded"}),
//	    render.A("data", map[attr.Symbol]any{"user_id": 7}),
//	}, render.Text("Hi")))
//	// <div class="bg-red-500 rounded" data-user-id="7">Hi</div>
//
// # Security
//
// Text nodes and attribute values are escaped. Attribute names produced by
// flattening are checked and rejected with ErrUnsafeAttributeName when they
// contain whitespace, quotes or tag delimiters. Raw nodes are written as is
// and must only carry trusted markup.
package render
