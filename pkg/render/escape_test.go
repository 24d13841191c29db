package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
		attr  string
	}{
		{"empty", "", "", ""},
		{"plain", "bg-red-500 rounded", "bg-red-500 rounded", "bg-red-500 rounded"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry", "Tom &amp; Jerry"},
		{"angle brackets", "a < b > c", "a &lt; b &gt; c", "a &lt; b &gt; c"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;", "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s", "it&#39;s"},
		{"existing reference", "&amp;", "&amp;amp;", "&amp;amp;"},
		{"newline kept in text", "line1\nline2", "line1\nline2", "line1&#10;line2"},
		{"carriage return kept in text", "a\rb", "a\rb", "a&#13;b"},
		{"tab kept in text", "col1\tcol2", "col1\tcol2", "col1&#9;col2"},
		{"whitespace run", "a\n\r\tb", "a\n\r\tb", "a&#10;&#13;&#9;b"},
		{"whitespace only", "\n", "\n", "&#10;"},
		{
			"script",
			"<script>alert('x')</script>",
			"&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
			"&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;",
		},
		{
			"json in data attribute",
			`{"id": 1, "tags": ["a&b"]}`,
			`{&quot;id&quot;: 1, &quot;tags&quot;: [&quot;a&amp;b&quot;]}`,
			`{&quot;id&quot;: 1, &quot;tags&quot;: [&quot;a&amp;b&quot;]}`,
		},
		{"special at both ends", "\"x\n", "&quot;x\n", "&quot;x&#10;"},
		{"unicode", "Hello 世界 🌍", "Hello 世界 🌍", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.text {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.text)
			}
			if got := escapeAttr(tt.input); got != tt.attr {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.attr)
			}
		})
	}
}

func TestValidAttrName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"class", true},
		{"data-name-first-name", true},
		{"data-name_first_name", true},
		{"aria-label", true},
		{"x:y", true},
		{"", false},
		{"a b", false},
		{"a\tb", false},
		{`a"b`, false},
		{"a'b", false},
		{"a>b", false},
		{"a/b", false},
		{"a=b", false},
		{"a<b", false},
	}

	for _, tt := range tests {
		if got := validAttrName(tt.name); got != tt.valid {
			t.Errorf("validAttrName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestValidTagName(t *testing.T) {
	tests := []struct {
		tag   string
		valid bool
	}{
		{"div", true},
		{"H1", true},
		{"my-widget", true},
		{"", false},
		{"1div", false},
		{"-x", false},
		{"di v", false},
		{"div>", false},
	}

	for _, tt := range tests {
		if got := validTagName(tt.tag); got != tt.valid {
			t.Errorf("validTagName(%q) = %v, want %v", tt.tag, got, tt.valid)
		}
	}
}

func BenchmarkEscapeHTML(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a plain text string without special characters."
		for i := 0; i < b.N; i++ {
			escapeHTML(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			escapeHTML(s)
		}
	})
}

func BenchmarkEscapeAttr(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "simple-value"
		for i := 0; i < b.N; i++ {
			escapeAttr(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `value="test" with 'quotes' & newlines
and tabs	here`
		for i := 0; i < b.N; i++ {
			escapeAttr(s)
		}
	})
}
