package render

import "strings"

const (
	textSpecials = `&<>"'`
	attrSpecials = "&<>\"'\n\r\t"
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, textSpecials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	writeEscaped(&b, s, false)
	return b.String()
}

// escapeAttr escapes text for a double-quoted attribute value. Newlines,
// carriage returns and tabs are written as character references so values
// survive round trips through the parser unchanged.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, attrSpecials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	writeEscaped(&b, s, true)
	return b.String()
}

func writeEscaped(b *strings.Builder, s string, attr bool) {
	last := 0
	for i := 0; i < len(s); i++ {
		var ref string
		switch s[i] {
		case '&':
			ref = "&amp;"
		case '<':
			ref = "&lt;"
		case '>':
			ref = "&gt;"
		case '"':
			ref = "&quot;"
		case '\'':
			ref = "&#39;"
		case '\n':
			if attr {
				ref = "&#10;"
			}
		case '\r':
			if attr {
				ref = "&#13;"
			}
		case '\t':
			if attr {
				ref = "&#9;"
			}
		}
		if ref == "" {
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(ref)
		last = i + 1
	}
	b.WriteString(s[last:])
}

// validAttrName reports whether name can be written into a tag unquoted.
// It rejects the characters the HTML tokenizer treats as delimiters.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c <= ' ', c == 0x7f:
			return false
		case c == '"', c == '\'', c == '>', c == '/', c == '=', c == '<':
			return false
		}
	}
	return true
}

// validTagName reports whether tag is an ASCII letter followed by letters,
// digits or dashes (custom elements).
func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}
