package dom

import "strings"

// voidElements cannot have children and self-close in serialization.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// OuterHTML serializes the element with attributes sorted for
// deterministic output.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, name := range e.AttributeNames() {
		value := e.attrs[name]
		b.WriteByte(' ')
		b.WriteString(name)
		if value != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	if voidElements[e.tag] {
		return b.String()
	}
	for _, c := range e.children {
		b.WriteString(c.OuterHTML())
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
	return b.String()
}

// InnerHTML serializes the element's children only.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.OuterHTML())
	}
	return b.String()
}

// OuterHTML serializes the text node with HTML escaping.
func (t *Text) OuterHTML() string {
	return escapeText(t.data)
}

// OuterHTML serializes the fragment's children back to back.
func (f *Fragment) OuterHTML() string {
	var b strings.Builder
	for _, c := range f.children {
		b.WriteString(c.OuterHTML())
	}
	return b.String()
}

// TextContent returns the concatenated text of the subtree.
func TextContent(n Node) string {
	switch v := n.(type) {
	case *Text:
		return v.data
	case *Element:
		var b strings.Builder
		for _, c := range v.children {
			b.WriteString(TextContent(c))
		}
		return b.String()
	case *Fragment:
		var b strings.Builder
		for _, c := range v.children {
			b.WriteString(TextContent(c))
		}
		return b.String()
	default:
		return ""
	}
}

// escapeText escapes text for safe inclusion in HTML content.
func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// escapeAttr escapes text for safe inclusion in attribute values.
func escapeAttr(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
