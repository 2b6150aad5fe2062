// Package render flattens compiled content to plain text or HTML.
package render

import (
	"fmt"
	"html"
	"strings"

	"docnum/internal/content"
)

// Plain renders content as display text. Top-level blocks are separated by
// blank lines; inline structure is concatenated.
func Plain(c content.Content) string {
	if c == nil {
		return ""
	}
	if seq, ok := c.(content.Seq); ok {
		var parts []string
		for _, child := range seq {
			if t := Plain(child); strings.TrimSpace(t) != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n\n")
	}
	return c.Plain()
}

// HTML renders content as an HTML fragment.
func HTML(c content.Content) string {
	var b strings.Builder
	writeHTML(&b, c)
	return b.String()
}

func writeHTML(b *strings.Builder, c content.Content) {
	switch v := c.(type) {
	case nil:
	case content.Text:
		t := html.EscapeString(string(v))
		b.WriteString(strings.ReplaceAll(t, content.NBSP, "&#160;"))
	case content.Seq:
		for _, child := range v {
			writeHTML(b, child)
		}
	case content.VSpace:
		fmt.Fprintf(b, `<div class="gap" style="height:%.2fem"></div>`, float64(v.Amount))
	case content.Block:
		b.WriteString(blockOpen(v))
		writeHTML(b, v.Body)
		b.WriteString(blockClose(v))
	case content.Image:
		fmt.Fprintf(b, `<img src=%q alt=%q>`, v.Src, v.Alt)
	case content.Table:
		writeTable(b, v)
	default:
		b.WriteString(html.EscapeString(c.Plain()))
	}
}

func blockOpen(v content.Block) string {
	if v.Breakable {
		return "<p>"
	}
	classes := "unbreakable"
	if v.Centered {
		classes += " centered"
	}
	return fmt.Sprintf(`<div class=%q>`, classes)
}

func blockClose(v content.Block) string {
	if v.Breakable {
		return "</p>\n"
	}
	return "</div>\n"
}

func writeTable(b *strings.Builder, t content.Table) {
	b.WriteString("<table>")
	if len(t.Header) > 0 {
		b.WriteString("<thead><tr>")
		for _, h := range t.Header {
			b.WriteString("<th>" + html.EscapeString(h) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}
