package parser

import (
	"fmt"
	"io"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Heading tags become heading elements,
// <figure> and bare <img> tags become figure elements.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	out := &compile.Document{
		Title: titleFromFilename(filename, ".html", ".htm"),
	}

	// Prefer the <title> tag if present.
	if title := findTitle(doc); title != "" {
		out.Title = title
	}

	var currentText strings.Builder

	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			out.Elements = append(out.Elements, &element.Paragraph{
				Body: content.Text(t),
			})
		}
		currentText.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				flushText()
				out.Elements = append(out.Elements, &element.Heading{
					Level: level,
					Title: textContent(n),
				})
				return // Don't recurse into heading children (already extracted text).
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "figure":
				flushText()
				if fig := figureFromNode(n); fig != nil {
					out.Elements = append(out.Elements, fig)
				}
				return
			case "img":
				flushText()
				out.Elements = append(out.Elements, &element.Figure{
					Body: imageFromNode(n),
				})
				return
			case "p", "li", "td", "blockquote":
				t := textContent(n)
				if t != "" {
					if currentText.Len() > 0 {
						currentText.WriteString("\n\n")
					}
					currentText.WriteString(t)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flushText()

	return out, nil
}

// figureFromNode converts a <figure> element: its first <img> supplies the
// body and its <figcaption> text the caption.
func figureFromNode(n *html.Node) *element.Figure {
	fig := &element.Figure{Body: content.Empty()}
	var caption string

	var scan func(*html.Node)
	scan = func(c *html.Node) {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "img":
				if fig.Body.Empty() {
					fig.Body = imageFromNode(c)
				}
				return
			case "figcaption":
				caption = textContent(c)
				return
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			scan(child)
		}
	}
	scan(n)

	if caption != "" {
		fig.Caption = content.Text(caption)
	}
	if fig.Body.Empty() && caption == "" {
		return nil
	}
	return fig
}

func imageFromNode(n *html.Node) content.Image {
	var img content.Image
	for _, attr := range n.Attr {
		switch attr.Key {
		case "src":
			img.Src = attr.Val
		case "alt":
			img.Alt = attr.Val
		}
	}
	return img
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
