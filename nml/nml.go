// Package nml parses the markup form produced by Element.NMLContent.
//
// The grammar is the one the serializer emits: nested <tag name="value">
// elements and raw text, tokenized with HTML rules. Tag and attribute names
// are lowercased, attributes keep their order, entities are decoded, CDATA
// sections become text, and whitespace-only text between tags is dropped.
package nml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Attr is one attribute of a parsed element.
type Attr struct {
	Name, Value string
}

// Node is a parsed element or text run. Text nodes have an empty Tag.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// IsText reports whether n is a text run.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// TagName returns the element tag, or "#text" for text runs.
func (n *Node) TagName() string {
	if n.IsText() {
		return "#text"
	}
	return n.Tag
}

// GetAttribute returns the value of the named attribute.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// Parse parses a markup fragment with any number of top-level nodes.
// An end tag closes every element opened after its match; an end tag with no
// open match, or an element left open at the end, is an error.
func Parse(markup string) ([]*Node, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	z.AllowCDATA(true)

	root := &Node{Tag: "#fragment"}
	stack := []*Node{root}
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("nml: %w", err)
			}
			break
		}
		tok := z.Token()
		top := stack[len(stack)-1]
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			n := &Node{Tag: tok.Data}
			for _, a := range tok.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: attrName(a), Value: a.Val})
			}
			top.Children = append(top.Children, n)
			if tt == html.StartTagToken {
				stack = append(stack, n)
			}
		case html.EndTagToken:
			i := len(stack) - 1
			for i > 0 && stack[i].Tag != tok.Data {
				i--
			}
			if i == 0 {
				return nil, fmt.Errorf("nml: unexpected </%s>", tok.Data)
			}
			stack = stack[:i]
		case html.TextToken:
			if strings.TrimSpace(tok.Data) == "" {
				continue
			}
			top.Children = append(top.Children, &Node{Text: tok.Data})
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("nml: unclosed <%s>", stack[len(stack)-1].Tag)
	}
	return root.Children, nil
}

func attrName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}
