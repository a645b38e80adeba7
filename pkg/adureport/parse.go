// SPDX-License-Identifier: GPL-3.0-or-later

package adureport

import (
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var reportRootExpr = xpath.MustCompile("/" + tagReport)

// ParseFile reads and parses the ADU report at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return root, nil
}

// Parse reads an ADU report and returns its ADUReport root element.
func Parse(r io.Reader) (*Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("invalid XML: %w", err)
	}

	elem := xmlquery.QuerySelector(doc, reportRootExpr)
	if elem == nil {
		return nil, fmt.Errorf("%w: no %s root element", ErrNotADUReport, tagReport)
	}

	return convert(elem), nil
}

func convert(elem *xmlquery.Node) *Node {
	attrs := make(map[string]string, len(elem.Attr))
	for _, a := range elem.Attr {
		attrs[a.Name.Local] = a.Value
	}

	n := NewNode(elem.Data, attrs)
	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			n.Children = append(n.Children, convert(c))
		}
	}
	return n
}
