// SPDX-License-Identifier: GPL-3.0-or-later

package adureport

import "fmt"

// Kind classifies a report element by its tag.
type Kind uint8

const (
	KindOther Kind = iota
	KindReport
	KindDevice
	KindMetaStructure
	KindMetaProperty
)

const (
	tagReport        = "ADUReport"
	tagDevice        = "Device"
	tagMetaStructure = "MetaStructure"
	tagMetaProperty  = "MetaProperty"
)

func (k Kind) String() string {
	switch k {
	case KindReport:
		return tagReport
	case KindDevice:
		return tagDevice
	case KindMetaStructure:
		return tagMetaStructure
	case KindMetaProperty:
		return tagMetaProperty
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func kindOf(tag string) Kind {
	switch tag {
	case tagReport:
		return KindReport
	case tagDevice:
		return KindDevice
	case tagMetaStructure:
		return KindMetaStructure
	case tagMetaProperty:
		return KindMetaProperty
	default:
		return KindOther
	}
}

// Node is one element of an ADU report.
//
// Attributes are optional by nature: every accessor reports whether the
// attribute was present, and callers decide per field whether absence is
// recoverable.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// NewNode returns a node whose Kind is derived from tag.
func NewNode(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Kind:     kindOf(tag),
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) ID() (string, bool)            { return n.Attr("id") }
func (n *Node) Value() (string, bool)         { return n.Attr("value") }
func (n *Node) DeviceType() (string, bool)    { return n.Attr("deviceType") }
func (n *Node) MarketingName() (string, bool) { return n.Attr("marketingName") }

// ChildByID returns the first child whose id attribute equals id, or nil.
func (n *Node) ChildByID(id string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if v, ok := c.ID(); ok && v == id {
			return c
		}
	}
	return nil
}

func (n *Node) String() string {
	if id, ok := n.ID(); ok {
		return fmt.Sprintf("%s[id=%q]", n.Tag, id)
	}
	return n.Tag
}
