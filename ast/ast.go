package ast

import "blinkc/report"

// Node is the parent interface of all AST nodes.  Every node records the byte
// span of the source text it was parsed from: the start of its leftmost token
// through the end of its rightmost token.
type Node interface {
	// Span returns the spanning position of the whole node.
	Span() *report.TextSpan
}

// Module is the root of the AST for one compilation unit.  It owns its items
// in source order; item order is significant because IR ids are assigned in
// this order.
type Module struct {
	Items []Item
}

// Item is the interface of all top-level module items.
type Item interface {
	Node
	item()
}
