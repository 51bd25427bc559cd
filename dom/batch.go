package dom

import (
	"golang.org/x/net/html"
)

// Batch is an ordered group of nodes to be inserted as siblings under one
// parent, in a single operation. It plays the part of a document fragment.
type Batch []*html.Node

// ToBatch collects nodes into a new Batch, dropping nil entries.
func ToBatch(nodes ...*html.Node) Batch {
	b := make(Batch, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			b = append(b, n)
		}
	}
	return b
}

// BatchOf accepts a single node, a slice of nodes or a Batch and returns
// a new Batch with all non-nil nodes in order. Other values result in an
// empty Batch.
func BatchOf(elems any) Batch {
	switch e := elems.(type) {
	case nil:
		return Batch{}
	case *html.Node:
		return ToBatch(e)
	case []*html.Node:
		return ToBatch(e...)
	case Batch:
		return ToBatch(e...)
	case []any:
		b := make(Batch, 0, len(e))
		for _, x := range e {
			b = append(b, BatchOf(x)...)
		}
		return b
	}
	tracer().Infof("cannot insert value of type %T into the DOM", elems)
	return Batch{}
}

// Len is the number of nodes in b.
func (b Batch) Len() int {
	return len(b)
}
