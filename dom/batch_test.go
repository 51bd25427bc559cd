package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestToBatchDropsNil(t *testing.T) {
	doc := NewDocument()
	a := mustBuild(t, doc, "i", NodeConfig{})
	b := mustBuild(t, doc, "b", NodeConfig{})
	batch := ToBatch(a, nil, b)
	assert.Equal(t, Batch{a, b}, batch)
}

func TestBatchOf(t *testing.T) {
	doc := NewDocument()
	a := mustBuild(t, doc, "i", NodeConfig{})
	b := mustBuild(t, doc, "b", NodeConfig{})
	var none *html.Node
	assert.Equal(t, Batch{a}, BatchOf(a))
	assert.Equal(t, Batch{}, BatchOf(none))
	assert.Equal(t, Batch{}, BatchOf(nil))
	assert.Equal(t, Batch{}, BatchOf("text"))
	assert.Equal(t, Batch{a, b}, BatchOf([]*html.Node{a, nil, b}))
	assert.Equal(t, Batch{b, a}, BatchOf([]any{b, nil, []*html.Node{a}}))
}

func TestBatchIsFresh(t *testing.T) {
	doc := NewDocument()
	a := mustBuild(t, doc, "i", NodeConfig{})
	in := Batch{a}
	out := BatchOf(in)
	out[0] = nil
	assert.Same(t, a, in[0], "BatchOf must not share the input slice")
}
