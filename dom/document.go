package dom

import (
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidTag is returned if an element is to be created with a tag name
// which is not a valid HTML element name.
var ErrInvalidTag = errors.New("invalid element tag name")

// ErrNotAnElement is returned for operations requiring an element node.
var ErrNotAnElement = errors.New("node is not an element")

// Document is the host of a DOM tree. Every DOM node created or manipulated
// by this package belongs to a Document, which guards all tree mutation.
//
// Nodes are plain golang.org/x/net/html nodes. Clients are free to read them,
// but should modify them only through the Document as long as other goroutines
// (e.g., a pending AttachToBody) may access the tree.
type Document struct {
	mu        sync.RWMutex
	root      *html.Node                              // node of type html.DocumentNode
	listeners map[*html.Node]map[string][]listenerRef // event listeners per node, see ReleaseListeners
	serial    uint64                                  // for listener identity
}

type listenerRef struct {
	id      uint64
	handler Handler
}

// NewDocument creates an empty HTML document, consisting of
//
//    <html><head></head></html>
//
// Note that the document has no body. Use EnsureBody to create one.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlElem := newElement("html")
	htmlElem.AppendChild(newElement("head"))
	root.AppendChild(htmlElem)
	return wrap(root)
}

// ParseDocument reads an HTML document. The HTML parser always synthesizes
// <html>, <head> and <body>, so parsed documents have a body.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return wrap(root), nil
}

func wrap(root *html.Node) *Document {
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]listenerRef),
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the <body> element, or nil if the document does not (yet)
// have one.
func (d *Document) Body() *html.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.body()
}

func (d *Document) body() *html.Node {
	h := d.documentElement()
	if h == nil {
		return nil
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Body {
			return c
		}
	}
	return nil
}

func (d *Document) documentElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}

// EnsureBody returns the <body> element, creating it if necessary.
func (d *Document) EnsureBody() *html.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	if b := d.body(); b != nil {
		return b
	}
	h := d.documentElement()
	if h == nil {
		h = newElement("html")
		d.root.AppendChild(h)
	}
	b := newElement("body")
	h.AppendChild(b)
	tracer().Debugf("document body created")
	return b
}

// --- Node creation ---------------------------------------------------------

// CreateElement creates a new, detached element node.
// Tag names are case-insensitive and stored in lower case.
// If tag is not a valid element name, ErrInvalidTag is returned.
func (d *Document) CreateElement(tag string) (*html.Node, error) {
	if !isValidTagName(tag) {
		tracer().Errorf("cannot create element with tag name %q", tag)
		return nil, ErrInvalidTag
	}
	return newElement(tag), nil
}

// CreateText creates a new, detached text node.
func (d *Document) CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func newElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// isValidTagName checks for an ASCII letter followed by letters, digits
// or one of "-_.:". This is stricter than the XML name production, but
// covers HTML elements as well as custom elements.
func isValidTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '-' || r == '_' || r == '.' || r == ':'):
		default:
			return false
		}
	}
	return true
}

// --- Attributes ------------------------------------------------------------

// SetAttribute sets an attribute of an element node. An existing attribute
// with the same key is overwritten.
func (d *Document) SetAttribute(n *html.Node, key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	setAttr(n, key, value)
}

// Attribute returns the value of an attribute and true, or false if the
// attribute is not set.
func (d *Document) Attribute(n *html.Node, key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return attr(n, key)
}

// RemoveAttribute deletes an attribute, if present.
func (d *Document) RemoveAttribute(n *html.Node, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n == nil {
		return
	}
	key = strings.ToLower(key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func setAttr(n *html.Node, key, value string) {
	if n == nil || n.Type != html.ElementNode {
		return
	}
	key = strings.ToLower(key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// --- Content ---------------------------------------------------------------

// SetText replaces all children of n by a single text node.
// An empty text leaves n without children.
func (d *Document) SetText(n *html.Node, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	setText(n, text)
}

func setText(n *html.Node, text string) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		n.Data = text
		return
	}
	removeChildren(n)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// SetHTML replaces all children of element n by the nodes resulting from
// parsing markup in the context of n. Errors from the HTML parser are
// returned unchanged; in this case n is left untouched.
func (d *Document) SetHTML(n *html.Node, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return setHTML(n, markup)
}

func setHTML(n *html.Node, markup string) error {
	if n == nil || n.Type != html.ElementNode {
		return ErrNotAnElement
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return err
	}
	removeChildren(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// TextContent returns the concatenated text of n and all its descendents.
func (d *Document) TextContent(n *html.Node) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var b strings.Builder
	textContent(n, &b)
	return b.String()
}

func textContent(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if NodeIsText(n) {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, b)
	}
}

// Render writes the document as HTML to w.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return html.Render(w, d.root)
}
