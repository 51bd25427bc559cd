package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/fpdom/maybe"
	"golang.org/x/net/html"
)

// FindByID searches the document for the first element with the given id.
func (d *Document) FindByID(id string) maybe.Maybe[*html.Node] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := FirstMatch(d.root, NodeHasID(id))
	return maybe.Of(n, n != nil)
}

// FindBySelector searches for the first element below scope matching a CSS
// selector, e.g. ".menu > li" or `[href="/index"]`. If scope is nil, the
// whole document is searched. Invalid selectors match nothing.
func (d *Document) FindBySelector(selector string, scope *html.Node) maybe.Maybe[*html.Node] {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Infof("invalid selector %q: %v", selector, err)
		return maybe.Nothing[*html.Node]()
	}
	if scope == nil {
		scope = d.root
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := cascadia.Query(scope, sel) // descendants only, as querySelector does
	return maybe.Of(n, n != nil)
}

// ByID returns the first element with the given id. If there is none, a new
// detached, empty <div> is returned.
func (d *Document) ByID(id string) *html.Node {
	return d.FindByID(id).OrElse(d.fallback)
}

// BySelector returns the first element below scope matching selector (see
// FindBySelector). If there is none, a new detached, empty <div> is returned.
func (d *Document) BySelector(selector string, scope *html.Node) *html.Node {
	return d.FindBySelector(selector, scope).OrElse(d.fallback)
}

func (d *Document) fallback() *html.Node {
	tracer().Debugf("no match, returning detached <div>")
	return newElement("div")
}

// Remove detaches n from its parent. It is a no-op for nil or detached nodes.
// Event listeners of n are kept; see ReleaseListeners.
func (d *Document) Remove(n *html.Node) {
	if n == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
