package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Event is passed to event handlers on dispatch.
type Event struct {
	Type   string     // event name, e.g. "click"
	Target *html.Node // node the event has been dispatched to
}

// Handler is an event listener.
type Handler func(Event)

// AddEventListener registers h as a listener for event on node n.
// Listeners are called in the order of registration. A nil handler is ignored.
// It returns a function to remove the listener again.
func (d *Document) AddEventListener(n *html.Node, event string, h Handler) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.addListener(n, event, h)
	if !ok {
		return func() {}
	}
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.removeListener(n, strings.ToLower(event), id)
	}
}

func (d *Document) addListener(n *html.Node, event string, h Handler) (uint64, bool) {
	if n == nil || h == nil || event == "" {
		return 0, false
	}
	event = strings.ToLower(event)
	byEvent := d.listeners[n]
	if byEvent == nil {
		byEvent = make(map[string][]listenerRef)
		d.listeners[n] = byEvent
	}
	d.serial++
	byEvent[event] = append(byEvent[event], listenerRef{id: d.serial, handler: h})
	tracer().Debugf("listener for %q added to <%s>", event, n.Data)
	return d.serial, true
}

func (d *Document) removeListener(n *html.Node, event string, id uint64) {
	refs := d.listeners[n][event]
	for i, r := range refs {
		if r.id == id {
			d.listeners[n][event] = append(refs[:i:i], refs[i+1:]...)
			if len(d.listeners[n][event]) == 0 {
				delete(d.listeners[n], event)
			}
			if len(d.listeners[n]) == 0 {
				delete(d.listeners, n)
			}
			return
		}
	}
}

// ReleaseListeners drops all listeners of n and its descendants.
//
// Listeners stay registered when a node is detached, as it may be inserted
// again. Clients discarding a subtree for good should release its listeners,
// otherwise the document keeps the nodes reachable.
func (d *Document) ReleaseListeners(n *html.Node) {
	if n == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	cnt := 0
	var release func(*html.Node)
	release = func(n *html.Node) {
		if _, ok := d.listeners[n]; ok {
			delete(d.listeners, n)
			cnt++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			release(c)
		}
	}
	release(n)
	tracer().Debugf("released listeners of %d node(s)", cnt)
}

// Listeners returns the number of listeners registered for event on n.
func (d *Document) Listeners(n *html.Node, event string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[n][strings.ToLower(event)])
}

// Dispatch calls every listener registered for event on n and returns the
// number of listeners called. Events do not bubble.
//
// Listeners are called without holding the document lock, so they may
// manipulate the document.
func (d *Document) Dispatch(n *html.Node, event string) int {
	event = strings.ToLower(event)
	d.mu.RLock()
	refs := append([]listenerRef(nil), d.listeners[n][event]...)
	d.mu.RUnlock()
	ev := Event{Type: event, Target: n}
	for _, r := range refs {
		r.handler(ev)
	}
	return len(refs)
}
