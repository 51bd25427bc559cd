package dom

import (
	"errors"
	"strings"

	"github.com/npillmayer/fpdom"
	"github.com/npillmayer/fpdom/maybe"
	"github.com/npillmayer/fpdom/result"
	"golang.org/x/net/html"
)

// ErrIncomplete is returned by Built for constructors still waiting for
// arguments.
var ErrIncomplete = errors.New("element constructor is not fully applied")

// Constructor is a curried element constructor. Its arguments are, in
// order: tag name, class string and configuration. The configuration may be
// of any type understood by ConfigFrom.
type Constructor = fpdom.Curried[result.Result[*html.Node]]

// Build creates a new element with tag name tag, decorates it as described
// by conf, and sets className (trimmed) as its class attribute if it is
// non-empty. See NodeConfig for the order in which conf is applied.
//
// Build returns ErrInvalidTag for invalid tag names, and errors of the HTML
// parser if conf.HTML cannot be parsed.
func (d *Document) Build(tag, className string, conf NodeConfig) (*html.Node, error) {
	return d.build(tag, className, conf, true)
}

func (d *Document) build(tag, className string, conf NodeConfig, mapping bool) (*html.Node, error) {
	elem, err := d.CreateElement(tag)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if text, ok := maybe.Get(conf.Text); ok {
		setText(elem, text)
	}
	if markup, ok := maybe.Get(conf.HTML); ok {
		if err := setHTML(elem, markup); err != nil {
			return nil, err
		}
	}
	for _, event := range sortedKeys(conf.On) {
		d.addListener(elem, event, conf.On[event])
	}
	if mapping {
		for _, key := range sortedKeys(conf.Attrs) {
			setAttr(elem, key, conf.Attrs[key])
		}
		setDataset(elem, conf.Data)
	}
	if conf.Style != "" {
		style, _ := NormalizeStyle(conf.Style)
		setAttr(elem, "style", style)
	}
	if class := strings.TrimSpace(className); class != "" {
		setAttr(elem, "class", class)
	}
	tracer().Debugf("built element <%s>", elem.Data)
	return elem, nil
}

// Element returns a curried element constructor, expecting tag name,
// class string and configuration. Arguments may be supplied in any number
// of steps:
//
//    button := doc.Element().Apply("button")
//    ok, err := dom.Built(button.Apply("primary", dom.Text("OK")))
//
// Tag name and class are formatted as strings; a nil class counts as empty.
// A configuration which is not a mapping (see ConfigFrom) is treated as
// "nothing to set".
func (d *Document) Element() Constructor {
	return fpdom.Curry(3, func(args ...any) result.Result[*html.Node] {
		conf, mapping := ConfigFrom(args[2])
		return result.From(d.build(stringify(args[0]), stringify(args[1]), conf, mapping))
	})
}

// Div returns a curried constructor for <div> elements, expecting
// class string and configuration.
func (d *Document) Div() Constructor {
	return d.Element().Apply("div")
}

// Built unwraps the element from a fully applied constructor.
func Built(c Constructor) (*html.Node, error) {
	r, ok := c.Result()
	if !ok {
		return nil, ErrIncomplete
	}
	return r.Get()
}
