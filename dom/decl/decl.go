package decl

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/fpdom/dom"
	"github.com/npillmayer/fpdom/maybe"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// ErrMissingTag is returned for element declarations without a tag name.
var ErrMissingTag = errors.New("element declaration without tag")

// ErrUnknownHandler is returned if a declaration refers to an event handler
// which is not in the handler table.
var ErrUnknownHandler = errors.New("unknown event handler")

// Element is the declaration of a DOM element.
type Element struct {
	Tag      string            `yaml:"tag"`
	Class    string            `yaml:"class,omitempty"`
	Text     *string           `yaml:"text,omitempty"`
	HTML     *string           `yaml:"html,omitempty"`
	Style    string            `yaml:"style,omitempty"`
	Data     map[string]string `yaml:"data,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	On       map[string]string `yaml:"on,omitempty"` // event -> handler name
	Children []Element         `yaml:"children,omitempty"`
}

// Parse reads a list of element declarations. A single element, not
// wrapped in a list, is accepted as well.
func Parse(src []byte) ([]Element, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, err
	}
	var elems []Element
	if len(root.Content) > 0 {
		top := root.Content[0]
		if top.Kind == yaml.MappingNode {
			var single Element
			if err := top.Decode(&single); err != nil {
				return nil, err
			}
			elems = []Element{single}
		} else if err := top.Decode(&elems); err != nil {
			return nil, err
		}
	}
	if err := validate(elems, ""); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %d top-level element declaration(s)", len(elems))
	return elems, nil
}

// Read is like Parse, reading from r.
func Read(r io.Reader) ([]Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

func validate(elems []Element, path string) error {
	for i, e := range elems {
		p := fmt.Sprintf("%s/%d", path, i)
		if e.Tag == "" {
			return fmt.Errorf("%w at %s", ErrMissingTag, p)
		}
		if err := validate(e.Children, p+":"+e.Tag); err != nil {
			return err
		}
	}
	return nil
}

// Build creates detached nodes for elems, with all their descendents, and
// returns the top-level nodes in order. Event handler names are looked up
// in handlers.
func Build(doc *dom.Document, elems []Element, handlers map[string]dom.Handler) ([]*html.Node, error) {
	nodes := make([]*html.Node, 0, len(elems))
	element := doc.Element()
	for _, e := range elems {
		n, err := build(doc, element, e, handlers)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func build(doc *dom.Document, element dom.Constructor, e Element, handlers map[string]dom.Handler) (*html.Node, error) {
	conf, err := e.config(handlers)
	if err != nil {
		return nil, err
	}
	n, err := dom.Built(element.Apply(e.Tag, e.Class, conf))
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", e.Tag, err)
	}
	children := make([]*html.Node, 0, len(e.Children))
	for _, c := range e.Children {
		ch, err := build(doc, element, c, handlers)
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
	}
	doc.Append(n, children...)
	return n, nil
}

// config translates a declaration into a node configuration.
func (e Element) config(handlers map[string]dom.Handler) (dom.NodeConfig, error) {
	conf := dom.NodeConfig{
		Data:  e.Data,
		Attrs: e.Attrs,
		Style: e.Style,
	}
	if e.Text != nil {
		conf.Text = maybe.Just(*e.Text)
	}
	if e.HTML != nil {
		conf.HTML = maybe.Just(*e.HTML)
	}
	if len(e.On) > 0 {
		conf.On = make(map[string]dom.Handler, len(e.On))
		for event, name := range e.On {
			h, ok := handlers[name]
			if !ok {
				tracer().Errorf("<%s> refers to unknown handler %q", e.Tag, name)
				return conf, fmt.Errorf("%w: %q", ErrUnknownHandler, name)
			}
			conf.On[event] = h
		}
	}
	return conf, nil
}

// HandlerNames returns the names of all event handlers referenced by elems
// and their descendents, sorted and without duplicates.
func HandlerNames(elems []Element) []string {
	seen := make(map[string]bool)
	var collect func([]Element)
	collect = func(elems []Element) {
		for _, e := range elems {
			for _, name := range e.On {
				seen[name] = true
			}
			collect(e.Children)
		}
	}
	collect(elems)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
