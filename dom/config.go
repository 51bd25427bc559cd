package dom

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/npillmayer/fpdom/maybe"
)

// NodeConfig describes how to decorate a newly created element.
//
// The fields are applied in a fixed order: Text, HTML, On, Data and Attrs,
// Style. As HTML is set after Text, HTML wins if both are present.
// Unset Maybe fields (nil or Nothing) are skipped.
type NodeConfig struct {
	Text  maybe.Maybe[string] // text content, replacing all children
	HTML  maybe.Maybe[string] // raw markup content, replacing all children
	On    map[string]Handler  // event name -> listener
	Data  map[string]string   // merged into the dataset
	Attrs map[string]string   // plain attributes
	Style string              // inline CSS declarations
}

// Text is a shortcut for a configuration setting just the text content.
func Text(s string) NodeConfig {
	return NodeConfig{Text: maybe.Just(s)}
}

// HTML is a shortcut for a configuration setting just the markup content.
func HTML(s string) NodeConfig {
	return NodeConfig{HTML: maybe.Just(s)}
}

// Attrs is a shortcut for a configuration setting just plain attributes.
func Attrs(attrs map[string]string) NodeConfig {
	return NodeConfig{Attrs: attrs}
}

// Keys of a configuration map which are not treated as plain attributes.
const (
	KeyText = "text"
	KeyHTML = "html"
	KeyOn   = "on"
	KeyData = "data"
)

// ConfigFrom converts loosely typed configuration values into a NodeConfig.
// It accepts
//
//    NodeConfig, *NodeConfig, nil, or any map with string keys
//
// For maps, the keys "text", "html", "on" and "data" are consumed and every
// other key becomes a plain attribute, with its value formatted by
// fmt.Sprint. This includes "style": a style given in a map is stored as is,
// whereas NodeConfig.Style is normalized (see NormalizeStyle).
//
// The second return value reports whether conf has been a mapping at all.
// nil counts as an empty mapping. Any other type of value yields an empty
// NodeConfig and false; callers should then skip attribute assignment.
func ConfigFrom(conf any) (NodeConfig, bool) {
	switch c := conf.(type) {
	case nil:
		return NodeConfig{}, true
	case NodeConfig:
		return c, true
	case *NodeConfig:
		if c == nil {
			return NodeConfig{}, true
		}
		return *c, true
	case map[string]string:
		m := make(map[string]any, len(c))
		for k, v := range c {
			m[k] = v
		}
		return configFromMap(m), true
	case map[string]any:
		return configFromMap(c), true
	}
	if m, ok := anyMap(conf); ok {
		return configFromMap(m), true
	}
	tracer().Infof("element configuration of type %T is not a mapping", conf)
	return NodeConfig{}, false
}

func configFromMap(m map[string]any) NodeConfig {
	var conf NodeConfig
	for k, v := range m {
		switch k {
		case KeyText:
			conf.Text = maybe.Just(stringify(v))
		case KeyHTML:
			conf.HTML = maybe.Just(stringify(v))
		case KeyOn:
			conf.On = handlersFrom(v)
		case KeyData:
			conf.Data = stringMap(v)
		default:
			if conf.Attrs == nil {
				conf.Attrs = make(map[string]string)
			}
			conf.Attrs[k] = stringify(v)
		}
	}
	return conf
}

func handlersFrom(v any) map[string]Handler {
	handlers := make(map[string]Handler)
	switch on := v.(type) {
	case map[string]Handler:
		for ev, h := range on {
			handlers[ev] = h
		}
	case map[string]func(Event):
		for ev, h := range on {
			handlers[ev] = h
		}
	case map[string]any:
		for ev, h := range on {
			switch f := h.(type) {
			case Handler:
				handlers[ev] = f
			case func(Event):
				handlers[ev] = f
			default:
				tracer().Infof("listener for %q is not a handler: %T", ev, h)
			}
		}
	default:
		tracer().Infof("listener configuration of type %T ignored", v)
	}
	return handlers
}

func stringMap(v any) map[string]string {
	switch data := v.(type) {
	case map[string]string:
		return data
	case map[string]any:
		m := make(map[string]string, len(data))
		for k, x := range data {
			m[k] = stringify(x)
		}
		return m
	}
	if m, ok := anyMap(v); ok {
		data := make(map[string]string, len(m))
		for k, x := range m {
			data[k] = stringify(x)
		}
		return data
	}
	tracer().Infof("dataset configuration of type %T ignored", v)
	return nil
}

// anyMap converts a map of any type with string keys to map[string]any.
func anyMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
