package dom

import (
	"testing"

	"github.com/npillmayer/fpdom/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	clicked := false
	conf, ok := ConfigFrom(map[string]any{
		"text":     "hello",
		"html":     "<b>x</b>",
		"on":       map[string]any{"click": func(Event) { clicked = true }, "bad": 7},
		"data":     map[string]any{"userId": 42},
		"style":    "color: blue",
		"disabled": true,
		"tabindex": 3,
	})
	require.True(t, ok)
	text, _ := maybe.Get(conf.Text)
	assert.Equal(t, "hello", text)
	markup, _ := maybe.Get(conf.HTML)
	assert.Equal(t, "<b>x</b>", markup)
	assert.Len(t, conf.On, 1)
	conf.On["click"](Event{})
	assert.True(t, clicked)
	assert.Equal(t, map[string]string{"userId": "42"}, conf.Data)
	assert.Empty(t, conf.Style)
	assert.Equal(t, map[string]string{"disabled": "true", "tabindex": "3", "style": "color: blue"},
		conf.Attrs, "consumed keys must not show up as attributes")
}

func TestConfigFromTypedMaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	type attrName string
	conf, ok := ConfigFrom(map[attrName]int{"tabindex": 1, "maxlength": 5})
	require.True(t, ok)
	assert.Equal(t, map[string]string{"tabindex": "1", "maxlength": "5"}, conf.Attrs)

	conf, ok = ConfigFrom(map[string]any{"data": map[string]int{"id": 5}})
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": "5"}, conf.Data)

	doc := NewDocument()
	input, err := Built(doc.Element().Apply("input", "", map[string]int{"tabindex": 1, "maxlength": 5}))
	require.NoError(t, err)
	assert.Equal(t, `<input maxlength="5" tabindex="1"/>`, render(t, input))
	span, err := Built(doc.Element().Apply("span", "", map[string]any{"data": map[string]int{"id": 5}}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "5"}, doc.Dataset(span))

	_, ok = ConfigFrom(map[int]string{1: "x"})
	assert.False(t, ok, "keys must be strings")
}

func TestConfigStyleKeyIsPlainAttribute(t *testing.T) {
	doc := NewDocument()
	p, err := Built(doc.Element().Apply("p", "", map[string]string{"style": "color: red; color: blue"}))
	require.NoError(t, err)
	assert.Equal(t, `<p style="color: red; color: blue"></p>`, render(t, p))
	q, err := doc.Build("p", "", NodeConfig{Style: "color: red; color: blue"})
	require.NoError(t, err)
	assert.Equal(t, `<p style="color: blue;"></p>`, render(t, q))
}

func TestConfigFromOtherTypes(t *testing.T) {
	conf, ok := ConfigFrom(nil)
	assert.True(t, ok)
	assert.Equal(t, NodeConfig{}, conf)

	var nilConf *NodeConfig
	_, ok = ConfigFrom(nilConf)
	assert.True(t, ok)

	conf, ok = ConfigFrom(&NodeConfig{Style: "x"})
	assert.True(t, ok)
	assert.Equal(t, "x", conf.Style)

	_, ok = ConfigFrom(3.14)
	assert.False(t, ok)
}

func TestDatasetNames(t *testing.T) {
	for name, attr := range map[string]string{
		"id":        "data-id",
		"userId":    "data-user-id",
		"x-1":       "data-x-1",
		"HTMLThing": "data--h-t-m-l-thing",
	} {
		a, ok := datasetAttrName(name)
		assert.True(t, ok, name)
		assert.Equal(t, attr, a)
		back, ok := datasetName(a)
		assert.True(t, ok)
		assert.Equal(t, name, back)
	}
	_, ok := datasetAttrName("user-id")
	assert.False(t, ok, "hyphen followed by lower case letter is invalid")
}

func TestSetDatasetSkipsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	div := mustBuild(t, doc, "div", NodeConfig{})
	doc.SetDataset(div, map[string]string{"userId": "7", "bad-name": "x"})
	assert.Equal(t, map[string]string{"userId": "7"}, doc.Dataset(div))
	doc.SetDataset(div, map[string]string{"userId": "8", "role": "admin"})
	assert.Equal(t, map[string]string{"userId": "8", "role": "admin"}, doc.Dataset(div),
		"dataset is merged")
}

func TestNormalizeStyle(t *testing.T) {
	s, ok := NormalizeStyle("color:red ;  MARGIN: 0 auto")
	assert.True(t, ok)
	assert.Equal(t, "color: red; margin: 0 auto;", s)

	s, ok = NormalizeStyle("color: red; width: 1px !important; color: blue;")
	assert.True(t, ok)
	assert.Equal(t, "width: 1px !important; color: blue;", s)

	s, ok = NormalizeStyle("   ")
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestListeners(t *testing.T) {
	doc := NewDocument()
	btn := mustBuild(t, doc, "button", NodeConfig{})
	var trail []string
	doc.AddEventListener(btn, "click", func(e Event) {
		assert.Same(t, btn, e.Target)
		trail = append(trail, "first:"+e.Type)
	})
	remove := doc.AddEventListener(btn, "CLICK", func(e Event) {
		trail = append(trail, "second")
	})
	doc.AddEventListener(btn, "click", nil)
	assert.Equal(t, 2, doc.Listeners(btn, "click"))
	assert.Equal(t, 2, doc.Dispatch(btn, "click"))
	assert.Equal(t, []string{"first:click", "second"}, trail)
	remove()
	assert.Equal(t, 1, doc.Dispatch(btn, "click"))
	assert.Equal(t, 0, doc.Dispatch(btn, "focus"))
}

func TestReleaseListeners(t *testing.T) {
	doc := NewDocument()
	form := mustBuild(t, doc, "form", NodeConfig{})
	btn := mustBuild(t, doc, "button", NodeConfig{})
	doc.Append(form, btn)
	doc.AddEventListener(form, "submit", func(Event) {})
	doc.AddEventListener(btn, "click", func(Event) {})

	doc.Remove(form)
	assert.Equal(t, 1, doc.Listeners(btn, "click"), "detaching keeps listeners")
	doc.ReleaseListeners(form)
	assert.Equal(t, 0, doc.Listeners(form, "submit"))
	assert.Equal(t, 0, doc.Dispatch(btn, "click"))
	assert.Empty(t, doc.listeners)
	doc.ReleaseListeners(nil)
}

func TestRemovedListenerIsForgotten(t *testing.T) {
	doc := NewDocument()
	p := mustBuild(t, doc, "p", NodeConfig{})
	remove := doc.AddEventListener(p, "click", func(Event) {})
	remove()
	assert.Empty(t, doc.listeners)
}
