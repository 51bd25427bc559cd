package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/fpdom/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func buildList(t *testing.T) *html.Node {
	doc := dom.NewDocument()
	ul, err := doc.Build("ul", "menu", dom.NodeConfig{})
	require.NoError(t, err)
	home, err := doc.Build("li", "", dom.NodeConfig{Data: map[string]string{"page": "home"}})
	require.NoError(t, err)
	doc.Append(home, doc.CreateText("Home"))
	empty, err := doc.Build("li", "", dom.NodeConfig{})
	require.NoError(t, err)
	return doc.Append(ul, home, empty)
}

func TestDump(t *testing.T) {
	ul := buildList(t)
	out := Dump(ul)
	t.Logf("DOM =\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `<ul class="menu">`, lines[0])
	assert.Contains(t, lines[1], `<li data-page="home">`)
	assert.Contains(t, lines[2], `"Home"`)
	assert.Contains(t, lines[3], `<li>`)
	assert.Equal(t, "<nil>\n", Dump(nil))
}

func TestToGraphViz(t *testing.T) {
	ul := buildList(t)
	var buf bytes.Buffer
	ToGraphViz(ul, &buf)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `node00001	[ label="ul"`)
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "<td>menu</td>")
}
