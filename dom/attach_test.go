package dom

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustBuild(t *testing.T, doc *Document, tag string, conf NodeConfig) *html.Node {
	t.Helper()
	n, err := doc.Build(tag, "", conf)
	require.NoError(t, err)
	return n
}

func childCount(n *html.Node) int {
	cnt := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cnt++
	}
	return cnt
}

func TestAppendInOrder(t *testing.T) {
	doc := NewDocument()
	ul := mustBuild(t, doc, "ul", NodeConfig{})
	a := mustBuild(t, doc, "li", Text("a"))
	b := mustBuild(t, doc, "li", Text("b"))
	c := mustBuild(t, doc, "li", Text("c"))
	doc.Append(ul, a)
	r := doc.Append(ul, b, nil, c)
	assert.Same(t, ul, r, "Append returns the parent")
	assert.Equal(t, "<ul><li>a</li><li>b</li><li>c</li></ul>", render(t, ul))
}

func TestAppendMovesAttachedNodes(t *testing.T) {
	doc := NewDocument()
	from := mustBuild(t, doc, "div", NodeConfig{})
	to := mustBuild(t, doc, "div", NodeConfig{})
	p := mustBuild(t, doc, "p", NodeConfig{})
	doc.Append(from, p)
	doc.Append(to, p)
	assert.Nil(t, from.FirstChild)
	assert.Same(t, to, p.Parent)
}

func TestAppendRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	outer := mustBuild(t, doc, "div", NodeConfig{})
	inner := mustBuild(t, doc, "div", NodeConfig{})
	doc.Append(outer, inner)
	doc.Append(inner, outer)
	doc.Append(inner, inner)
	assert.Nil(t, outer.Parent)
	assert.Nil(t, inner.FirstChild)
}

func TestAppendToCurried(t *testing.T) {
	doc := NewDocument()
	ul := mustBuild(t, doc, "ul", NodeConfig{})
	toList := doc.AppendTo().Apply(ul)
	assert.False(t, toList.Saturated())
	r, ok := toList.Apply(mustBuild(t, doc, "li", Text("1"))).Result()
	require.True(t, ok)
	assert.Same(t, ul, r)
	toList.Apply([]*html.Node{
		mustBuild(t, doc, "li", Text("2")),
		nil,
		mustBuild(t, doc, "li", Text("3")),
	})
	assert.Equal(t, "<ul><li>1</li><li>2</li><li>3</li></ul>", render(t, ul))

	r, ok = doc.AppendTo().Apply("not a node", ul).Result()
	assert.True(t, ok)
	assert.Nil(t, r)
}

func TestAttachToExistingBody(t *testing.T) {
	doc := NewDocument()
	body := doc.EnsureBody()
	p := mustBuild(t, doc, "p", NodeConfig{})
	pending := doc.AttachToBody(context.Background(), p)
	require.NotNil(t, pending)
	select {
	case <-pending.Done():
	default:
		t.Fatal("expected immediate attachment to existing body")
	}
	assert.True(t, pending.Attached())
	assert.NoError(t, pending.Err())
	assert.Same(t, body, p.Parent)
	assert.Equal(t, 0, pending.Attempts())
}

func TestAttachToLateBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	p := mustBuild(t, doc, "p", Text("late"))
	pending := doc.AttachToBody(context.Background(), p, WithInterval(5*time.Millisecond))
	require.NotNil(t, pending, "AttachToBody returns at once")
	assert.Nil(t, p.Parent)

	time.Sleep(20 * time.Millisecond)
	body := doc.EnsureBody()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, pending.Wait(ctx))
	assert.True(t, pending.Attached())
	assert.Same(t, body, p.Parent)
	assert.Equal(t, 1, childCount(body), "attached exactly once")

	time.Sleep(20 * time.Millisecond) // poller must have stopped
	assert.Equal(t, 1, childCount(body))
}

func TestAttachGivesUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpdom.dom")
	defer teardown()
	//
	doc := NewDocument()
	p := mustBuild(t, doc, "p", NodeConfig{})
	pending := doc.AttachToBody(context.Background(), p,
		WithInterval(time.Millisecond), WithMaxAttempts(3))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.ErrorIs(t, pending.Wait(ctx), ErrBodyTimeout)
	assert.False(t, pending.Attached())
	assert.Equal(t, 3, pending.Attempts())
}

func TestAttachCancel(t *testing.T) {
	doc := NewDocument()
	p := mustBuild(t, doc, "p", NodeConfig{})
	pending := doc.AttachToBody(context.Background(), p,
		WithInterval(time.Hour), WithMaxAttempts(0))
	pending.Cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.ErrorIs(t, pending.Wait(ctx), context.Canceled)
	doc.EnsureBody()
	assert.Nil(t, p.Parent)
}

func TestAttachContextCancel(t *testing.T) {
	doc := NewDocument()
	ctx, cancelAttach := context.WithCancel(context.Background())
	pending := doc.AttachToBody(ctx, mustBuild(t, doc, "p", NodeConfig{}),
		WithInterval(time.Hour))
	cancelAttach()
	select {
	case <-pending.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("expected poller to stop on context cancellation")
	}
	assert.ErrorIs(t, pending.Err(), context.Canceled)
}

func TestAttachOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		ConfigAttachInterval: "15",
		ConfigAttachAttempts: "7",
	}
	o := AttachOptions{Interval: DefaultPollInterval, MaxAttempts: DefaultMaxAttempts}
	AttachOptionsFrom(conf)(&o)
	assert.Equal(t, 15*time.Millisecond, o.Interval)
	assert.Equal(t, 7, o.MaxAttempts)

	o = AttachOptions{Interval: DefaultPollInterval, MaxAttempts: DefaultMaxAttempts}
	AttachOptionsFrom(testconfig.Conf{})(&o)
	assert.Equal(t, DefaultPollInterval, o.Interval)
	assert.Equal(t, DefaultMaxAttempts, o.MaxAttempts)
}
