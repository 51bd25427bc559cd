package dom

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/npillmayer/fpdom"
	"golang.org/x/net/html"
)

// ErrBodyTimeout is reported by a Pending attachment if the document body
// did not show up within the configured number of polling attempts.
var ErrBodyTimeout = errors.New("document body did not appear in time")

// Append inserts children as the last children of to, in order, and returns
// to for chaining. Children already attached elsewhere are moved. The
// insertion of all children is a single operation with respect to other
// tree mutations of d.
//
// Children which are ancestors of to (or to itself) cannot be inserted and
// are skipped.
func (d *Document) Append(to *html.Node, children ...*html.Node) *html.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	appendBatch(to, ToBatch(children...))
	return to
}

// AppendTo returns a curried version of Append, expecting the parent node
// and then the children. Children may be given as anything BatchOf accepts:
//
//    toMain := doc.AppendTo().Apply(doc.ByID("main"))
//    toMain.Apply(dom.ToBatch(header, content, footer))
//
// The result is the parent node, or nil if the first argument is not a node.
func (d *Document) AppendTo() fpdom.Curried[*html.Node] {
	return fpdom.Curry(2, func(args ...any) *html.Node {
		to, ok := args[0].(*html.Node)
		if !ok || to == nil {
			tracer().Infof("cannot append to %T", args[0])
			return nil
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		appendBatch(to, BatchOf(args[1]))
		return to
	})
}

func appendBatch(to *html.Node, b Batch) {
	if to == nil {
		return
	}
	for _, n := range b {
		if isInclusiveAncestor(n, to) {
			tracer().Errorf("cannot insert <%s> into its own subtree", n.Data)
			continue
		}
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		to.AppendChild(n)
	}
}

func isInclusiveAncestor(a, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == a {
			return true
		}
	}
	return false
}

// attachIfBody appends b to the body, if there is one. Checking for the body
// and appending happen under a single lock.
func (d *Document) attachIfBody(b Batch) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	body := d.body()
	if body == nil {
		return false
	}
	appendBatch(body, b)
	return true
}

// --- Deferred attachment ---------------------------------------------------

// AttachToBody appends elems (anything BatchOf accepts) to the document body.
// If the body exists, elems are attached immediately. Otherwise a goroutine
// polls for the body and attaches elems as soon as it appears.
//
// AttachToBody never blocks and never fails; the returned Pending reports
// the outcome. Polling stops on success, after the maximum number of
// attempts (ErrBodyTimeout), or when ctx is cancelled or Pending.Cancel is
// called (the context's error is reported).
func (d *Document) AttachToBody(ctx context.Context, elems any, opts ...AttachOption) *Pending {
	o := AttachOptions{
		Interval:    DefaultPollInterval,
		MaxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	batch := BatchOf(elems)
	p := &Pending{done: make(chan struct{}), cancel: func() {}}
	if d.attachIfBody(batch) {
		tracer().Debugf("%d node(s) attached to body", batch.Len())
		p.finish(true, nil)
		return p
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	tracer().Debugf("no body yet, polling every %v", o.Interval)
	go d.pollForBody(ctx, cancel, batch, o, p)
	return p
}

func (d *Document) pollForBody(ctx context.Context, cancel context.CancelFunc, b Batch,
	o AttachOptions, p *Pending) {
	//
	defer cancel()
	ticker := time.NewTicker(o.Interval)
	defer ticker.Stop()
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			tracer().Infof("attaching to body cancelled: %v", ctx.Err())
			p.finish(false, ctx.Err())
			return
		case <-ticker.C:
			p.countAttempt()
			if d.attachIfBody(b) {
				tracer().Debugf("%d node(s) attached to body after %d attempt(s)", b.Len(), attempt)
				p.finish(true, nil)
				return
			}
			if o.MaxAttempts > 0 && attempt >= o.MaxAttempts {
				tracer().Errorf("giving up attaching to body after %d attempts", attempt)
				p.finish(false, ErrBodyTimeout)
				return
			}
		}
	}
}

// Pending is the handle of an attachment to the document body, which may
// have completed already.
type Pending struct {
	done     chan struct{}
	cancel   context.CancelFunc
	mu       sync.Mutex
	err      error
	attached bool
	attempts int
}

func (p *Pending) finish(attached bool, err error) {
	p.mu.Lock()
	p.attached = attached
	p.err = err
	p.mu.Unlock()
	close(p.done)
}

func (p *Pending) countAttempt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts++
}

// Done is closed when the attachment has completed or failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Attached reports whether the nodes have been attached.
func (p *Pending) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attached
}

// Err returns the reason for a failed attachment, or nil.
func (p *Pending) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Attempts is the number of polling attempts made so far.
func (p *Pending) Attempts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts
}

// Cancel stops polling. It has no effect on a completed attachment.
func (p *Pending) Cancel() {
	p.cancel()
}

// Wait blocks until the attachment completes or ctx is done, and returns
// the attachment's error or the error of ctx, respectively.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
