package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/fpdom/dom"
	"github.com/npillmayer/fpdom/dom/decl"
	"github.com/npillmayer/fpdom/dom/domdbg"
	"github.com/npillmayer/schuko"
)

type renderOptions struct {
	input  string // file name or "-"
	output string // file name, empty for stdout
	title  string
	tree   bool
	conf   schuko.Configuration
}

func render(ctx context.Context, opts renderOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	elems, err := readDeclarations(opts.input, stdin)
	if err != nil {
		return err
	}
	doc := dom.NewDocument()
	if opts.title != "" {
		title, err := doc.Build("title", "", dom.Text(opts.title))
		if err != nil {
			return err
		}
		doc.Append(doc.BySelector("head", nil), title)
	}
	nodes, err := decl.Build(doc, elems, tracingHandlers(elems))
	if err != nil {
		return fmt.Errorf("building %s: %w", opts.input, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// the body does not exist yet, so this exercises the deferred attachment
	pending := doc.AttachToBody(ctx, nodes, dom.AttachOptionsFrom(opts.conf))
	doc.EnsureBody()
	if err := pending.Wait(ctx); err != nil {
		return fmt.Errorf("attaching to body: %w", err)
	}
	tracer().Infof("%d element(s) attached after %d poll(s)", len(nodes), pending.Attempts())
	if opts.tree {
		fmt.Fprint(stderr, domdbg.Dump(doc.Root()))
	}
	if opts.output == "" {
		return writeHTML(doc, stdout)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := writeHTML(doc, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	return nil
}

func writeHTML(doc *dom.Document, w io.Writer) error {
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func readDeclarations(input string, stdin io.Reader) ([]decl.Element, error) {
	if input == "-" {
		return decl.Read(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	elems, err := decl.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	return elems, nil
}

// tracingHandlers binds every handler name used in elems to a listener
// which just traces the event. There is nobody to dispatch events to a
// rendered page, but declarations must still resolve.
func tracingHandlers(elems []decl.Element) map[string]dom.Handler {
	handlers := make(map[string]dom.Handler)
	for _, name := range decl.HandlerNames(elems) {
		name := name
		handlers[name] = func(e dom.Event) {
			tracer().Debugf("handler %q called for %q on <%s>", name, e.Type, e.Target.Data)
		}
	}
	return handlers
}
