/*
Command domrender renders declarative DOM descriptions to HTML.

Usage:

    domrender [flags] page.yaml

The YAML input lists elements as understood by package dom/decl. Elements
are attached to the body of a new HTML document, which is written to
standard output (or to the file given by --out).

Configuration is read from domrender.yaml in the current directory,
$HOME/.domrender or $HOME/.config/domrender. Recognized keys are

    attach.interval     polling interval in ms for attaching to the body
    attach.attempts     maximum number of polls
    tracelevel.root     trace level: Error, Info or Debug

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer traces with key 'fpdom.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("fpdom.cmd")
}

func main() {
	var opts renderOptions
	var tracelevel string
	rootCmd := &cobra.Command{
		Use:   "domrender [flags] file.yaml",
		Short: "Render a declarative DOM description to HTML",
		Long: `domrender reads a list of element declarations in YAML, builds the
corresponding DOM nodes and attaches them to the body of a fresh HTML
document. Use "-" to read from standard input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := viperadapter.New("domrender")
			conf.Init()
			if tracelevel != "" {
				conf.Set("tracelevel.root", tracelevel)
				for _, key := range []string{"fpdom.cmd", "fpdom.dom", "fpdom.decl", "fpdom.curry"} {
					conf.Set("tracelevel."+key, tracelevel)
				}
			}
			if err := initTracing(conf); err != nil {
				return err
			}
			opts.input = args[0]
			opts.conf = conf
			return render(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "out", "o", "", "write HTML to this file instead of stdout")
	flags.StringVar(&opts.title, "title", "", "document title")
	flags.BoolVar(&opts.tree, "tree", false, "print the DOM tree to stderr")
	flags.StringVar(&tracelevel, "trace", "", "trace level (Error, Info, Debug)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "domrender: %s\n", err)
		os.Exit(1)
	}
}

// initTracing routes all tracers to a Go logger, with trace levels taken
// from conf.
func initTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
