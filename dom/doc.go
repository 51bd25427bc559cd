/*
Package dom provides functional helpers to build and manipulate HTML DOMs.

Status

Early draft, API may change frequently. Please stay patient.

Overview

The package wraps a golang.org/x/net/html node tree into a Document.
The Document plays the part a browser plays for client-side scripts:
it creates element nodes, stores attributes and the dataset, registers
event listeners and performs tree insertions. All tree mutation goes
through the Document, which serializes it.

On top of the Document there is a small set of helpers in a functional
style:

    div := doc.Div()                      // curried, waits for class and config
    r, _ := div.Apply("greeting", dom.NodeConfig{
        Text: maybe.Just("Hello"),
    }).Result()
    hello, err := r.Get()
    …
    doc.Append(doc.ByID("main"), hello)

Element lookup never returns nil: if no node matches, a fresh, detached
<div> is returned, so that code like

    doc.SetAttribute(doc.ByID("status"), "hidden", "")

needs no nil checks.

Attaching to the Body

Elements may be attached to the document body before a body exists.
AttachToBody will then poll for the body in the background and attach
the elements as soon as it shows up. Polling is bounded and may be
cancelled, see AttachOption.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("fpdom.dom")
}
