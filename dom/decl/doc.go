/*
Package decl builds DOM subtrees from declarations in YAML.

A declaration is a list of elements, each of which may have children:

    - tag: ul
      class: menu
      attrs: { id: nav }
      children:
        - tag: li
          text: Home
          data: { page: home }
          on: { click: goHome }

Keys are tag, class, text, html, style, data, attrs, on and children.
Event listeners are given by name and resolved against a table of handlers
when building.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpdom.decl'.
func tracer() tracing.Trace {
	return tracing.Select("fpdom.decl")
}
