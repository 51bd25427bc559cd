/*
Package fpdom provides functional helpers for building DOM trees.

The root package holds the functional part: composition and currying.
Package dom builds on it to create, decorate, look up and attach
HTML element nodes of a golang.org/x/net/html tree.

Currying

Go functions have no runtime-visible arity for variadic callers, so
curried functions declare their arity explicitly:

    add3 := fpdom.Curry(3, func(args ...any) int {
        return args[0].(int) + args[1].(int) + args[2].(int)
    })
    r, ok := add3.Apply(1).Apply(2, 3).Result()   // 6, true

Every application returns a new value; partially applied functions may be
shared and re-used freely. For statically typed use there are Curry2 and
Curry3.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpdom.curry'.
func tracer() tracing.Trace {
	return tracing.Select("fpdom.curry")
}
