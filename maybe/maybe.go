/*
Package maybe implements an option type.

A Maybe either carries a value (Just) or it doesn't (Nothing). It is used
throughout fpdom wherever "absent" has to be told apart from a zero value,
e.g. an empty text content versus no text content at all.

Matching follows a switch-pattern:

    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }

Matching compares matchers for identity, therefore values carried by a
Maybe must be of a comparable dynamic type when used with Match().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	OrElse(func() T) T
	Get() (T, bool)
	IsNothing() bool
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok is set, Nothing otherwise.
// It bridges Go's comma-ok idiom:
//
//    v, ok := dict[key]
//    m := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Get unwraps m using the comma-ok idiom. A nil Maybe counts as Nothing.
func Get[T any](m Maybe[T]) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	return m.Get()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// OrElse is like WithDefault, but calls f only if m is Nothing.
func (m maybe[T]) OrElse(f func() T) T {
	if m.tag {
		return m.value
	}
	return f()
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		v = f(v)
		return Just[T](v)
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
