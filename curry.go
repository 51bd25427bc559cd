package fpdom

// Curried is a function of fixed arity which may be applied to its
// arguments in several steps. As soon as the number of accumulated arguments
// reaches the arity, the underlying function is called and its result is
// stored with the (then saturated) Curried value.
//
// Curried values are immutable: Apply never changes its receiver.
type Curried[R any] struct {
	arity     int
	args      []any
	fn        func(args ...any) R
	saturated bool
	result    R
}

// Curry wraps fn, which expects exactly arity arguments, into a Curried value.
func Curry[R any](arity int, fn func(args ...any) R) Curried[R] {
	return Curried[R]{arity: arity, fn: fn}
}

// Apply supplies args to c. If c has then received at least as many arguments
// as its arity, the underlying function is called with the first arity
// arguments, in the order they have been supplied. Surplus arguments are
// dropped. Otherwise a new partially applied value is returned and the
// underlying function is not called.
//
// Applying arguments to a saturated value returns it unchanged.
func (c Curried[R]) Apply(args ...any) Curried[R] {
	if c.saturated {
		tracer().Debugf("curry: function already applied, ignoring %d argument(s)", len(args))
		return c
	}
	acc := make([]any, len(c.args), len(c.args)+len(args))
	copy(acc, c.args)
	acc = append(acc, args...)
	next := Curried[R]{arity: c.arity, fn: c.fn, args: acc}
	if len(acc) < c.arity {
		return next
	}
	n := c.arity
	if n < 0 {
		n = 0
	}
	if len(acc) > n {
		tracer().Infof("curry: %d surplus argument(s) for function of arity %d dropped",
			len(acc)-n, c.arity)
		acc = acc[:n]
	}
	next.args = acc
	next.saturated = true
	if c.fn != nil {
		next.result = c.fn(acc...)
	}
	return next
}

// Saturated is true if the underlying function has been called.
func (c Curried[R]) Saturated() bool {
	return c.saturated
}

// Result returns the result of the underlying function and true, or the
// zero value and false if c still waits for arguments.
func (c Curried[R]) Result() (R, bool) {
	return c.result, c.saturated
}

// Arity is the number of arguments the underlying function expects.
func (c Curried[R]) Arity() int {
	return c.arity
}

// Pending is the number of arguments still missing.
func (c Curried[R]) Pending() int {
	if c.saturated || len(c.args) >= c.arity {
		return 0
	}
	return c.arity - len(c.args)
}

// --- Typed variants --------------------------------------------------------

// Curry2 transforms f(a, b) into f(a)(b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 transforms f(a, b, c) into f(a)(b)(c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}
