package parse

import "strings"

// Map runs p and applies f to its value. A failure propagates unchanged;
// the cursor ends wherever p left it.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return From(func(c *Cursor) (U, *Error) {
		v, err := p.Run(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

// Then runs p, discards its value, and runs q from wherever p stopped.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return From(func(c *Cursor) (U, *Error) {
		if _, err := p.Run(c); err != nil {
			var zero U
			return zero, err
		}
		return q.Run(c)
	})
}

// Before runs p then q and keeps p's value.
func Before[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		v, err := p.Run(c)
		if err != nil {
			var zero T
			return zero, err
		}
		if _, err := q.Run(c); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}

// ThenReturn runs p and, on success, yields v instead of p's value.
func ThenReturn[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// OrReturn runs p and, on failure, yields v without consuming anything
// beyond what p's failed run already consumed. This is the optional form
// of this algebra: OrReturn(Attempt(p), fallback).
func OrReturn[T any](p Parser[T], v T) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		got, err := p.Run(c)
		if err != nil {
			return v, nil
		}
		return got, nil
	})
}

// Or runs p and, if p fails, runs q from wherever p left the cursor.
// There is no implicit rewind anywhere in this algebra — rewinding is
// exclusively Attempt's job — so alternatives that may consume input
// before failing must be wrapped in Attempt explicitly. Keeping failed
// consumption visible is what lets the final error point at the furthest
// position actually reached.
//
// When both sides fail, q's error is reported with p's error attached as
// a trailing Nested fragment, so no tried branch disappears from the
// trace.
func Or[T any](p, q Parser[T]) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		v, perr := p.Run(c)
		if perr == nil {
			return v, nil
		}
		v, qerr := q.Run(c)
		if qerr == nil {
			return v, nil
		}
		var zero T
		return zero, qerr.Nest(perr)
	})
}

// Either holds the value of whichever side of OrEither matched. Exactly
// one of the two fields is set.
type Either[A, B any] struct {
	A   A
	B   B
	IsB bool
}

// OrEither is Or across two value types.
func OrEither[A, B any](p Parser[A], q Parser[B]) Parser[Either[A, B]] {
	return From(func(c *Cursor) (Either[A, B], *Error) {
		a, perr := p.Run(c)
		if perr == nil {
			return Either[A, B]{A: a}, nil
		}
		b, qerr := q.Run(c)
		if qerr == nil {
			return Either[A, B]{B: b, IsB: true}, nil
		}
		return Either[A, B]{}, qerr.Nest(perr)
	})
}

// Attempt records the cursor position, runs p, and restores the position
// if p fails. On success the cursor stays exactly where p left it. This
// is the only rewind point in the algebra.
func Attempt[T any](p Parser[T]) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		start := c.Pos()
		v, err := p.Run(c)
		if err != nil {
			c.SeekTo(start)
		}
		return v, err
	})
}

// Many runs p repeatedly, collecting values, until p first fails. The
// failing run's cursor movement is not rewound, so callers that need Many
// to stop cleanly must make the terminating failure consume nothing,
// typically Many(Attempt(p)). Many itself never fails; zero matches yield
// an empty (nil) slice.
func Many[T any](p Parser[T]) Parser[[]T] {
	return From(func(c *Cursor) ([]T, *Error) {
		var values []T
		for {
			v, err := p.Run(c)
			if err != nil {
				return values, nil
			}
			values = append(values, v)
		}
	})
}

// ManyString is Many over string parsers with the results concatenated.
func ManyString(p Parser[string]) Parser[string] {
	return Map(Many(p), func(parts []string) string {
		return strings.Join(parts, "")
	})
}

// Repeated runs p exactly n times, short-circuiting on the first failure.
func Repeated[T any](p Parser[T], n int) Parser[[]T] {
	if n <= 0 {
		panic("parse: Repeated needs a positive count")
	}
	return From(func(c *Cursor) ([]T, *Error) {
		values := make([]T, 0, n)
		for i := 0; i < n; i++ {
			v, err := p.Run(c)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	})
}

// Until runs p at least once, trying terminator after each element, and
// stops as soon as terminator matches. The terminator's match is
// consumed. A failure of p before the terminator has matched fails the
// whole parse. The terminator is typically wrapped in Attempt so its
// failed probes consume nothing.
func Until[T, F any](p Parser[T], terminator Parser[F]) Parser[[]T] {
	return From(func(c *Cursor) ([]T, *Error) {
		var values []T
		for {
			v, err := p.Run(c)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			if _, err := terminator.Run(c); err == nil {
				return values, nil
			}
		}
	})
}

// Between runs bracket, then p, then bracket again, yielding p's value.
// Each of the three runs reports its own error: a missing closing bracket
// points at the closing position, not back at the opening one.
func Between[T, B any](p Parser[T], bracket Parser[B]) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		var zero T
		if _, err := bracket.Run(c); err != nil {
			return zero, err
		}
		v, err := p.Run(c)
		if err != nil {
			return zero, err
		}
		if _, err := bracket.Run(c); err != nil {
			return zero, err
		}
		return v, nil
	})
}
