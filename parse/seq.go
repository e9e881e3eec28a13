package parse

// The MapN family runs its sub-parsers left to right against the same
// cursor, short-circuits on the first failure, and applies f to the
// collected values. Go has no variadic type parameters, so the arities
// are spelled out; grammars needing more than five steps nest these.

// Map2 sequences two parsers and combines their values with f.
func Map2[A, B, R any](pa Parser[A], pb Parser[B], f func(A, B) R) Parser[R] {
	return From(func(c *Cursor) (R, *Error) {
		var zero R
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	})
}

// Map3 sequences three parsers and combines their values with f.
func Map3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) R) Parser[R] {
	return From(func(c *Cursor) (R, *Error) {
		var zero R
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		cv, err := pc.Run(c)
		if err != nil {
			return zero, err
		}
		return f(a, b, cv), nil
	})
}

// Map4 sequences four parsers and combines their values with f.
func Map4[A, B, C, D, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], f func(A, B, C, D) R) Parser[R] {
	return From(func(c *Cursor) (R, *Error) {
		var zero R
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		cv, err := pc.Run(c)
		if err != nil {
			return zero, err
		}
		d, err := pd.Run(c)
		if err != nil {
			return zero, err
		}
		return f(a, b, cv, d), nil
	})
}

// Map5 sequences five parsers and combines their values with f.
func Map5[A, B, C, D, E, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], f func(A, B, C, D, E) R) Parser[R] {
	return From(func(c *Cursor) (R, *Error) {
		var zero R
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		cv, err := pc.Run(c)
		if err != nil {
			return zero, err
		}
		d, err := pd.Run(c)
		if err != nil {
			return zero, err
		}
		e, err := pe.Run(c)
		if err != nil {
			return zero, err
		}
		return f(a, b, cv, d, e), nil
	})
}
