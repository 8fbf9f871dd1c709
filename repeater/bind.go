package repeater

// Bind captures a single argument for fn.
func Bind[A any](fn func(A) error, a A) Func {
	return func() error {
		return fn(a)
	}
}

func Bind2[A, B any](fn func(A, B) error, a A, b B) Func {
	return func() error {
		return fn(a, b)
	}
}

// BindArgs captures a variadic argument list. The slice is copied so later
// changes by the caller are not observed.
func BindArgs(fn func(args ...any) error, args ...any) Func {
	bound := append([]any(nil), args...)
	return func() error {
		return fn(bound...)
	}
}
