package repeater

import "github.com/apex/log"

type Option func(*Repeater)

// WithName sets the label attached to log entries.
func WithName(name string) Option {
	return func(r *Repeater) {
		r.name = name
	}
}

func WithLogger(logger log.Interface) Option {
	return func(r *Repeater) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithErrorHandler registers fn to receive every error returned (or panic
// recovered) from the repeated Func. It runs on the worker goroutine.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Repeater) {
		r.onError = fn
	}
}
