// Package repeater runs a function on a fixed interval in a background
// goroutine until it is stopped.
package repeater

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"go.uber.org/atomic"
	"golang.org/x/xerrors"
)

var (
	ErrInvalidInterval = errors.New("repeater: interval must be positive")
	ErrNilFunc         = errors.New("repeater: func must not be nil")
)

// Func is the operation invoked on every run. A returned error is logged and
// handed to the error handler; the loop keeps going.
type Func func() error

// Repeater invokes a Func immediately on Start and then once per interval
// until Stop is called. At most one worker goroutine is alive per Repeater.
type Repeater struct {
	interval time.Duration
	fn       Func
	name     string
	logger   log.Interface
	onError  func(error)

	mu   sync.Mutex
	exit chan struct{} // closed when no worker should be running
	done chan struct{} // closed by the worker on exit, nil when not running

	running atomic.Bool
	runs    atomic.Int64
}

func New(interval time.Duration, fn Func, opts ...Option) (*Repeater, error) {
	if interval <= 0 {
		return nil, xerrors.Errorf("new repeater with interval %s: %w", interval, ErrInvalidInterval)
	}
	if fn == nil {
		return nil, xerrors.Errorf("new repeater: %w", ErrNilFunc)
	}
	exit := make(chan struct{})
	close(exit)
	r := &Repeater{
		interval: interval,
		fn:       fn,
		name:     "repeater",
		logger:   log.Log,
		exit:     exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics on invalid arguments.
func MustNew(interval time.Duration, fn Func, opts ...Option) *Repeater {
	r, err := New(interval, fn, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Start spawns the worker if it is not already running.
func (r *Repeater) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return
	}
	r.exit = make(chan struct{})
	r.done = make(chan struct{})
	r.running.Store(true)
	go r.loop(r.exit, r.done)
}

// Stop signals the worker and waits for it to exit. An invocation in
// progress runs to completion first. Stop is a no-op when not running and
// must not be called from inside the Func.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		return
	}
	close(r.exit)
	<-r.done
	r.done = nil
	r.running.Store(false)
}

func (r *Repeater) Running() bool {
	return r.running.Load()
}

// Runs returns the number of completed invocations since construction.
func (r *Repeater) Runs() int64 {
	return r.runs.Load()
}

func (r *Repeater) Interval() time.Duration {
	return r.interval
}

func (r *Repeater) Name() string {
	return r.name
}

func (r *Repeater) loop(exit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	r.logger.WithFields(log.Fields{
		"repeater": r.name,
		"interval": r.interval.String(),
	}).Debug("worker started")
	for {
		select {
		case <-exit:
			r.logger.WithField("repeater", r.name).Debug("worker stopped")
			return
		default:
		}
		r.invoke()
		if !wait(exit, r.interval) {
			r.logger.WithField("repeater", r.name).Debug("worker stopped")
			return
		}
	}
}

// wait blocks for d or until exit is closed. It reports whether the full
// duration elapsed.
func wait(exit <-chan struct{}, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-exit:
		return false
	case <-t.C:
		return true
	}
}

func (r *Repeater) invoke() {
	run := r.runs.Load() + 1
	err := r.call()
	r.runs.Inc()
	if err == nil {
		return
	}
	r.logger.WithFields(log.Fields{
		"repeater": r.name,
		"run":      run,
	}).WithError(err).Error("run failed")
	if r.onError != nil {
		r.onError(err)
	}
}

func (r *Repeater) call() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()
	return r.fn()
}

// PanicError wraps a value recovered from a panicking Func.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("repeater: func panicked: %v", e.Value)
}

// Unwrap exposes the recovered value when the Func panicked with an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
