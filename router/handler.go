package router

import (
	"context"
	"errors"
	"fmt"
)

// HandlerFunc is the invocable form of a handler. Params are the
// positional path parameters extracted from the matched pattern. The
// context comes from the caller of Run; transport adapters use it to
// carry the underlying request and response.
//
// A returned error aborts the dispatch and propagates out of Run
// unchanged. The router never retries or swallows handler errors.
type HandlerFunc func(ctx context.Context, params []Param) error

// ErrHandlerUnresolvable reports that a named handler reference could not
// be resolved into an invocable target. The dispatcher recovers from it
// by running the fallback protocol, exactly as if no route had matched.
var ErrHandlerUnresolvable = errors.New("router: handler reference cannot be resolved")

// Resolver resolves a named handler reference of the form
// "Controller::method" into an invocable handler. The host application
// injects an implementation via Router.SetResolver; the resolver package
// provides a reflection-based registry.
type Resolver interface {
	Resolve(ref string) (HandlerFunc, error)
}

// HandlerRef identifies a handler: either a direct callable or a named
// "Controller::method" reference, resolved through the router's Resolver
// at dispatch time. The zero value identifies nothing.
type HandlerRef struct {
	fn   HandlerFunc
	name string
}

// Func wraps a direct callable into a HandlerRef.
func Func(fn HandlerFunc) HandlerRef {
	return HandlerRef{fn: fn}
}

// Named wraps a "Controller::method" reference into a HandlerRef.
func Named(ref string) HandlerRef {
	return HandlerRef{name: ref}
}

// Name returns the named reference, or an empty string for a direct
// callable.
func (h HandlerRef) Name() string {
	return h.name
}

// IsZero reports whether the reference identifies no handler at all.
func (h HandlerRef) IsZero() bool {
	return h.fn == nil && h.name == ""
}

// resolve returns the invocable handler behind the reference. Every
// failure wraps ErrHandlerUnresolvable so the dispatcher can recognize
// it with errors.Is.
func (h HandlerRef) resolve(res Resolver) (HandlerFunc, error) {
	if h.fn != nil {
		return h.fn, nil
	}

	if h.name == "" {
		return nil, ErrHandlerUnresolvable
	}

	if res == nil {
		return nil, fmt.Errorf("%w: %q: no resolver configured", ErrHandlerUnresolvable, h.name)
	}

	fn, err := res.Resolve(h.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrHandlerUnresolvable, h.name, err)
	}

	return fn, nil
}
