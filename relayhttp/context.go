package relayhttp

import (
	"context"
	"net/http"

	"github.com/halcyonstack/relay/router"
)

// dispatchContextKey is an unexported type for the single context key.
type dispatchContextKey struct{}

// ctxKey is the single context key used to store the writer and request.
var ctxKey = dispatchContextKey{}

// dispatchContext carries the transport pair through a dispatch run.
type dispatchContext struct {
	w   http.ResponseWriter
	req *http.Request
}

// newContext stores the response writer and request for handlers to
// retrieve during dispatch.
func newContext(ctx context.Context, w http.ResponseWriter, req *http.Request) context.Context {
	return context.WithValue(ctx, ctxKey, &dispatchContext{w: w, req: req})
}

// ResponseWriter returns the response writer for the current dispatch,
// or nil when the context did not come from this adapter.
func ResponseWriter(ctx context.Context) http.ResponseWriter {
	if dc, ok := ctx.Value(ctxKey).(*dispatchContext); ok {
		return dc.w
	}
	return nil
}

// Request returns the underlying request for the current dispatch, or
// nil when the context did not come from this adapter.
func Request(ctx context.Context) *http.Request {
	if dc, ok := ctx.Value(ctxKey).(*dispatchContext); ok {
		return dc.req
	}
	return nil
}

// HandlerFunc adapts an http-style handler into a router handler
// reference. The writer and request are recovered from the dispatch
// context this adapter installs.
func HandlerFunc(fn func(w http.ResponseWriter, r *http.Request, params []router.Param) error) router.HandlerRef {
	return router.Func(func(ctx context.Context, params []router.Param) error {
		return fn(ResponseWriter(ctx), Request(ctx), params)
	})
}
