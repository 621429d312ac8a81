package router

import (
	"context"
	"strings"
)

// Request is the transport-resolved input to a single dispatch run.
// Method-override conventions and HEAD handling are transport concerns;
// the dispatcher expects Method to be final.
type Request struct {
	// Method is the HTTP verb to dispatch, already resolved by the
	// transport collaborator.
	Method string

	// Path is the raw request path. A query string after "?" is
	// stripped before matching.
	Path string

	// BasePath is removed from the front of Path, supporting a router
	// mounted under a sub-directory of the host.
	BasePath string
}

// normalizedPath returns the request path with the query string and base
// path removed, a leading slash ensured, and any trailing slash dropped.
func (req Request) normalizedPath() string {
	p := req.Path
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if req.BasePath != "" {
		p = strings.TrimPrefix(p, req.BasePath)
	}
	return "/" + strings.Trim(p, "/")
}

// dispatch is the per-run state. notFoundRan guards the fallback
// protocol so it fires at most once per request, even when a resolution
// failure escalates to it before the route scan finishes.
type dispatch struct {
	router      *Router
	path        string
	notFoundRan bool
}

// Run dispatches a single request against the route tables.
//
// Every before entry for the verb whose pattern matches the path runs
// first, in registration order and unconditionally. Route entries then
// run in registration order until the first pattern match; remaining
// routes are not evaluated. When no route matched, the fallback
// protocol runs. onComplete, when non-nil, is invoked after a matched
// route handler returned.
//
// The boolean result reports whether a route handled the request.
// Fallback handlers do not count: a false result with a nil error is
// the not-found signal for the transport collaborator to render.
// Handler errors propagate unchanged.
func (r *Router) Run(ctx context.Context, req Request, onComplete func()) (bool, error) {
	d := &dispatch{router: r, path: req.normalizedPath()}
	method := strings.ToUpper(req.Method)

	for _, e := range r.before[method] {
		res := MatchPattern(e.pattern, d.path)
		if !res.Matched {
			continue
		}
		if _, err := d.invoke(ctx, e.handler, res.Params); err != nil {
			return false, err
		}
	}

	var handled bool
	for _, e := range r.routes[method] {
		res := MatchPattern(e.pattern, d.path)
		if !res.Matched {
			continue
		}
		ran, err := d.invoke(ctx, e.handler, res.Params)
		if err != nil {
			return false, err
		}
		// First pattern match wins, resolvable or not.
		handled = ran
		break
	}

	if !handled {
		if err := d.triggerNotFound(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	if onComplete != nil {
		onComplete()
	}
	return true, nil
}

// invoke resolves and calls a handler. A resolution failure is not an
// error at this layer: it escalates to the fallback protocol and
// reports ran == false, the same treatment as an unmatched route.
// Execution errors come back unchanged.
func (d *dispatch) invoke(ctx context.Context, h HandlerRef, params []Param) (bool, error) {
	fn, err := h.resolve(d.router.resolver)
	if err != nil {
		return false, d.triggerNotFound(ctx)
	}

	if err := fn(ctx, params); err != nil {
		return false, err
	}
	return true, nil
}

// triggerNotFound runs the fallback protocol at most once per dispatch.
// Every pattern fallback matching the path runs, without
// short-circuiting. The default fallback runs only when no pattern
// fallback matched. When neither exists, the not-found outcome surfaces
// solely through Run's boolean result.
func (d *dispatch) triggerNotFound(ctx context.Context) error {
	if d.notFoundRan {
		return nil
	}
	d.notFoundRan = true

	var matched int
	for _, e := range d.router.fallbacks {
		res := MatchPattern(e.pattern, d.path)
		if !res.Matched {
			continue
		}
		matched++
		if _, err := d.invoke(ctx, e.handler, res.Params); err != nil {
			return err
		}
	}

	if matched == 0 && !d.router.notFound.IsZero() {
		if _, err := d.invoke(ctx, d.router.notFound, nil); err != nil {
			return err
		}
	}
	return nil
}
