// Package router implements a pattern-dispatch request router: given a
// method and a path, it selects the registered handlers to execute, in a
// defined order, with path segments extracted as positional parameters.
//
// The package is transport-agnostic. It never reads ambient request
// state: the transport collaborator passes the resolved method, the raw
// path, and an optional base path into Run. The relayhttp package adapts
// it to net/http.
//
// # Patterns
//
// Route patterns are slash-separated templates. A "{name}" segment is a
// capture placeholder; its name is documentation only, parameters are
// positional:
//
//	r := router.NewRouter()
//	r.Get("/users/{id}", router.Func(func(ctx context.Context, params []router.Param) error {
//	    fmt.Println(params[0].Value)
//	    return nil
//	}))
//
// Everything outside placeholders is regular-expression text, so inline
// expressions and optional groups also work:
//
//	r.Get(`/movies/(\d+)`, showMovie)
//	r.Get(`/blog(/{id})?`, showBlog)
//
// A compiled pattern is anchored at both ends and never matches a prefix
// of a longer path. Compiled forms are cached per pattern string.
//
// When two placeholders are adjacent, parameter boundaries are
// reconstructed from capture-group offsets: the pattern
// "/files/{dir}/{name}" matching "/files/a/b/c.txt" yields the
// parameters "a/b" and "c.txt".
//
// # Dispatch order
//
// Before entries registered via Before act as scoped middleware: every
// before entry matching the request runs, in registration order. Route
// entries registered via Match (or the per-verb shorthands) then run
// until the first match. Registration order is the tie-break.
//
//	r.Before("GET|POST", "/admin(/.*)?", requireSession)
//	r.Get("/admin", adminIndex)
//
// Mount nests registrations under a shared prefix; mounts compose and
// the previous prefix is restored when the body returns:
//
//	r.Mount("/api", func() {
//	    r.Mount("/v1", func() {
//	        r.Get("/users/{id}", showUser) // effective pattern /api/v1/users/{id}
//	    })
//	})
//
// # Fallbacks
//
// When no route matches, pattern-keyed fallbacks registered via
// NotFoundPattern run for every match, then the default registered via
// NotFound runs if none of them fired. A false result from Run with a
// nil error means nothing handled the request and the transport should
// render its not-found response.
//
// # Named handlers
//
// A handler is either a direct callable (Func) or a "Controller::method"
// reference (Named) resolved through an injected Resolver at dispatch
// time. A reference that cannot be resolved is treated exactly like an
// unmatched route and escalates to the fallback protocol.
package router
