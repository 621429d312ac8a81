package router

import (
	"net/http"
	"strings"
)

// allMethods is the fixed verb set a "*" registration expands into.
// A wildcard never survives as a table key: it expands eagerly into one
// entry per verb at registration time.
var allMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodHead,
}

// routeEntry pairs an effective pattern with its handler. Entries are
// immutable once appended to a table.
type routeEntry struct {
	pattern string
	handler HandlerRef
}

// Router holds the before and route tables, the fallback table, and the
// registration scope.
//
// The tables are meant to be populated once, during a registration
// phase, and are read-only during dispatch. The mount scope is
// registration-phase state only and is never consulted while a request
// is being dispatched. Hosts serving requests concurrently must finish
// registration before the first Run.
type Router struct {
	before map[string][]routeEntry
	routes map[string][]routeEntry

	// fallbacks holds the pattern-keyed not-found entries in
	// registration order. The distinguished "/" entry lives in
	// notFound instead, so it only runs when no pattern fired.
	fallbacks []routeEntry
	notFound  HandlerRef

	scope    string
	resolver Resolver
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{
		before: make(map[string][]routeEntry),
		routes: make(map[string][]routeEntry),
	}
}

// SetResolver injects the resolver used for named handler references.
func (r *Router) SetResolver(res Resolver) {
	r.resolver = res
}

// Before registers a middleware entry for the given methods. Every
// matching before entry runs on dispatch, without short-circuiting.
// methods is a pipe-separated verb list such as "GET|POST", or "*" for
// the full verb set.
func (r *Router) Before(methods, pattern string, handler HandlerRef) {
	r.add(r.before, methods, pattern, handler)
}

// Match registers a route entry for the given methods. Only the first
// matching route runs on dispatch. methods follows the same form as in
// Before.
func (r *Router) Match(methods, pattern string, handler HandlerRef) {
	r.add(r.routes, methods, pattern, handler)
}

// Get registers a GET route.
func (r *Router) Get(pattern string, handler HandlerRef) {
	r.Match(http.MethodGet, pattern, handler)
}

// Post registers a POST route.
func (r *Router) Post(pattern string, handler HandlerRef) {
	r.Match(http.MethodPost, pattern, handler)
}

// Put registers a PUT route.
func (r *Router) Put(pattern string, handler HandlerRef) {
	r.Match(http.MethodPut, pattern, handler)
}

// Delete registers a DELETE route.
func (r *Router) Delete(pattern string, handler HandlerRef) {
	r.Match(http.MethodDelete, pattern, handler)
}

// Patch registers a PATCH route.
func (r *Router) Patch(pattern string, handler HandlerRef) {
	r.Match(http.MethodPatch, pattern, handler)
}

// Options registers an OPTIONS route.
func (r *Router) Options(pattern string, handler HandlerRef) {
	r.Match(http.MethodOptions, pattern, handler)
}

// All registers a route for every verb in the known set.
func (r *Router) All(pattern string, handler HandlerRef) {
	r.Match("*", pattern, handler)
}

// Mount runs body with prefix appended to the current registration
// scope, so registrations inside body compose prefixes ("/api" inside
// "/v1" yields "/api/v1/..."). The previous scope is restored on every
// exit path, including a panic inside body.
func (r *Router) Mount(prefix string, body func()) {
	saved := r.scope
	defer func() { r.scope = saved }()

	r.scope += prefix
	body()
}

// NotFound registers the default fallback handler, invoked only when no
// route and no pattern fallback matched the request path.
func (r *Router) NotFound(handler HandlerRef) {
	r.notFound = handler
}

// NotFoundPattern registers a pattern-keyed fallback. When no route
// matches a request, every fallback whose pattern matches the path runs,
// in registration order and without short-circuiting. The distinguished
// pattern "/" registers the default fallback instead.
func (r *Router) NotFoundPattern(pattern string, handler HandlerRef) {
	if pattern == "/" {
		r.notFound = handler
		return
	}
	r.fallbacks = append(r.fallbacks, routeEntry{pattern: pattern, handler: handler})
}

// add appends one entry per expanded method to the given table.
func (r *Router) add(table map[string][]routeEntry, methods, pattern string, handler HandlerRef) {
	entry := routeEntry{pattern: r.effectivePattern(pattern), handler: handler}
	for _, m := range expandMethods(methods) {
		table[m] = append(table[m], entry)
	}
}

// effectivePattern joins the current mount scope with pattern. The
// trailing slash is stripped unless the scope is empty, so mounting "/"
// under "/api" yields "/api" while a top-level "/" stays "/".
func (r *Router) effectivePattern(pattern string) string {
	p := r.scope + "/" + strings.Trim(pattern, "/")
	if r.scope != "" {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// expandMethods splits a pipe-separated verb list, uppercasing each
// token. A "*" anywhere in the list expands to the full verb set.
func expandMethods(methods string) []string {
	var out []string
	for _, m := range strings.Split(methods, "|") {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if m == "*" {
			return allMethods
		}
		out = append(out, m)
	}
	return out
}
