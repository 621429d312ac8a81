// Package relayhttp adapts the router package to net/http.
//
// The adapter owns every transport concern the core delegates: it
// resolves the dispatch method (method-override headers on POST, HEAD
// served through the GET tables with the body suppressed), strips a
// configured base path, carries the response writer and request through
// the dispatch context, and renders the not-found and error outcomes
// the core only reports.
//
//	r := router.NewRouter()
//	r.Get("/users/{id}", relayhttp.HandlerFunc(showUser))
//
//	http.ListenAndServe(":8080", relayhttp.NewHandler(r, relayhttp.Config{}))
//
// Handlers registered through HandlerFunc receive the writer and
// request directly:
//
//	func showUser(w http.ResponseWriter, r *http.Request, params []router.Param) error {
//	    relayhttp.ResponseJSON(w, http.StatusOK, map[string]string{"id": params[0].Value})
//	    return nil
//	}
//
// # Method override
//
// A POST request carrying one of the override headers
// (X-HTTP-Method-Override, X-Method-Override, X-HTTP-Method by default)
// dispatches as the override verb, restricted to PUT, PATCH, DELETE,
// HEAD and OPTIONS. Invalid tokens are ignored.
//
// # Outcome rendering
//
// When the dispatch reports nothing handled and no handler wrote to the
// response, the adapter writes a plain 404. When a handler returns an
// error and nothing was written yet, it writes a plain 500; the error
// itself is not exposed to the client.
package relayhttp
