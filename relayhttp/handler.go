package relayhttp

import (
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/halcyonstack/relay/router"
)

// defaultOverrideHeaders is the header list checked, in order, for a
// method override on POST requests.
var defaultOverrideHeaders = []string{
	"X-HTTP-Method-Override",
	"X-Method-Override",
	"X-HTTP-Method",
}

// allowedOverrides is the set of methods a POST request may be
// overridden to.
var allowedOverrides = map[string]bool{
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// Config configures the net/http adapter.
type Config struct {
	// BasePath is stripped from the front of every request path before
	// dispatch, supporting a router served under a sub-directory.
	BasePath string

	// OverrideHeaders is the header list checked in order for a method
	// override on POST requests. When nil, defaultOverrideHeaders is
	// used.
	OverrideHeaders []string

	// DisableMethodOverride turns off method-override handling.
	DisableMethodOverride bool

	// OnComplete, when non-nil, is passed to every dispatch run and is
	// invoked after a matched route handler returned.
	OnComplete func()
}

// Handler adapts a router.Router to net/http. It resolves the dispatch
// method (method-override headers, HEAD served as GET with the body
// suppressed), carries the response writer and request through the
// dispatch context, and renders the not-found and error outcomes the
// core only signals.
type Handler struct {
	router *router.Router
	cfg    Config
}

// NewHandler returns an adapter serving r.
func NewHandler(r *router.Router, cfg Config) *Handler {
	return &Handler{router: r, cfg: cfg}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	method := req.Method

	var suppressBody bool
	switch {
	case method == http.MethodHead:
		// HEAD runs the GET tables; only the body is withheld.
		method = http.MethodGet
		suppressBody = true
	case method == http.MethodPost && !h.cfg.DisableMethodOverride:
		if o := overrideMethod(req.Header, h.overrideHeaders()); o != "" {
			method = o
		}
	}

	sw := &statusWriter{ResponseWriter: w}
	var out http.ResponseWriter = sw
	if suppressBody {
		out = &headWriter{statusWriter: sw}
	}

	ctx := newContext(req.Context(), out, req)

	handled, err := h.router.Run(ctx, router.Request{
		Method:   method,
		Path:     req.URL.RequestURI(),
		BasePath: h.cfg.BasePath,
	}, h.cfg.OnComplete)

	if err != nil {
		if !sw.wrote {
			http.Error(out, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if !handled && !sw.wrote {
		http.NotFound(out, req)
	}
}

func (h *Handler) overrideHeaders() []string {
	if h.cfg.OverrideHeaders != nil {
		return h.cfg.OverrideHeaders
	}
	return defaultOverrideHeaders
}

// overrideMethod returns the override verb from the first non-empty
// header, or an empty string when there is none, the value is not a
// valid token (RFC 9110 Section 9.1), or it is not an allowed override.
func overrideMethod(header http.Header, names []string) string {
	for _, name := range names {
		v := strings.TrimSpace(header.Get(name))
		if v == "" {
			continue
		}
		if !httpguts.ValidHeaderFieldName(v) {
			return ""
		}
		m := strings.ToUpper(v)
		if !allowedOverrides[m] {
			return ""
		}
		return m
	}
	return ""
}

// statusWriter tracks whether anything was written, so the adapter can
// decide whether the not-found or error outcome still needs rendering.
type statusWriter struct {
	http.ResponseWriter
	wrote bool
}

func (w *statusWriter) WriteHeader(code int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// headWriter discards the body while keeping status and headers, for
// HEAD requests served through the GET tables.
type headWriter struct {
	*statusWriter
}

func (w *headWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return len(b), nil
}
