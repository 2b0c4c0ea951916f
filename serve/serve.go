package serve

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/xy-planning-network/switchback/logger"
	"github.com/xy-planning-network/switchback/router"
)

const (
	jsonMediaType = "application/json; charset=UTF-8"

	// RequestIDHeader carries the unique ID assigned to each request,
	// correlating responses with log lines.
	RequestIDHeader = "X-Request-Id"
)

// jsonSchema shapes every body serve writes.
type jsonSchema struct {
	D any    `json:"data,omitempty"`
	E string `json:"error,omitempty"`
}

// A Handler is the http.Handler bridging net/http and a *router.Router.
//
// Handler renders matched handler results as {"data": ...},
// handler failures as a 500 {"error": ...} and unmatched requests
// per the router's not-found resolution.
type Handler struct {
	rt   *router.Router
	log  logger.Logger
	pool *sync.Pool
}

// New constructs a *Handler dispatching against rt,
// configured by the HandlerOptFns passed in.
func New(rt *router.Router, opts ...HandlerOptFn) *Handler {
	h := &Handler{
		rt:   rt,
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.log == nil {
		h.log = logger.New()
	}

	return h
}

// ServeHTTP responds to an HTTP request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	w.Header().Set(RequestIDHeader, reqID)

	res := h.rt.Dispatch(r.Method, r.URL.RequestURI(), overrideFrom(r))
	if !res.Matched {
		h.notFound(w, r, reqID)
		return
	}

	out, err := h.rt.Invoke(res)
	if err != nil {
		h.log.Error("handler invocation failed", &logger.LogContext{
			Error:   err,
			Request: r,
			Data:    map[string]any{"requestID": reqID, "route": res.Route.Path},
		})
		h.write(w, r, http.StatusInternalServerError, jsonMediaType, jsonSchema{E: "internal server error"})
		return
	}

	h.write(w, r, http.StatusOK, jsonMediaType, jsonSchema{D: out})
}

// notFound renders the router's not-found resolution:
// the default response data verbatim, or a custom handler's result
// like any other handler result.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, reqID string) {
	out, err := h.rt.NotFound()
	if err != nil {
		h.log.Error("not-found handler failed", &logger.LogContext{
			Error:   err,
			Request: r,
			Data:    map[string]any{"requestID": reqID},
		})
		h.write(w, r, http.StatusInternalServerError, jsonMediaType, jsonSchema{E: "internal server error"})
		return
	}

	if nfr, ok := out.(router.NotFoundResponse); ok {
		h.write(w, r, nfr.Code, nfr.ContentType, nfr.Body)
		return
	}

	h.write(w, r, http.StatusOK, jsonMediaType, jsonSchema{D: out})
}

// write JSON-encodes payload into a pooled buffer before touching w,
// so an encoding failure can still become a clean 500.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, code int, mediaType string, payload any) {
	b := h.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer h.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		h.log.Error("encoding response failed", &logger.LogContext{Error: err, Request: r})
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil {
		h.log.Error("writing response failed", &logger.LogContext{Error: err, Request: r})
	}
}

// overrideFrom adapts r's form data into a router.OverrideFn.
// PostFormValue does the body parse; the router core never sees the body.
func overrideFrom(r *http.Request) router.OverrideFn {
	return func(field string) (string, bool) {
		val := r.PostFormValue(field)
		return val, val != ""
	}
}
