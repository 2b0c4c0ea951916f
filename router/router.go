package router

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/logger"
)

// MethodOverrideField is the form field consulted for a method override.
// Clients that can only issue GET and POST - HTML forms, notably -
// simulate PUT, PATCH and DELETE by POSTing with this field set.
const MethodOverrideField = "_method"

// An OverrideFn reads the named form field from the request being dispatched,
// reporting whether the field was present at all.
// It is how the caller hands dispatch its one piece of request-body state
// without the router ever touching the body itself.
type OverrideFn func(field string) (string, bool)

// A Result is the outcome of a single dispatch.
// The zero value is the not-found outcome.
type Result struct {
	// Matched reports whether any route matched.
	Matched bool

	// Route is the matched route. Zero-valued unless Matched.
	Route Route

	// Handler is the matched route's handler. Nil unless Matched.
	Handler Handler

	// Params are the path parameters the match captured, in placeholder order.
	Params Params
}

// A Router holds an ordered collection of compiled routes per HTTP method
// and matches dispatched requests against them.
//
// Register every route before the first Dispatch;
// after that the table is read-only and safe for concurrent use.
type Router struct {
	env      switchback.Environment
	log      logger.Logger
	reg      Registry
	prefixes []string
	routes   map[switchback.Method][]Route
	notFound Handler
}

// New constructs a *Router using the RouterOptFns passed in.
func New(opts ...RouterOptFn) *Router {
	r := &Router{
		env:    switchback.Development,
		routes: make(map[switchback.Method][]Route, len(switchback.AllMethods())),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		r.log = logger.New()
	}

	return r
}

// Get registers handler for GET requests matching path.
func (r *Router) Get(path string, handler Handler) { r.handle(switchback.MethodGet, path, handler) }

// Post registers handler for POST requests matching path.
func (r *Router) Post(path string, handler Handler) { r.handle(switchback.MethodPost, path, handler) }

// Put registers handler for PUT requests matching path.
func (r *Router) Put(path string, handler Handler) { r.handle(switchback.MethodPut, path, handler) }

// Patch registers handler for PATCH requests matching path.
func (r *Router) Patch(path string, handler Handler) { r.handle(switchback.MethodPatch, path, handler) }

// Delete registers handler for DELETE requests matching path.
func (r *Router) Delete(path string, handler Handler) { r.handle(switchback.MethodDelete, path, handler) }

// Any registers handler under path for every supported method.
// Each method gets its own independently compiled Route, not a shared one.
func (r *Router) Any(path string, handler Handler) {
	for _, m := range switchback.AllMethods() {
		r.handle(m, path, handler)
	}
}

// Group runs body with prefix pushed onto the stack of open prefixes,
// so registrations inside body compose prefixes without repeating them:
//
//	r.Group("/api", func(r *router.Router) {
//		r.Get("/users/{id}", h) // answers at /api/users/{id}
//	})
//
// Groups nest. The prefix is popped however body exits - a panicking body
// cannot leak its prefix into later registrations.
func (r *Router) Group(prefix string, body func(*Router)) {
	r.prefixes = append(r.prefixes, prefix)
	defer func() { r.prefixes = r.prefixes[:len(r.prefixes)-1] }()

	body(r)
}

// HandleNotFound sets the Handler invoked - with no arguments -
// when no route matches a dispatched request.
// Without one, dispatch resolves to [DefaultNotFound].
func (r *Router) HandleNotFound(handler Handler) { r.notFound = handler }

// Routes returns the full route table for introspection and debugging.
func (r *Router) Routes() map[switchback.Method][]Route {
	table := make(map[switchback.Method][]Route, len(r.routes))
	for m, rts := range r.routes {
		table[m] = append([]Route(nil), rts...)
	}

	return table
}

// Dispatch resolves method and target against the route table.
//
// The effective method is the literal method unless that is POST and
// override reports the [MethodOverrideField] field present, in which case
// the field's upper-cased value takes over. A nil override never fires.
//
// Only the path component of target is matched; query string and fragment
// are discarded. An effective method outside the supported five is an
// immediate not-found, as is a path no route pattern matches.
//
// Dispatch is a pure function of its inputs and the table built beforehand.
func (r *Router) Dispatch(method, target string, override OverrideFn) Result {
	m := effectiveMethod(method, override)
	if err := m.Valid(); err != nil {
		r.log.Debug("unsupported method", &logger.LogContext{Data: map[string]any{"method": m.String()}})
		return Result{}
	}

	path := pathComponent(target)
	for _, rt := range r.routes[m] {
		params, ok := rt.match(path)
		if !ok {
			continue
		}

		return Result{Matched: true, Route: rt, Handler: rt.Handler, Params: params}
	}

	r.log.Debug("no route matched", &logger.LogContext{
		Data: map[string]any{"method": m.String(), "path": path},
	})

	return Result{}
}

// Invoke runs the matched handler held in res,
// passing the captured parameter values positionally.
// A Result without a handler wraps ErrBadHandler.
func (r *Router) Invoke(res Result) (any, error) {
	if res.Handler == nil {
		return nil, fmt.Errorf("%w: no handler in result", ErrBadHandler)
	}

	return res.Handler.Invoke(r.reg, res.Params.Values()...)
}

// NotFound resolves the not-found outcome:
// the custom handler's result when one was registered via HandleNotFound,
// otherwise the [DefaultNotFound] response data.
func (r *Router) NotFound() (any, error) {
	if r.notFound != nil {
		return r.notFound.Invoke(r.reg)
	}

	return DefaultNotFound(), nil
}

// handle compiles path - group prefixes applied - and appends the Route
// to method's sequence. First registered, first matched.
func (r *Router) handle(method switchback.Method, path string, handler Handler) {
	full := normalizePath(strings.Join(r.prefixes, "") + path)
	pattern, names := compilePattern(full)

	rt := Route{
		Method:     method,
		Path:       full,
		ParamNames: names,
		Handler:    handler,
		pattern:    pattern,
	}
	r.routes[method] = append(r.routes[method], rt)

	r.log.Debug("registered route", &logger.LogContext{
		Data: map[string]any{"method": method.String(), "route": full, "pattern": rt.Pattern()},
	})
}

// effectiveMethod applies the POST override convention to the literal method.
func effectiveMethod(method string, override OverrideFn) switchback.Method {
	if method == switchback.MethodPost.String() && override != nil {
		if val, ok := override(MethodOverrideField); ok {
			return switchback.NewMethod(val)
		}
	}

	return switchback.Method(method)
}

// pathComponent strips the query string and fragment from target.
func pathComponent(target string) string {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}

	return target
}
