package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/extractor/core/extension"
	"github.com/dmitrymomot/extractor/core/extract"
	"github.com/dmitrymomot/extractor/core/handler"
)

// methodAll marks a handler registered for every method.
const methodAll = "*"

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodDelete:  true,
	http.MethodPatch:   true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// endpoint holds every handler registered for one pattern.
type endpoint[C handler.Context] struct {
	pattern  string
	names    []string
	handlers map[string]handler.HandlerFunc[C]
}

// lookup returns the handler for method, falling back to GET for HEAD.
func (e *endpoint[C]) lookup(method string) handler.HandlerFunc[C] {
	if fn, ok := e.handlers[method]; ok {
		return fn
	}
	if method == http.MethodHead {
		if fn, ok := e.handlers[http.MethodGet]; ok {
			return fn
		}
	}
	return e.handlers[methodAll]
}

// allowed lists the methods the endpoint answers, for the Allow header.
func (e *endpoint[C]) allowed() string {
	methods := make([]string, 0, len(e.handlers)+1)
	for method := range e.handlers {
		methods = append(methods, method)
	}
	if _, ok := e.handlers[http.MethodGet]; ok && !slices.Contains(methods, http.MethodHead) {
		methods = append(methods, http.MethodHead)
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}

// table is the route registry shared by a router and its inline groups.
type table[C handler.Context] struct {
	serveMux  *http.ServeMux
	endpoints map[string]*endpoint[C]
	routes    []Route
}

// mux is the private implementation of the Router interface.
type mux[C handler.Context] struct {
	table        *table[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C] // for inline groups
	inline       bool
	prefix       string
	hasRoutes    bool
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		table: &table[C]{
			serveMux:  http.NewServeMux(),
			endpoints: make(map[string]*endpoint[C]),
		},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the default *Context works without a factory.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	// Lowest-precedence pattern: anything no route matched.
	m.table.serveMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(w, r, nil, nil)
	})

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.table.serveMux.ServeHTTP(w, r)
}

// dispatch runs the handler of ep for r. A nil ep means no route matched.
// Each request gets a fresh extension map carrying the ordered path parameters.
func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, ep *endpoint[C], params []extract.URLParam) {
	ww := newResponseWriter(w)

	exts := extension.New()
	extract.SetURLParams(exts, params)
	r = r.WithContext(extension.WithMap(r.Context(), exts))

	var paramsMap map[string]string
	if len(params) > 0 {
		paramsMap = make(map[string]string, len(params))
		for _, p := range params {
			paramsMap[p.Name] = p.Value
		}
	}

	ctx := m.newContext(ww, r, paramsMap)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	if ep == nil {
		m.errorHandler(ctx, ErrNotFound)
		return
	}

	fn := ep.lookup(r.Method)
	if fn == nil {
		ww.Header().Set("Allow", ep.allowed())
		m.errorHandler(ctx, ErrMethodNotAllowed)
		return
	}

	if len(m.middlewares) > 0 {
		fn = handler.Chain(fn, m.middlewares...)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(methodAll, pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !knownMethods[method] {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.inline {
		m.middlewares = append(m.middlewares, middlewares...)
		return
	}
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates a new inline router with additional middleware.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		inline:       true,
		parent:       m,
		table:        m.table,
		prefix:       m.prefix,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
	}
}

// Group creates a new inline router for grouping routes.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route creates an inline router whose patterns are prefixed with prefix.
func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, prefix))
	}
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, prefix))
	}
	im := m.With().(*mux[C])
	im.prefix = joinPattern(m.prefix, prefix)
	fn(im)
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.table.routes)
}

// root returns the non-inline router that owns the table.
func (m *mux[C]) root() *mux[C] {
	curr := m
	for curr.inline {
		curr = curr.parent
	}
	return curr
}

// handle registers fn for method on pattern.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if fn == nil {
		panic(fmt.Errorf("%w: nil handler for '%s'", ErrInvalidPattern, pattern))
	}
	pattern = joinPattern(m.prefix, pattern)
	muxPattern, names := parsePattern(pattern)

	// Inline routers bake their middleware chain, outermost group first.
	if m.inline {
		var all []handler.Middleware[C]
		for curr := m; curr != nil && curr.inline; curr = curr.parent {
			all = append(slices.Clone(curr.middlewares), all...)
		}
		fn = handler.Chain(fn, all...)
	}

	root := m.root()
	root.hasRoutes = true

	ep, ok := m.table.endpoints[muxPattern]
	if !ok {
		ep = &endpoint[C]{
			pattern:  pattern,
			names:    names,
			handlers: make(map[string]handler.HandlerFunc[C]),
		}
		m.table.endpoints[muxPattern] = ep
		m.table.serveMux.HandleFunc(muxPattern, func(w http.ResponseWriter, r *http.Request) {
			params := make([]extract.URLParam, 0, len(ep.names))
			for _, name := range ep.names {
				params = append(params, extract.URLParam{Name: name, Value: r.PathValue(name)})
			}
			root.dispatch(w, r, ep, params)
		})
	}

	if _, dup := ep.handlers[method]; dup {
		panic(fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern))
	}
	ep.handlers[method] = fn
	m.table.routes = append(m.table.routes, Route{Method: method, Pattern: pattern})
}
