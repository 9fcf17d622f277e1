package bazaar

import (
	"fmt"
	"strings"
)

// Query modifiers, appended to a path after a "?".
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key and value returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries against the last committed state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryFunc lets a plain function serve as a QueryHandler.
type QueryFunc func(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)

var _ QueryHandler = QueryFunc(nil)

func (fn QueryFunc) Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error) {
	return fn(db, mod, data)
}

// QueryRegister adds the query handlers of one extension.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths to handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register binds a handler to the path. A path starts with "/" and never
// contains the "?" modifier separator. Registering a path twice panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "?") {
		panic(fmt.Sprintf("invalid query path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler bound to the path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// Route splits a request path such as "/listings?prefix" and returns the
// handler for "/listings" together with the "prefix" modifier. The handler
// is nil when nothing is bound to the path.
func (r QueryRouter) Route(fullPath string) (QueryHandler, string) {
	path, mod := fullPath, KeyQueryMod
	if i := strings.IndexByte(fullPath, '?'); i >= 0 {
		path, mod = fullPath[:i], fullPath[i+1:]
	}
	return r.routes[path], mod
}
