package router

// A Param is a single path parameter captured during dispatch.
type Param struct {
	Key   string
	Value string
}

// Params are the path parameters captured during dispatch,
// ordered by where their placeholders first appear in the route path.
//
// The ordering is load-bearing: handlers are invoked positionally
// with [Params.Values].
type Params []Param

// Get retrieves the value captured for key,
// reporting whether any capture for key exists.
func (ps Params) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Map returns the parameters keyed by placeholder name.
//
// If a placeholder repeats in a route path, the last capture wins.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}

	return m
}

// Values returns the captured values in placeholder order,
// the argument list a matched handler is invoked with.
func (ps Params) Values() []string {
	vals := make([]string, 0, len(ps))
	for _, p := range ps {
		vals = append(vals, p.Value)
	}

	return vals
}
