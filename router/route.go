package router

import (
	"regexp"
	"strings"

	"github.com/xy-planning-network/switchback"
)

// placeholderRegex matches a {name} placeholder whose name is a valid identifier.
// Braced tokens that are not valid identifiers stay literal.
var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// A Route maps a path to a [Handler] for one HTTP method.
// A Route is immutable once registered and lives as long as its [*Router].
type Route struct {
	// Method is the HTTP verb the Route answers to.
	Method switchback.Method

	// Path is the full path the Route was registered under,
	// group prefixes applied and normalized to lead with "/".
	Path string

	// ParamNames are the placeholder names in Path, in order of appearance.
	ParamNames []string

	// Handler is invoked when the Route matches.
	Handler Handler

	pattern *regexp.Regexp
}

// Pattern returns the source of the compiled matching expression,
// useful for introspection and debugging.
func (rt Route) Pattern() string { return rt.pattern.String() }

// match attempts a full-string match of the Route's pattern against path,
// returning the captured parameters in placeholder order.
func (rt Route) match(path string) (Params, bool) {
	subs := rt.pattern.FindStringSubmatch(path)
	if subs == nil {
		return nil, false
	}

	params := make(Params, 0, len(rt.ParamNames))
	for i, name := range rt.ParamNames {
		params = append(params, Param{Key: name, Value: subs[i+1]})
	}

	return params, true
}

// compilePattern derives the anchored matching expression for path.
//
// Each {name} placeholder becomes a capturing group matching one or more
// non-"/" characters; literal chunks are escaped so regexp metacharacters
// in them match verbatim. Compiling the same path twice yields an
// identical pattern.
func compilePattern(path string) (*regexp.Regexp, []string) {
	var b strings.Builder
	var names []string

	b.WriteString("^")
	last := 0
	for _, loc := range placeholderRegex.FindAllStringSubmatchIndex(path, -1) {
		b.WriteString(regexp.QuoteMeta(path[last:loc[0]]))
		b.WriteString("([^/]+)")
		names = append(names, path[loc[2]:loc[3]])
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(path[last:]))
	b.WriteString("$")

	return regexp.MustCompile(b.String()), names
}

// normalizePath ensures the fully prefixed path is absolute.
// Normalization happens after prefix application, so a group prefix
// lacking a leading slash still yields a valid absolute path.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}

	return path
}
