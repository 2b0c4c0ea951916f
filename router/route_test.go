package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/router"
)

func TestRoutePattern(t *testing.T) {
	tcs := []struct {
		name     string
		path     string
		expected string
	}{
		{"Static", "/users", "^/users$"},
		{"Root", "/", "^/$"},
		{"Empty", "", "^/$"},
		{"No-Leading-Slash", "users", "^/users$"},
		{"One-Placeholder", "/users/{id}", "^/users/([^/]+)$"},
		{"Two-Placeholders", "/users/{id}/posts/{postID}", "^/users/([^/]+)/posts/([^/]+)$"},
		{"Underscore-Name", "/files/{file_name}", "^/files/([^/]+)$"},
		{"Escaped-Literal", "/a.b", `^/a\.b$`},
		{"Bad-Placeholder-Stays-Literal", "/users/{9id}", `^/users/\{9id\}$`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := router.New()
			r.Get(tc.path, noopHandler())

			rts := r.Routes()[switchback.MethodGet]
			require.Len(t, rts, 1)
			require.Equal(t, tc.expected, rts[0].Pattern())
		})
	}
}

func TestRoutePatternDeterministic(t *testing.T) {
	r := router.New()
	r.Get("/users/{id}", noopHandler())
	r.Get("/users/{id}", noopHandler())

	rts := r.Routes()[switchback.MethodGet]
	require.Len(t, rts, 2)
	require.Equal(t, rts[0].Pattern(), rts[1].Pattern())
}

func TestRouteParamNames(t *testing.T) {
	r := router.New()
	r.Get("/orgs/{org}/repos/{repo}/issues/{num}", noopHandler())

	rts := r.Routes()[switchback.MethodGet]
	require.Len(t, rts, 1)
	require.Equal(t, []string{"org", "repo", "num"}, rts[0].ParamNames)
}

// TestRouteEscapedLiteralDoesNotMatch pins down that regexp metacharacters
// in literal segments match only themselves.
func TestRouteEscapedLiteralDoesNotMatch(t *testing.T) {
	r := router.New()
	r.Get("/a.b", noopHandler())

	require.True(t, r.Dispatch("GET", "/a.b", nil).Matched)
	require.False(t, r.Dispatch("GET", "/aXb", nil).Matched)
}

func noopHandler() router.HandlerFunc {
	return func(args ...string) (any, error) { return nil, nil }
}
