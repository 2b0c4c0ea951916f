package router_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback/router"
)

type testController struct{}

func (tc testController) Action(name string) (router.HandlerFunc, bool) {
	if name != "show" {
		return nil, false
	}

	return func(args ...string) (any, error) {
		return "shown: " + args[0], nil
	}, true
}

func newTestRegistry() router.Registry {
	return router.RegistryMap{
		"users": func() router.Actions { return testController{} },
	}
}

func TestHandlerFuncInvoke(t *testing.T) {
	t.Run("Calls-Positionally", func(t *testing.T) {
		var got []string
		h := router.HandlerFunc(func(args ...string) (any, error) {
			got = args
			return "ok", nil
		})

		actual, err := h.Invoke(nil, "a", "b")
		require.Nil(t, err)
		require.Equal(t, "ok", actual)
		require.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Nil-Func", func(t *testing.T) {
		var h router.HandlerFunc
		_, err := h.Invoke(nil)
		require.ErrorIs(t, err, router.ErrBadHandler)
	})

	t.Run("Propagates-Error", func(t *testing.T) {
		boom := errors.New("boom")
		h := router.HandlerFunc(func(args ...string) (any, error) { return nil, boom })

		_, err := h.Invoke(nil)
		require.ErrorIs(t, err, boom)
	})
}

func TestDescriptorInvoke(t *testing.T) {
	reg := newTestRegistry()

	t.Run("Resolves", func(t *testing.T) {
		d := router.Descriptor{Controller: "users", Action: "show"}
		actual, err := d.Invoke(reg, "42")
		require.Nil(t, err)
		require.Equal(t, "shown: 42", actual)
	})

	t.Run("Unknown-Controller", func(t *testing.T) {
		d := router.Descriptor{Controller: "ghosts", Action: "show"}
		_, err := d.Invoke(reg)
		require.ErrorIs(t, err, router.ErrBadHandler)
		require.Contains(t, err.Error(), "ghosts")
	})

	t.Run("Unknown-Action", func(t *testing.T) {
		d := router.Descriptor{Controller: "users", Action: "vanish"}
		_, err := d.Invoke(reg)
		require.ErrorIs(t, err, router.ErrBadHandler)
		require.Contains(t, err.Error(), "vanish")
	})

	t.Run("No-Registry", func(t *testing.T) {
		d := router.Descriptor{Controller: "users", Action: "show"}
		_, err := d.Invoke(nil)
		require.ErrorIs(t, err, router.ErrBadHandler)
	})
}
