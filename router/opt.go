package router

import (
	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/logger"
)

// A RouterOptFn is a functional option configuring a *Router when constructing a new one.
type RouterOptFn func(*Router)

// WithEnv sets the Environment the Router is operating in.
func WithEnv(env switchback.Environment) RouterOptFn {
	return func(r *Router) {
		r.env = env
	}
}

// WithLogger sets the logger.Logger the Router emits registration
// and dispatch logs with.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(r *Router) {
		r.log = l
	}
}

// WithRegistry sets the Registry that resolves Descriptor handlers.
// A Router without one can still dispatch Descriptors,
// but invoking them fails with ErrBadHandler.
func WithRegistry(reg Registry) RouterOptFn {
	return func(r *Router) {
		r.reg = reg
	}
}
