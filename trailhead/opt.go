package trailhead

import (
	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/logger"
	"github.com/xy-planning-network/switchback/router"
)

// A TrailheadOptFn is a functional option configuring a *Trailhead when constructing a new one.
type TrailheadOptFn func(*Trailhead)

// WithEnv sets the Environment, overriding the ENVIRONMENT environment variable.
func WithEnv(env switchback.Environment) TrailheadOptFn {
	return func(th *Trailhead) {
		th.Env = env
	}
}

// WithLogger sets the logger.Logger every component shares,
// overriding the LOG_LEVEL-derived default.
func WithLogger(l logger.Logger) TrailheadOptFn {
	return func(th *Trailhead) {
		th.Logger = l
	}
}

// WithRegistry sets the router.Registry that resolves Descriptor handlers.
func WithRegistry(reg router.Registry) TrailheadOptFn {
	return func(th *Trailhead) {
		th.reg = reg
	}
}
