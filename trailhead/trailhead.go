package trailhead

import (
	"fmt"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/logger"
	"github.com/xy-planning-network/switchback/router"
	"github.com/xy-planning-network/switchback/serve"
)

const (
	environmentEnvVar = "ENVIRONMENT"
	logLevelEnvVar    = "LOG_LEVEL"
)

// A Trailhead exposes the configured components of a switchback app to one another.
type Trailhead struct {
	Env     switchback.Environment
	Logger  logger.Logger
	Router  *router.Router
	Handler http.Handler

	reg router.Registry
}

// New constructs a Trailhead from the process environment and the provided options.
// Options overwrite environment-derived configuration.
func New(opts ...TrailheadOptFn) (*Trailhead, error) {
	th := &Trailhead{
		Env: switchback.EnvVarOrEnv(environmentEnvVar, switchback.Development),
	}
	for _, opt := range opts {
		opt(th)
	}

	if err := th.Env.Valid(); err != nil {
		return nil, fmt.Errorf("%w: %q is not an environment", switchback.ErrBadConfig, th.Env)
	}

	if th.Logger == nil {
		ll := logger.NewLogLevel(switchback.EnvVarOrString(logLevelEnvVar, "INFO"))
		if ll == logger.LogLevelUnk {
			ll = logger.LogLevelInfo
		}

		th.Logger = logger.New(
			logger.WithEnv(th.Env.String()),
			logger.WithLevel(ll),
		)
	}

	routerOpts := []router.RouterOptFn{
		router.WithEnv(th.Env),
		router.WithLogger(th.Logger),
	}
	if th.reg != nil {
		routerOpts = append(routerOpts, router.WithRegistry(th.reg))
	}

	th.Router = router.New(routerOpts...)
	th.Handler = serve.New(th.Router, serve.WithLogger(th.Logger))

	return th, nil
}
