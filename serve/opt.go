package serve

import "github.com/xy-planning-network/switchback/logger"

// A HandlerOptFn is a functional option configuring a *Handler when constructing a new one.
type HandlerOptFn func(*Handler)

// WithLogger sets the logger.Logger the Handler reports failures with.
func WithLogger(l logger.Logger) HandlerOptFn {
	return func(h *Handler) {
		h.log = l
	}
}
