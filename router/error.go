package router

import "errors"

var (
	// ErrBadHandler reports a route misconfiguration: a nil handler,
	// a Descriptor naming an unknown controller or action,
	// or a Descriptor dispatched without a Registry.
	// It is a programming error and propagates to the caller;
	// dispatch never skips to a later route because of it.
	ErrBadHandler = errors.New("bad handler")
)
