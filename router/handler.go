package router

import "fmt"

// A Handler is the code a [Route] points at. It comes in two shapes:
// a [HandlerFunc] invoked directly, or a [Descriptor] naming a controller
// type and an action on it, resolved through a [Registry] at dispatch time.
type Handler interface {
	// Invoke runs the handler with the positional arguments args,
	// the captured parameter values in placeholder order.
	// Resolution failures wrap [ErrBadHandler].
	Invoke(reg Registry, args ...string) (any, error)
}

// A HandlerFunc is a directly invocable [Handler].
// Its arguments arrive in the order the placeholders appear in the route path.
type HandlerFunc func(args ...string) (any, error)

// Invoke implements [Handler], ignoring the Registry.
func (f HandlerFunc) Invoke(_ Registry, args ...string) (any, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil HandlerFunc", ErrBadHandler)
	}

	return f(args...)
}

// A Descriptor is a [Handler] referencing an action on a controller by name.
// The controller is resolved and constructed fresh for each invocation
// through the [Registry] the [*Router] was configured with.
type Descriptor struct {
	Controller string
	Action     string
}

// Invoke implements [Handler] by resolving the named controller through reg,
// constructing an instance and calling the named action on it.
func (d Descriptor) Invoke(reg Registry, args ...string) (any, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: no registry to resolve %s.%s", ErrBadHandler, d.Controller, d.Action)
	}

	construct, ok := reg.Resolve(d.Controller)
	if !ok || construct == nil {
		return nil, fmt.Errorf("%w: unknown controller %q", ErrBadHandler, d.Controller)
	}

	action, ok := construct().Action(d.Action)
	if !ok || action == nil {
		return nil, fmt.Errorf("%w: controller %q has no action %q", ErrBadHandler, d.Controller, d.Action)
	}

	return action(args...)
}

// Actions exposes a controller's invocable actions by name.
// Controllers reachable through a [Registry] implement it.
type Actions interface {
	Action(name string) (HandlerFunc, bool)
}

// A Registry resolves controller names to constructors on behalf of [Descriptor] handlers.
// The embedding application supplies one through [WithRegistry].
type Registry interface {
	Resolve(controller string) (func() Actions, bool)
}

// A RegistryMap is a ready-made [Registry] for applications
// that can enumerate their controllers up front.
type RegistryMap map[string]func() Actions

// Resolve implements [Registry].
func (rm RegistryMap) Resolve(controller string) (func() Actions, bool) {
	construct, ok := rm[controller]
	return construct, ok
}
