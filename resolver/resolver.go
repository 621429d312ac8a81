package resolver

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/halcyonstack/relay/router"
)

// ErrMalformedRef is returned when a reference is not of the
// "Controller::method" form.
var ErrMalformedRef = errors.New("resolver: reference is not of the form Controller::method")

// ErrUnknownController is returned when no controller is registered
// under the referenced name.
var ErrUnknownController = errors.New("resolver: unknown controller")

// ErrUnknownMethod is returned when the referenced method does not exist
// on the controller or does not have the handler signature.
var ErrUnknownMethod = errors.New("resolver: unknown or unsuitable method")

// handlerSignature is the method shape a reference must resolve to.
type handlerSignature = func(context.Context, []router.Param) error

// Registry resolves "Controller::method" references against explicitly
// registered controller values. Method lookup uses reflection, so any
// exported method with the handler signature
// func(context.Context, []router.Param) error is reachable.
//
// Register all controllers before the first dispatch; the registry is
// read-only afterwards.
type Registry struct {
	namespace   string
	controllers map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		controllers: make(map[string]any),
	}
}

// SetNamespace sets a default namespace applied to bare controller
// names: with namespace "admin", the reference "Users::Index" looks up
// the controller registered as "admin.Users". Names that already
// contain a namespace separator are used as-is.
func (g *Registry) SetNamespace(ns string) {
	g.namespace = strings.Trim(ns, ".")
}

// Register stores a controller value under name. The value's exported
// methods with the handler signature become resolvable as
// "name::Method".
func (g *Registry) Register(name string, controller any) {
	g.controllers[name] = controller
}

// Resolve implements router.Resolver.
func (g *Registry) Resolve(ref string) (router.HandlerFunc, error) {
	name, method, ok := strings.Cut(ref, "::")
	if !ok || name == "" || method == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRef, ref)
	}

	if g.namespace != "" && !strings.Contains(name, ".") {
		name = g.namespace + "." + name
	}

	controller, ok := g.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownController, name)
	}

	m := reflect.ValueOf(controller).MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s::%s", ErrUnknownMethod, name, method)
	}

	fn, ok := m.Interface().(handlerSignature)
	if !ok {
		return nil, fmt.Errorf("%w: %s::%s has signature %s", ErrUnknownMethod, name, method, m.Type())
	}

	return fn, nil
}
