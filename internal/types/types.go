// Package types contains common types used across the uri package.
package types

import (
	"io"

	"github.com/google/go-cmp/cmp"
)

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Components selects the URI components to render. The slice order is
	// irrelevant: assembly always follows the canonical component order.
	// A nil slice selects all components.
	// An empty non-nil slice selects nothing and renders an empty string.
	Components []Component
	// Overrides substitutes values for selected components during a single
	// rendering call without mutating the rendered value.
	Overrides map[Component]string
}

// Selection returns the component set and override map described by the options.
// Nil options or a nil Components slice select every component.
func (opts *RenderOptions) Selection() (ComponentSet, map[Component]string) {
	if opts == nil {
		return AllComponentSet(), nil
	}
	if opts.Components == nil {
		return AllComponentSet(), opts.Overrides
	}
	return NewComponentSet(opts.Components...), opts.Overrides
}

type ValidFlag interface {
	IsValid() bool
}

// IsValid returns true if the value has method `IsValid() bool` and it returns true.
func IsValid(v any) bool {
	vv, ok := v.(ValidFlag)
	return ok && vv.IsValid()
}

type Equalable interface {
	Equal(val any) bool
}

// IsEqual returns true if the values are equal.
func IsEqual(v1, v2 any) bool {
	if v, ok := v1.(Equalable); ok {
		return v.Equal(v2)
	} else if v, ok := v2.(Equalable); ok {
		return v.Equal(v1)
	}
	return cmp.Equal(v1, v2)
}

type Cloneable[T any] interface {
	Clone() T
}

// Clone clones the value if it has method `Clone() T`, otherwise returns a zero value.
func Clone[T any](v any) T {
	if v1, ok := v.(Cloneable[T]); ok {
		return v1.Clone()
	}
	if v == nil {
		var zero T
		return zero
	}
	v1, _ := v.(T)
	return v1
}
