package container

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
)

// DtypeName is the single recognized element-type name for containers.
const DtypeName = "timeseries"

// Dtype identifies the container's opaque element type to a host
// columnar framework. The type carries no state; its identity is the
// name "timeseries".
type Dtype struct{}

// Name returns the recognized type name.
func (Dtype) Name() string { return DtypeName }

// NA returns the marker a host framework should use for missing
// elements of this type.
func (Dtype) NA() any { return nil }

func (d Dtype) String() string { return d.Name() }

// Dtype returns the container's element type.
func (a *TimeArray) Dtype() Dtype { return Dtype{} }

// ConstructDtype builds the dtype from its name string. Only the exact
// recognized name succeeds; anything else fails with ErrUnknownTypeName.
func ConstructDtype(name string) (Dtype, error) {
	if name != DtypeName {
		return Dtype{}, fmt.Errorf("cannot construct a dtype from %q: %w", name, errs.ErrUnknownTypeName)
	}

	return Dtype{}, nil
}

// Registry maps type names to dtypes for a host framework. Registration
// is explicit initialization performed once by the embedding application;
// nothing registers itself at import time.
type Registry struct {
	types map[string]Dtype
}

// NewRegistry creates an empty dtype registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Dtype)}
}

// Register adds the dtype under its name.
func (r *Registry) Register(d Dtype) {
	r.types[d.Name()] = d
}

// Lookup resolves a registered dtype by name. Fails with
// ErrUnknownTypeName for names that were never registered.
func (r *Registry) Lookup(name string) (Dtype, error) {
	d, ok := r.types[name]
	if !ok {
		return Dtype{}, fmt.Errorf("dtype %q not registered: %w", name, errs.ErrUnknownTypeName)
	}

	return d, nil
}
