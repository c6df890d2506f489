package resource

import (
	"fmt"
	"maps"
	"slices"

	"resource-assembler/internal/spec"
)

// Registry maps type names to Specifications. Last registration wins.
// It implements extract.Lookup.
type Registry struct {
	specs map[string]*spec.Specification
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: map[string]*spec.Specification{}}
}

// NewRegistryFromConfig registers a Specification for every configured type.
func NewRegistryFromConfig(cfg *spec.Config) (*Registry, error) {
	specs, err := cfg.Compile()
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	maps.Copy(r.specs, specs)

	return r, nil
}

// LoadRegistry reads a YAML configuration file and builds a registry from it.
func LoadRegistry(path string) (*Registry, error) {
	cfg, err := spec.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return NewRegistryFromConfig(cfg)
}

// Register compiles o into a Specification of type typ and stores it.
func (r *Registry) Register(typ string, o spec.Override) error {
	s, err := spec.New(typ, o)
	if err != nil {
		return err
	}

	r.specs[typ] = s

	return nil
}

// RegisterSpecification stores a prebuilt Specification under typ.
func (r *Registry) RegisterSpecification(typ string, s *spec.Specification) error {
	if typ == "" {
		return fmt.Errorf("%w: type must be a non-empty string", spec.ErrInvalidSpec)
	}

	if s == nil {
		return fmt.Errorf("%w: nil specification for %q", spec.ErrInvalidSpec, typ)
	}

	r.specs[typ] = s

	return nil
}

// Has returns true if typ is registered.
func (r *Registry) Has(typ string) bool {
	_, ok := r.specs[typ]
	return ok
}

// Get returns the Specification registered under typ.
func (r *Registry) Get(typ string) (*spec.Specification, error) {
	s, ok := r.specs[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	return s, nil
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.specs))
}

// CreateResource returns a Builder preconfigured with the Specification
// registered under typ and resolving relationship types through r. The
// builder produces the Specification's own type, which may differ from typ
// when it was registered with RegisterSpecification.
func (r *Registry) CreateResource(typ string) (Builder, error) {
	s, err := r.Get(typ)
	if err != nil {
		return Builder{}, err
	}

	return Builder{typ: s.Type(), base: s, registry: r}, nil
}
