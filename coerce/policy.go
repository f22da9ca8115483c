package coerce

import (
	"maps"

	"github.com/erraggy/oastype/internal/naming"
)

// NamePolicy derives the wire name of a record field from its in-memory
// snake_case name.
//
// Overrides are keyed by "Entity.field" (for example "RefValue.ref") and win
// over Transform. A nil Transform leaves names unchanged.
type NamePolicy struct {
	Transform func(string) string
	Overrides map[string]string
}

// DefaultPolicy transforms snake_case names to camelCase and has no
// overrides.
func DefaultPolicy() NamePolicy {
	return NamePolicy{Transform: naming.ToCamelCase}
}

// IdentityPolicy keeps in-memory names as wire names.
func IdentityPolicy() NamePolicy {
	return NamePolicy{}
}

// WithOverride returns a copy of p in which the field of entity is always
// written as wire.
func (p NamePolicy) WithOverride(entity, field, wire string) NamePolicy {
	overrides := make(map[string]string, len(p.Overrides)+1)
	maps.Copy(overrides, p.Overrides)
	overrides[entity+"."+field] = wire
	p.Overrides = overrides
	return p
}

// WireName returns the wire name of field on entity.
func (p NamePolicy) WireName(entity, field string) string {
	if wire, ok := p.Overrides[entity+"."+field]; ok {
		return wire
	}
	if p.Transform == nil {
		return field
	}
	return p.Transform(field)
}
