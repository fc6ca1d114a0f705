package eventcontract

import "sort"

// Registry maps each type tag to its schema. The contract is closed, so
// the mapping is fixed at build time: there is no registration API and a
// Registry is never mutated after construction, which makes it safe for
// unsynchronized concurrent use.
type Registry struct {
	schemas map[EventType]*Schema
}

func newRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: make(map[EventType]*Schema, len(schemas))}
	for _, s := range schemas {
		r.schemas[s.Type] = s
	}
	return r
}

// Lookup returns the schema for a type tag.
func (r *Registry) Lookup(t EventType) (*Schema, bool) {
	s, ok := r.schemas[t]
	return s, ok
}

// Has reports whether the tag is part of the contract.
func (r *Registry) Has(t EventType) bool {
	_, ok := r.schemas[t]
	return ok
}

// Types returns every tag in the contract, sorted. Consumers use this to
// subscribe exhaustively.
func (r *Registry) Types() []EventType {
	types := make([]EventType, 0, len(r.schemas))
	for t := range r.schemas {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// DefaultRegistry holds the six event types of the current contract
// version.
var DefaultRegistry = newRegistry(
	orderCreatedSchema,
	orderConfirmedSchema,
	orderShippedSchema,
	orderCancelledSchema,
	paymentAuthorizedSchema,
	paymentFailedSchema,
)
