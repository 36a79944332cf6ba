package body

import (
	"github.com/google/uuid"
)

// IDFunc mints a new body id
type IDFunc func() string

// NewID returns a time-ordered UUIDv7 string
// Falls back to a random UUIDv4 if the clock sequence cannot be read
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Registry is the ordered collection of bodies
// Owned by a single actor; not safe for concurrent use
type Registry struct {
	bodies  []*Body
	index   map[string]int // id -> position in bodies
	newID   IDFunc
	version uint64
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithIDFunc overrides id minting, used by tests for stable ids
func WithIDFunc(f IDFunc) RegistryOption {
	return func(r *Registry) {
		if f != nil {
			r.newID = f
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		bodies: make([]*Body, 0, 16),
		index:  make(map[string]int),
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add creates a body from t and appends it; always succeeds
func (r *Registry) Add(t Template) Body {
	b := &Body{
		ID:           r.newID(),
		Kind:         t.Kind,
		Name:         t.Name,
		Radius:       t.Radius,
		Color:        t.Color,
		AngularSpeed: t.AngularSpeed,
		Mass:         t.Mass,
		HasRings:     t.HasRings,
		Moons:        max(t.Moons, 0),
		Description:  t.Description,
	}
	if t.Habitability != nil {
		h := *t.Habitability
		b.Habitability = &h
	}
	b.SetOrbit(t.OrbitRadius, t.Angle)

	r.index[b.ID] = len(r.bodies)
	r.bodies = append(r.bodies, b)
	r.version++
	return b.Clone()
}

// Update merges p into the body with the given id
// Returns false without side effects if the id is unknown
func (r *Registry) Update(id string, p Patch) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	if p.Empty() {
		return true
	}
	p.Apply(r.bodies[i])
	r.version++
	return true
}

// Remove deletes the body with the given id, order of the rest is kept
// Returns false if nothing was removed
func (r *Registry) Remove(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	copy(r.bodies[i:], r.bodies[i+1:])
	r.bodies[len(r.bodies)-1] = nil
	r.bodies = r.bodies[:len(r.bodies)-1]
	delete(r.index, id)
	for j := i; j < len(r.bodies); j++ {
		r.index[r.bodies[j].ID] = j
	}
	r.version++
	return true
}

// Clear removes every body
func (r *Registry) Clear() {
	clear(r.bodies)
	r.bodies = r.bodies[:0]
	clear(r.index)
	r.version++
}

// Get returns a copy of the body with the given id
func (r *Registry) Get(id string) (Body, bool) {
	i, ok := r.index[id]
	if !ok {
		return Body{}, false
	}
	return r.bodies[i].Clone(), true
}

// Snapshot returns an ordered copy of all bodies
func (r *Registry) Snapshot() []Body {
	out := make([]Body, len(r.bodies))
	for i, b := range r.bodies {
		out[i] = b.Clone()
	}
	return out
}

// Len returns the number of bodies
func (r *Registry) Len() int {
	return len(r.bodies)
}

// IDs returns body ids in list order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.bodies))
	for i, b := range r.bodies {
		ids[i] = b.ID
	}
	return ids
}

// Version increments on every mutation
func (r *Registry) Version() uint64 {
	return r.version
}
