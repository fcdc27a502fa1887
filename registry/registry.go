// Package registry tracks every live simulated entity, partitioned into
// named categories. The force engine reads it every frame; membership
// changes requested mid-tick are buffered and applied at tick boundaries
// via Flush.
package registry

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/steersim/core"
)

// Category names a registry partition.
type Category string

// Categories consumed by the force engine.
const (
	CategoryLiquid    Category = "Liquid"
	CategoryAttractor Category = "Attractor"
	CategoryRepeller  Category = "Repeller"
	CategoryHeat      Category = "Heat"
	CategoryAgent     Category = "Agent"
)

var knownCategories = map[Category]struct{}{
	CategoryLiquid:    {},
	CategoryAttractor: {},
	CategoryRepeller:  {},
	CategoryHeat:      {},
	CategoryAgent:     {},
}

// Member is anything that can live in the registry.
type Member interface {
	Entity() core.Entity
}

type pendingOp struct {
	member   Member
	category Category
	add      bool
}

// Registry is the shared store of live entities by category.
// Insertion order is preserved within each category.
type Registry struct {
	mu         sync.RWMutex
	byCategory map[Category][]Member
	categoryOf map[core.Entity]Category
	pending    []pendingOp
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byCategory: make(map[Category][]Member),
		categoryOf: make(map[core.Entity]Category),
	}
}

// Add inserts a member into a category immediately.
// Must not be called mid-tick; use QueueAdd from inside a running simulation.
// An unknown category is a configuration error and fails fast.
func (r *Registry) Add(m Member, cat Category) error {
	if _, ok := knownCategories[cat]; !ok {
		return fmt.Errorf("registry: unknown category %q", cat)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(m, cat)
}

func (r *Registry) addLocked(m Member, cat Category) error {
	e := m.Entity()
	if prev, ok := r.categoryOf[e]; ok {
		return fmt.Errorf("registry: entity %d already registered in %q", e, prev)
	}
	r.byCategory[cat] = append(r.byCategory[cat], m)
	r.categoryOf[e] = cat
	return nil
}

// Remove deletes a member immediately, preserving the order of the rest.
// Removing an unknown entity is a no-op.
func (r *Registry) Remove(e core.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(e)
}

func (r *Registry) removeLocked(e core.Entity) {
	cat, ok := r.categoryOf[e]
	if !ok {
		return
	}
	delete(r.categoryOf, e)

	members := r.byCategory[cat]
	for i, m := range members {
		if m.Entity() == e {
			r.byCategory[cat] = append(members[:i], members[i+1:]...)
			return
		}
	}
}

// QueueAdd requests an insertion to be applied at the next Flush.
// The category is validated now so misconfiguration surfaces at the call site.
func (r *Registry) QueueAdd(m Member, cat Category) error {
	if _, ok := knownCategories[cat]; !ok {
		return fmt.Errorf("registry: unknown category %q", cat)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, pendingOp{member: m, category: cat, add: true})
	return nil
}

// QueueRemove requests a removal to be applied at the next Flush.
func (r *Registry) QueueRemove(m Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, pendingOp{member: m, add: false})
}

// Flush applies queued additions and removals in request order.
// The tick driver calls this at tick boundaries only, so no entity appears
// or vanishes mid-phase.
func (r *Registry) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for _, op := range r.pending {
		if op.add {
			if err := r.addLocked(op.member, op.category); err != nil && firstErr == nil {
				firstErr = err
			}
		} else {
			r.removeLocked(op.member.Entity())
		}
	}
	r.pending = r.pending[:0]
	return firstErr
}

// List returns the members of a category in insertion order.
// The returned slice is a view; callers must not mutate it and must not
// hold it across a Flush.
func (r *Registry) List(cat Category) []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byCategory[cat]
}

// Len returns the member count of a category.
func (r *Registry) Len(cat Category) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byCategory[cat])
}

// Size returns the total number of registered entities.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categoryOf)
}

// CategoryOf returns the category an entity is registered in.
func (r *Registry) CategoryOf(e core.Entity) (Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cat, ok := r.categoryOf[e]
	return cat, ok
}
