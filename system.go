package roster

import (
	"iter"
	"reflect"
)

// EntityView is the live set of entities currently matching a system's
// signature. It is maintained by the SystemManager; systems embed it and
// read it, they never mutate it. Membership is stored as a packed slice
// plus an index map, so adds and removes are O(1) and iteration order is
// stable between mutations (though not across removals, which swap).
type EntityView struct {
	members []Entity
	index   map[Entity]int
}

// View returns the view itself. It exists so that any struct embedding
// EntityView satisfies the System interface once it defines Update.
func (v *EntityView) View() *EntityView { return v }

// Len returns the number of matching entities.
func (v *EntityView) Len() int {
	return len(v.members)
}

// Contains reports whether e currently matches the system's signature.
func (v *EntityView) Contains(e Entity) bool {
	_, ok := v.index[e]
	return ok
}

// Entities iterates the matching entities. The view must not be mutated
// (via Coordinator add/remove/destroy) during iteration.
func (v *EntityView) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range v.members {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns a copy of the matching entities.
func (v *EntityView) Slice() []Entity {
	out := make([]Entity, len(v.members))
	copy(out, v.members)
	return out
}

func (v *EntityView) add(e Entity) {
	if v.index == nil {
		v.index = make(map[Entity]int)
	}
	if _, ok := v.index[e]; ok {
		return
	}
	v.index[e] = len(v.members)
	v.members = append(v.members, e)
}

func (v *EntityView) remove(e Entity) {
	i, ok := v.index[e]
	if !ok {
		return
	}
	last := len(v.members) - 1
	moved := v.members[last]
	v.members[i] = moved
	v.index[moved] = i
	v.members = v.members[:last]
	delete(v.index, e)
}

type systemRecord struct {
	signature Signature
	system    System
}

// SystemManager owns each registered system's required signature and keeps
// its EntityView in sync with entity signatures. Systems are keyed by their
// concrete type; registering two instances of the same type is an error.
type SystemManager struct {
	records map[reflect.Type]*systemRecord
	ordered []*systemRecord
}

// NewSystemManager returns an empty manager.
func NewSystemManager() *SystemManager {
	return &SystemManager{
		records: make(map[reflect.Type]*systemRecord),
	}
}

// Register adds sys to the manager with an empty signature. Until
// SetSignature is called the system matches every entity whose signature
// changes, so signatures should be declared during setup, before entities
// are populated.
func (m *SystemManager) Register(sys System) error {
	rt := reflect.TypeOf(sys)
	if _, exists := m.records[rt]; exists {
		return SystemRegisteredError{Type: rt.String()}
	}
	rec := &systemRecord{system: sys}
	m.records[rt] = rec
	m.ordered = append(m.ordered, rec)
	return nil
}

// SetSignature declares the component requirement of the system registered
// under sys's concrete type. Membership is only recomputed on mutation
// events: setting a signature after entities already exist does not
// retroactively re-scan them. Declare all signatures before populating.
func (m *SystemManager) SetSignature(sys System, sig Signature) error {
	rt := reflect.TypeOf(sys)
	rec, exists := m.records[rt]
	if !exists {
		return UnknownSystemError{Type: rt.String()}
	}
	rec.signature = sig
	return nil
}

// OnEntityDestroyed removes e from every system's view unconditionally.
func (m *SystemManager) OnEntityDestroyed(e Entity) {
	for _, rec := range m.ordered {
		rec.system.View().remove(e)
	}
}

// OnSignatureChanged re-evaluates e against every system: e joins the views
// whose signature it now satisfies and leaves the rest. O(#systems) per
// mutation, which is fine at the target scale of thousands of entities and
// tens of systems.
func (m *SystemManager) OnSignatureChanged(e Entity, sig Signature) {
	for _, rec := range m.ordered {
		if sig.ContainsAll(rec.signature) {
			rec.system.View().add(e)
		} else {
			rec.system.View().remove(e)
		}
	}
}

// Update runs every system's Update in registration order.
func (m *SystemManager) Update(dt float64) {
	for _, rec := range m.ordered {
		rec.system.Update(dt)
	}
}
