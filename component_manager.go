package roster

import "reflect"

// ComponentManager is the type-keyed registry of component arrays. Each
// registered type gets the next sequential ComponentType id, and its array
// is stored behind the componentStore interface so arrays of different
// element types can be notified of entity destruction uniformly.
type ComponentManager struct {
	types    map[reflect.Type]ComponentType
	stores   []componentStore
	capacity int
}

// NewComponentManager returns a manager accepting up to maxTypes distinct
// component types.
func NewComponentManager(maxTypes int) *ComponentManager {
	return &ComponentManager{
		types:    make(map[reflect.Type]ComponentType),
		capacity: maxTypes,
	}
}

// TypeCount returns the number of registered component types.
func (m *ComponentManager) TypeCount() int {
	return len(m.stores)
}

// Capacity returns the maximum number of registrable component types.
func (m *ComponentManager) Capacity() int {
	return m.capacity
}

// OnEntityDestroyed broadcasts the destruction of e to every registered
// array; each array decides independently whether it holds data for e.
func (m *ComponentManager) OnEntityDestroyed(e Entity) {
	for _, s := range m.stores {
		s.onEntityDestroyed(e)
	}
}

// registerComponent assigns the next unused ComponentType id to T and
// creates its backing array.
func registerComponent[T any](m *ComponentManager) (ComponentType, error) {
	rt := reflect.TypeFor[T]()
	if _, exists := m.types[rt]; exists {
		return 0, ComponentRegisteredError{Type: rt.String()}
	}
	if len(m.stores) >= m.capacity {
		return 0, TypeCapacityError{Capacity: m.capacity}
	}
	id := ComponentType(len(m.stores))
	m.types[rt] = id
	m.stores = append(m.stores, newComponentArray[T](id, rt.String()))
	return id, nil
}

// componentTypeOf returns the ComponentType id assigned to T.
func componentTypeOf[T any](m *ComponentManager) (ComponentType, error) {
	rt := reflect.TypeFor[T]()
	id, exists := m.types[rt]
	if !exists {
		return 0, UnregisteredComponentError{Type: rt.String()}
	}
	return id, nil
}

// arrayOf returns the concrete array backing T. The stores slice is indexed
// by ComponentType, so the lookup is a map hit plus a slice index; the type
// assertion cannot fail because registration created the store from the
// same type parameter.
func arrayOf[T any](m *ComponentManager) (*componentArray[T], error) {
	rt := reflect.TypeFor[T]()
	id, exists := m.types[rt]
	if !exists {
		return nil, UnregisteredComponentError{Type: rt.String()}
	}
	return m.stores[id].(*componentArray[T]), nil
}
