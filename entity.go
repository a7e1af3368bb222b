package roster

// EntityManager issues and recycles entity ids and stores each entity's
// component signature. Destroyed ids return to a FIFO pool so they are
// reused in destruction order.
type EntityManager struct {
	free       []Entity
	signatures []Signature
	alive      []bool
	living     int
	capacity   int
}

// NewEntityManager returns a manager with a pool of max entity ids.
func NewEntityManager(max int) *EntityManager {
	m := &EntityManager{
		free:       make([]Entity, max),
		signatures: make([]Signature, max),
		alive:      make([]bool, max),
		capacity:   max,
	}
	for i := range m.free {
		m.free[i] = Entity(i)
	}
	return m
}

// Create issues the next available entity id with an empty signature.
// Returns PoolExhaustedError when all ids are live.
func (m *EntityManager) Create() (Entity, error) {
	if len(m.free) == 0 {
		return 0, PoolExhaustedError{Capacity: m.capacity}
	}
	e := m.free[0]
	m.free = m.free[1:]
	m.alive[e] = true
	m.living++
	return e, nil
}

// Destroy resets e's signature and returns its id to the pool. Destroying
// an id that is out of range or not alive (including a second destroy of
// the same id) returns InvalidEntityError.
func (m *EntityManager) Destroy(e Entity) error {
	if !m.Alive(e) {
		return InvalidEntityError{Entity: e}
	}
	m.signatures[e] = Signature{}
	m.alive[e] = false
	m.free = append(m.free, e)
	m.living--
	return nil
}

// Alive reports whether e is a currently issued entity id.
func (m *EntityManager) Alive(e Entity) bool {
	return int(e) < m.capacity && m.alive[e]
}

// Count returns the number of live entities.
func (m *EntityManager) Count() int {
	return m.living
}

// Capacity returns the size of the entity pool.
func (m *EntityManager) Capacity() int {
	return m.capacity
}

// Signature returns e's current component signature.
func (m *EntityManager) Signature(e Entity) (Signature, error) {
	if !m.Alive(e) {
		return Signature{}, InvalidEntityError{Entity: e}
	}
	return m.signatures[e], nil
}

// SetSignature replaces e's component signature.
func (m *EntityManager) SetSignature(e Entity, sig Signature) error {
	if !m.Alive(e) {
		return InvalidEntityError{Entity: e}
	}
	m.signatures[e] = sig
	return nil
}
