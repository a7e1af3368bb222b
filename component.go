package roster

var _ componentStore = &componentArray[struct{}]{}

// componentArray is the packed storage for one component type. Valid entries
// occupy dense[0:len(dense)] with no gaps; owners mirrors dense index for
// index, and index maps each owning entity back to its slot. Removal swaps
// the last entry into the vacated slot, so iteration order is not preserved
// across removals.
type componentArray[T any] struct {
	id       ComponentType
	typeName string
	dense    []T
	owners   []Entity
	index    map[Entity]int
}

func newComponentArray[T any](id ComponentType, typeName string) *componentArray[T] {
	return &componentArray[T]{
		id:       id,
		typeName: typeName,
		index:    make(map[Entity]int),
	}
}

// insert appends value at the next free packed slot. Inserting for an entity
// that already has data is a caller bug and returns DuplicateComponentError.
func (a *componentArray[T]) insert(e Entity, value T) error {
	if _, exists := a.index[e]; exists {
		return DuplicateComponentError{Entity: e, Type: a.typeName}
	}
	a.index[e] = len(a.dense)
	a.dense = append(a.dense, value)
	a.owners = append(a.owners, e)
	return nil
}

// remove swaps the last packed element into e's slot and fixes both maps for
// the moved element, keeping the array dense.
func (a *componentArray[T]) remove(e Entity) error {
	removed, exists := a.index[e]
	if !exists {
		return MissingComponentError{Entity: e, Type: a.typeName}
	}
	last := len(a.dense) - 1
	movedOwner := a.owners[last]

	a.dense[removed] = a.dense[last]
	a.owners[removed] = movedOwner
	a.index[movedOwner] = removed

	var zero T
	a.dense[last] = zero
	a.dense = a.dense[:last]
	a.owners = a.owners[:last]
	delete(a.index, e)
	return nil
}

// get returns a pointer to e's component. The pointer stays valid until the
// next structural mutation of this array.
func (a *componentArray[T]) get(e Entity) (*T, error) {
	i, exists := a.index[e]
	if !exists {
		return nil, MissingComponentError{Entity: e, Type: a.typeName}
	}
	return &a.dense[i], nil
}

func (a *componentArray[T]) has(e Entity) bool {
	_, exists := a.index[e]
	return exists
}

func (a *componentArray[T]) len() int {
	return len(a.dense)
}

// onEntityDestroyed removes e's entry if one exists. Unlike remove, a
// destroyed entity without data here is not an error: destruction is
// broadcast to every array regardless of type.
func (a *componentArray[T]) onEntityDestroyed(e Entity) {
	if _, exists := a.index[e]; exists {
		_ = a.remove(e)
	}
}
