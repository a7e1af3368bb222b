package roster

import (
	"reflect"

	"go.uber.org/zap"
)

// Go cannot type-parameterize methods, so the component half of the
// Coordinator API lives in package-level generic functions that take the
// Coordinator as their first argument.

// RegisterComponent assigns the next unused ComponentType id to T and
// creates its backing array. The returned id is what signatures are built
// from.
func RegisterComponent[T any](c *Coordinator) (ComponentType, error) {
	id, err := registerComponent[T](c.components)
	if err != nil {
		return 0, err
	}
	c.log.Debug("component registered",
		zap.String("component", reflect.TypeFor[T]().String()),
		zap.Uint32("type_id", uint32(id)),
	)
	return id, nil
}

// ComponentTypeOf returns the id assigned to T at registration.
func ComponentTypeOf[T any](c *Coordinator) (ComponentType, error) {
	return componentTypeOf[T](c.components)
}

// AddComponent attaches value to e, sets T's bit in e's signature, and
// re-evaluates system membership. Adding a component e already has fails
// with DuplicateComponentError.
func AddComponent[T any](c *Coordinator, e Entity, value T) error {
	if !c.entities.Alive(e) {
		return InvalidEntityError{Entity: e}
	}
	arr, err := arrayOf[T](c.components)
	if err != nil {
		return err
	}
	if err := arr.insert(e, value); err != nil {
		return err
	}

	sig, _ := c.entities.Signature(e)
	sig.Set(arr.id)
	_ = c.entities.SetSignature(e, sig)

	c.systems.OnSignatureChanged(e, sig)
	return nil
}

// RemoveComponent detaches T from e, clears T's bit in e's signature, and
// re-evaluates system membership. Removing a component e does not have
// fails with MissingComponentError.
func RemoveComponent[T any](c *Coordinator, e Entity) error {
	if !c.entities.Alive(e) {
		return InvalidEntityError{Entity: e}
	}
	arr, err := arrayOf[T](c.components)
	if err != nil {
		return err
	}
	if err := arr.remove(e); err != nil {
		return err
	}

	sig, _ := c.entities.Signature(e)
	sig.Clear(arr.id)
	_ = c.entities.SetSignature(e, sig)

	c.systems.OnSignatureChanged(e, sig)
	return nil
}

// GetComponent returns a pointer to e's T component. The pointer stays
// valid until the next structural mutation of T's array (an insert may
// grow it, a removal may swap another entity's value into the slot).
func GetComponent[T any](c *Coordinator, e Entity) (*T, error) {
	arr, err := arrayOf[T](c.components)
	if err != nil {
		return nil, err
	}
	return arr.get(e)
}

// HasComponent reports whether e currently has a T component. It returns
// false for unregistered types and dead entities alike.
func HasComponent[T any](c *Coordinator, e Entity) bool {
	arr, err := arrayOf[T](c.components)
	if err != nil {
		return false
	}
	return arr.has(e)
}

func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
