package roster

import "fmt"

type PoolExhaustedError struct {
	Capacity int
}

func (e PoolExhaustedError) Error() string {
	return fmt.Sprintf("entity pool exhausted (capacity %d)", e.Capacity)
}

type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %d is not alive", e.Entity)
}

type ComponentRegisteredError struct {
	Type string
}

func (e ComponentRegisteredError) Error() string {
	return fmt.Sprintf("component type already registered: %s", e.Type)
}

type TypeCapacityError struct {
	Capacity int
}

func (e TypeCapacityError) Error() string {
	return fmt.Sprintf("component type table full (capacity %d)", e.Capacity)
}

type UnregisteredComponentError struct {
	Type string
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component type not registered: %s", e.Type)
}

type DuplicateComponentError struct {
	Entity Entity
	Type   string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("entity %d already has component %s", e.Entity, e.Type)
}

type MissingComponentError struct {
	Entity Entity
	Type   string
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("entity %d has no component %s", e.Entity, e.Type)
}

type SystemRegisteredError struct {
	Type string
}

func (e SystemRegisteredError) Error() string {
	return fmt.Sprintf("system already registered: %s", e.Type)
}

type UnknownSystemError struct {
	Type string
}

func (e UnknownSystemError) Error() string {
	return fmt.Sprintf("system not registered: %s", e.Type)
}
