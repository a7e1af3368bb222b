package roster

// Entity is an opaque identifier for one composed object. Ids are recycled
// after destruction, so external code holding an entity across frames should
// confirm liveness with Coordinator.Alive before dereferencing components.
type Entity uint32

// ComponentType is the small integer id assigned to a component kind at
// registration time. Ids are assigned sequentially and are stable for the
// process lifetime; they are not persisted.
type ComponentType uint32

// System is implemented by logic units that operate on the entities matching
// their required signature. Embed EntityView to satisfy View; supply Update.
//
// The entity set behind View is owned and maintained by the SystemManager.
// Update bodies read and write component data but must not mutate the
// registry while iterating their own view.
type System interface {
	View() *EntityView
	Update(dt float64)
}

// componentStore is the capability every typed component array exposes to the
// ComponentManager so heterogeneous arrays can be notified of entity
// destruction uniformly, without the registry knowing concrete types.
type componentStore interface {
	onEntityDestroyed(Entity)
}
