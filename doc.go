/*
Package roster provides a signature-based Entity-Component-System (ECS) core
for games and simulations.

Roster composes game objects out of plain data components instead of
inheritance. Each component type gets its own densely packed array, each
entity carries a bitset signature recording which component types it holds,
and each system declares the signature it requires. The Coordinator keeps
storage, signatures, and system membership synchronized on every mutation.

Core Concepts:

  - Entity: A recyclable identifier that represents one composed object.
  - Component: A plain value describing one facet of an entity.
  - Signature: A bitset recording which component types an entity has.
  - System: A logic unit operating on all entities whose signature is a
    superset of its required signature.

Basic Usage:

	// Create the coordinator
	world := roster.New()

	// Register components
	position, _ := roster.RegisterComponent[Position](world)
	velocity, _ := roster.RegisterComponent[Velocity](world)

	// Register a system and declare its interest
	movement := &MovementSystem{world: world}
	world.RegisterSystem(movement)
	world.SetSystemSignature(movement, roster.NewSignature(position, velocity))

	// Create an entity
	e, _ := world.CreateEntity()
	roster.AddComponent(world, e, Position{X: 1, Y: 2})
	roster.AddComponent(world, e, Velocity{X: 0.5})

	// The system now sees the entity
	for e := range movement.Entities() {
		pos, _ := roster.GetComponent[Position](world, e)
		vel, _ := roster.GetComponent[Velocity](world, e)
		pos.X += vel.X
		pos.Y += vel.Y
	}

All structural mutations go through the Coordinator; systems read and write
component data during their own update pass but never touch the registry's
bookkeeping directly. The package is single-threaded: every operation runs
to completion before the next is issued, and nothing blocks.
*/
package roster
