package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Demo-shaped component set exercising the full coordinator flow.
type Gravity struct {
	ForceY float64
}

type RigidBody struct {
	VelX, VelY float64
}

type Transform struct {
	X, Y float64
}

type Pixel struct {
	Color uint32
}

type physicsSystem struct {
	EntityView
	world *Coordinator
}

func (s *physicsSystem) Update(dt float64) {
	for e := range s.Entities() {
		rb, _ := GetComponent[RigidBody](s.world, e)
		tr, _ := GetComponent[Transform](s.world, e)
		g, _ := GetComponent[Gravity](s.world, e)
		tr.X += rb.VelX * dt
		tr.Y += rb.VelY * dt
		rb.VelY += g.ForceY * dt
	}
}

type renderSystem struct {
	EntityView
	world   *Coordinator
	plotted int
}

func (s *renderSystem) Update(dt float64) {
	for e := range s.Entities() {
		_, _ = GetComponent[Transform](s.world, e)
		_, _ = GetComponent[Pixel](s.world, e)
		s.plotted++
	}
}

func newPixelWorld(t *testing.T) (*Coordinator, *physicsSystem, *renderSystem) {
	t.Helper()
	world := New(WithLogger(zaptest.NewLogger(t)))

	gravity, err := RegisterComponent[Gravity](world)
	require.NoError(t, err)
	rigidBody, err := RegisterComponent[RigidBody](world)
	require.NoError(t, err)
	transform, err := RegisterComponent[Transform](world)
	require.NoError(t, err)
	pixel, err := RegisterComponent[Pixel](world)
	require.NoError(t, err)

	physics := &physicsSystem{world: world}
	render := &renderSystem{world: world}
	require.NoError(t, world.RegisterSystem(physics))
	require.NoError(t, world.RegisterSystem(render))
	require.NoError(t, world.SetSystemSignature(physics, NewSignature(gravity, rigidBody, transform)))
	require.NoError(t, world.SetSystemSignature(render, NewSignature(transform, pixel)))

	return world, physics, render
}

func TestCoordinatorScenario(t *testing.T) {
	world, physics, render := newPixelWorld(t)

	e1, err := world.CreateEntity()
	require.NoError(t, err)

	require.NoError(t, AddComponent(world, e1, Gravity{ForceY: -10}))
	require.NoError(t, AddComponent(world, e1, RigidBody{}))
	require.NoError(t, AddComponent(world, e1, Transform{X: 3, Y: 4}))
	require.NoError(t, AddComponent(world, e1, Pixel{Color: 0xff00ff}))

	// With all four components, e1 is in both systems' sets.
	assert.True(t, physics.Contains(e1))
	assert.True(t, render.Contains(e1))

	// Removing Pixel evicts e1 from render but not physics.
	require.NoError(t, RemoveComponent[Pixel](world, e1))
	assert.True(t, physics.Contains(e1))
	assert.False(t, render.Contains(e1))

	sig, err := world.Signature(e1)
	require.NoError(t, err)
	pixelType, _ := ComponentTypeOf[Pixel](world)
	gravityType, _ := ComponentTypeOf[Gravity](world)
	assert.False(t, sig.Has(pixelType))
	assert.True(t, sig.Has(gravityType))

	// Destruction purges e1 everywhere and recycles the id.
	require.NoError(t, world.DestroyEntity(e1))
	assert.False(t, physics.Contains(e1))
	assert.False(t, render.Contains(e1))
	assert.False(t, HasComponent[Gravity](world, e1))
	assert.False(t, HasComponent[RigidBody](world, e1))
	assert.False(t, HasComponent[Transform](world, e1))
	assert.False(t, HasComponent[Pixel](world, e1))
	assert.False(t, world.Alive(e1))

	assert.Error(t, world.DestroyEntity(e1), "second destroy must fail")
}

func TestCoordinatorUpdate(t *testing.T) {
	world, physics, render := newPixelWorld(t)

	e, err := world.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, AddComponent(world, e, Gravity{ForceY: -10}))
	require.NoError(t, AddComponent(world, e, RigidBody{}))
	require.NoError(t, AddComponent(world, e, Transform{Y: 100}))
	require.NoError(t, AddComponent(world, e, Pixel{}))

	world.Update(1.0)

	rb, err := GetComponent[RigidBody](world, e)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, rb.VelY, 1e-9, "gravity integrated into velocity")

	tr, err := GetComponent[Transform](world, e)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, tr.Y, 1e-9, "position unchanged on first frame (velocity started at zero)")

	world.Update(1.0)
	assert.InDelta(t, 90.0, tr.Y, 1e-9, "velocity applied on second frame")
	assert.Equal(t, 2, render.plotted)
	assert.Equal(t, 1, physics.Len())
}

func TestCoordinatorComponentRoundTrip(t *testing.T) {
	world := New()
	_, err := RegisterComponent[Transform](world)
	require.NoError(t, err)

	e, err := world.CreateEntity()
	require.NoError(t, err)

	require.NoError(t, AddComponent(world, e, Transform{X: 1, Y: 2}))
	got, err := GetComponent[Transform](world, e)
	require.NoError(t, err)
	assert.Equal(t, Transform{X: 1, Y: 2}, *got)

	// Mutation through the returned pointer sticks.
	got.X = 42
	again, err := GetComponent[Transform](world, e)
	require.NoError(t, err)
	assert.Equal(t, 42.0, again.X)

	require.NoError(t, RemoveComponent[Transform](world, e))
	_, err = GetComponent[Transform](world, e)
	assert.ErrorAs(t, err, &MissingComponentError{})
}

func TestCoordinatorSwapRemoveIsolation(t *testing.T) {
	world := New()
	_, err := RegisterComponent[Transform](world)
	require.NoError(t, err)

	entities := make([]Entity, 5)
	for i := range entities {
		e, err := world.CreateEntity()
		require.NoError(t, err)
		entities[i] = e
		require.NoError(t, AddComponent(world, e, Transform{X: float64(i)}))
	}

	// Removing one entity's component leaves every other entity's data intact.
	require.NoError(t, RemoveComponent[Transform](world, entities[2]))
	for i, e := range entities {
		if i == 2 {
			continue
		}
		got, err := GetComponent[Transform](world, e)
		require.NoError(t, err)
		assert.Equal(t, float64(i), got.X, "entity %d data disturbed by swap-remove", e)
	}
}

func TestCoordinatorErrors(t *testing.T) {
	world := New(WithMaxEntities(2))

	_, err := RegisterComponent[Transform](world)
	require.NoError(t, err)

	e, err := world.CreateEntity()
	require.NoError(t, err)

	// Unregistered type.
	err = AddComponent(world, e, Gravity{})
	assert.ErrorAs(t, err, &UnregisteredComponentError{})
	err = RemoveComponent[Gravity](world, e)
	assert.ErrorAs(t, err, &UnregisteredComponentError{})

	// Dead entity.
	require.NoError(t, world.DestroyEntity(e))
	err = AddComponent(world, e, Transform{})
	assert.ErrorAs(t, err, &InvalidEntityError{})

	// Duplicate and missing component.
	e2, err := world.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, AddComponent(world, e2, Transform{}))
	err = AddComponent(world, e2, Transform{})
	assert.ErrorAs(t, err, &DuplicateComponentError{})
	require.NoError(t, RemoveComponent[Transform](world, e2))
	err = RemoveComponent[Transform](world, e2)
	assert.ErrorAs(t, err, &MissingComponentError{})
}

func TestCoordinatorCapacity(t *testing.T) {
	const pool = 16
	world := New(WithMaxEntities(pool))

	seen := make(map[Entity]bool)
	for i := 0; i < pool; i++ {
		e, err := world.CreateEntity()
		require.NoError(t, err)
		require.False(t, seen[e], "duplicate live id %d", e)
		seen[e] = true
	}

	_, err := world.CreateEntity()
	assert.ErrorAs(t, err, &PoolExhaustedError{}, "creation past capacity must fail, not wrap around")
	assert.Equal(t, pool, world.EntityCount())
}
