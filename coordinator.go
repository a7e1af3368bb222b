package roster

import "go.uber.org/zap"

// Coordinator is the facade composing the entity, component, and system
// managers. It is the only object consuming code touches: every mutation
// goes through it so that storage, the entity's signature, and system
// membership are updated in that order, atomically from the caller's point
// of view. It holds no state of its own beyond the three managers.
type Coordinator struct {
	entities   *EntityManager
	components *ComponentManager
	systems    *SystemManager
	log        *zap.Logger
}

// New returns a Coordinator configured by opts. There are no package-level
// globals: callers thread the instance through their own call sites.
func New(opts ...Option) *Coordinator {
	cfg := newConfig(opts)
	c := &Coordinator{
		entities:   NewEntityManager(cfg.maxEntities),
		components: NewComponentManager(cfg.maxComponentTypes),
		systems:    NewSystemManager(),
		log:        cfg.log,
	}
	c.log.Debug("coordinator initialized",
		zap.Int("max_entities", cfg.maxEntities),
		zap.Int("max_component_types", cfg.maxComponentTypes),
	)
	return c
}

// CreateEntity issues a fresh entity id with an empty signature.
func (c *Coordinator) CreateEntity() (Entity, error) {
	e, err := c.entities.Create()
	if err != nil {
		c.log.Warn("entity creation failed", zap.Error(err))
		return 0, err
	}
	return e, nil
}

// DestroyEntity returns e's id to the pool, purges e from every component
// array, and removes e from every system's view. A second destroy of the
// same id fails with InvalidEntityError.
func (c *Coordinator) DestroyEntity(e Entity) error {
	if err := c.entities.Destroy(e); err != nil {
		return err
	}
	c.components.OnEntityDestroyed(e)
	c.systems.OnEntityDestroyed(e)
	return nil
}

// Alive reports whether e is a currently issued entity id.
func (c *Coordinator) Alive(e Entity) bool {
	return c.entities.Alive(e)
}

// EntityCount returns the number of live entities.
func (c *Coordinator) EntityCount() int {
	return c.entities.Count()
}

// Signature returns e's current component signature.
func (c *Coordinator) Signature(e Entity) (Signature, error) {
	return c.entities.Signature(e)
}

// RegisterSystem adds sys to the system manager. Its required signature is
// empty until SetSystemSignature is called.
func (c *Coordinator) RegisterSystem(sys System) error {
	if err := c.systems.Register(sys); err != nil {
		return err
	}
	c.log.Debug("system registered", zap.String("system", typeName(sys)))
	return nil
}

// SetSystemSignature declares the component requirement of the system
// registered under sys's concrete type. Call during setup, before entities
// are populated: membership is only recomputed on mutation events.
func (c *Coordinator) SetSystemSignature(sys System, sig Signature) error {
	return c.systems.SetSignature(sys, sig)
}

// Update runs every registered system's Update in registration order.
// Structural mutations for the frame should be settled before calling it.
func (c *Coordinator) Update(dt float64) {
	c.systems.Update(dt)
}
