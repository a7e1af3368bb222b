package roster

import "go.uber.org/zap"

const (
	// DefaultMaxEntities is the default size of the entity id pool.
	DefaultMaxEntities = 5000

	// DefaultMaxComponentTypes is the default size of the component type
	// table.
	DefaultMaxComponentTypes = 32

	// componentTypeLimit bounds the type table regardless of configuration:
	// type ids index signature bits, and the signature mask is a fixed
	// 64-bit-word structure.
	componentTypeLimit = 64
)

type config struct {
	maxEntities       int
	maxComponentTypes int
	log               *zap.Logger
}

// Option configures a Coordinator at construction time.
type Option func(*config)

// WithMaxEntities sets the entity pool size. Non-positive values fall back
// to DefaultMaxEntities.
func WithMaxEntities(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxEntities = n
		}
	}
}

// WithMaxComponentTypes sets the component type table size. Values are
// clamped to the signature width; non-positive values fall back to
// DefaultMaxComponentTypes.
func WithMaxComponentTypes(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxComponentTypes = n
		}
	}
}

// WithLogger attaches a logger for registration and lifecycle events.
// Without it the Coordinator logs nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		maxEntities:       DefaultMaxEntities,
		maxComponentTypes: DefaultMaxComponentTypes,
		log:               zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxComponentTypes > componentTypeLimit {
		c.maxComponentTypes = componentTypeLimit
	}
	return c
}
