// Command pixelfall is a terminal demo of the roster ECS: a batch of colored
// pixels with randomized gravity falls across the screen, integrated by a
// physics system and drawn by a render system each frame.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/emberfield/roster"
)

const targetFPS = 60

type Gravity struct {
	ForceY float64
}

type RigidBody struct {
	VelX, VelY float64
}

type Transform struct {
	X, Y     float64
	Rotation float64
	Scale    float64
}

type Pixel struct {
	Color tcell.Color
}

// PhysicsSystem integrates velocity into position and gravity into velocity
// for every entity carrying Gravity, RigidBody, and Transform.
type PhysicsSystem struct {
	roster.EntityView
	world  *roster.Coordinator
	height float64
}

func (s *PhysicsSystem) Update(dt float64) {
	for e := range s.Entities() {
		rb, _ := roster.GetComponent[RigidBody](s.world, e)
		tr, _ := roster.GetComponent[Transform](s.world, e)
		g, _ := roster.GetComponent[Gravity](s.world, e)

		tr.X += rb.VelX * dt
		tr.Y += rb.VelY * dt
		rb.VelY += g.ForceY * dt

		// Wrap to the top once a pixel falls off the bottom.
		if tr.Y < 0 {
			tr.Y = s.height
			rb.VelY = 0
		}
	}
}

// RenderSystem plots every entity carrying Transform and Pixel. Y grows
// upward in world space, so rows are flipped when plotting.
type RenderSystem struct {
	roster.EntityView
	world  *roster.Coordinator
	screen tcell.Screen
}

func (s *RenderSystem) Update(dt float64) {
	_, h := s.screen.Size()
	for e := range s.Entities() {
		tr, _ := roster.GetComponent[Transform](s.world, e)
		px, _ := roster.GetComponent[Pixel](s.world, e)
		s.screen.SetContent(int(tr.X), h-1-int(tr.Y), '█', nil,
			tcell.StyleDefault.Foreground(px.Color))
	}
}

func main() {
	var (
		count      = flag.Int("n", 2000, "number of pixels to spawn")
		profiling  = flag.Bool("profile", false, "write a CPU profile to the working directory")
		logPath    = flag.String("log", "", "write debug logs to this file")
		frameScale = flag.Float64("speed", 20, "simulation speed multiplier")
	)
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	log := zap.NewNop()
	if *logPath != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logPath}
		built, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		log = built
		defer log.Sync()
	}

	if err := run(*count, *frameScale, log); err != nil {
		fmt.Fprintf(os.Stderr, "pixelfall: %v\n", err)
		os.Exit(1)
	}
}

func run(count int, frameScale float64, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	width, height := screen.Size()

	world := roster.New(
		roster.WithMaxEntities(count),
		roster.WithLogger(log),
	)

	gravity, err := roster.RegisterComponent[Gravity](world)
	if err != nil {
		return err
	}
	rigidBody, err := roster.RegisterComponent[RigidBody](world)
	if err != nil {
		return err
	}
	transform, err := roster.RegisterComponent[Transform](world)
	if err != nil {
		return err
	}
	pixel, err := roster.RegisterComponent[Pixel](world)
	if err != nil {
		return err
	}

	physics := &PhysicsSystem{world: world, height: float64(height)}
	render := &RenderSystem{world: world, screen: screen}
	if err := world.RegisterSystem(physics); err != nil {
		return err
	}
	if err := world.RegisterSystem(render); err != nil {
		return err
	}
	if err := world.SetSystemSignature(physics, roster.NewSignature(gravity, rigidBody, transform)); err != nil {
		return err
	}
	if err := world.SetSystemSignature(render, roster.NewSignature(transform, pixel)); err != nil {
		return err
	}

	if err := spawn(world, count, width, height); err != nil {
		return err
	}
	log.Info("spawned pixels", zap.Int("count", world.EntityCount()))

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / targetFPS)
	defer ticker.Stop()

	dt := 0.0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				_, h := screen.Size()
				physics.height = float64(h)
				screen.Sync()
			}
		case <-ticker.C:
			start := time.Now()
			screen.Clear()
			world.Update(dt)
			screen.Show()
			dt = time.Since(start).Seconds() * frameScale
		}
	}
}

func spawn(world *roster.Coordinator, count, width, height int) error {
	for i := 0; i < count; i++ {
		e, err := world.CreateEntity()
		if err != nil {
			return err
		}

		adds := []error{
			roster.AddComponent(world, e, Gravity{ForceY: -10 + rand.Float64()*9}),
			roster.AddComponent(world, e, RigidBody{}),
			roster.AddComponent(world, e, Transform{
				X:        rand.Float64() * float64(width),
				Y:        rand.Float64() * float64(height),
				Rotation: rand.Float64() * 3.1415926,
				Scale:    1 + rand.Float64(),
			}),
			roster.AddComponent(world, e, Pixel{
				Color: tcell.NewRGBColor(
					int32(rand.Intn(256)),
					int32(rand.Intn(256)),
					int32(rand.Intn(256)),
				),
			}),
		}
		for _, err := range adds {
			if err != nil {
				return err
			}
		}
	}
	return nil
}
