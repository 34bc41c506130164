package gjk2d

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/akmonengine/gjk2d/actor"
	"github.com/akmonengine/gjk2d/gjk"
	"github.com/akmonengine/gjk2d/logging"
)

const (
	DEFAULT_WORKERS   = 1
	DEFAULT_CELL_SIZE = 4.0
	DEFAULT_NUM_CELLS = 1024
)

type World struct {
	// List of all bodies in the world
	Bodies      []*actor.Body
	SpatialGrid *SpatialGrid
	Workers     int
	// Config is passed to every GJK run of the narrow phase
	Config gjk.Config
	Logger logging.Logger

	Events Events
}

// NewWorld creates a world with the default grid and a single worker
func NewWorld() *World {
	return &World{
		SpatialGrid: NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_NUM_CELLS),
		Workers:     DEFAULT_WORKERS,
		Logger:      logging.Nop{},
		Events:      NewEvents(),
	}
}

// AddBody adds a body to the world, giving it an ID and a readable name if missing
func (w *World) AddBody(body *actor.Body) {
	if body.ID == uuid.Nil {
		body.ID = uuid.New()
	}
	if body.Name == "" {
		body.Name = petname.Generate(2, "-")
	}

	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	for pair := range w.Events.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(w.Events.previousActivePairs, pair)
		}
	}
}

// Step refreshes the world geometry of every body, detects the overlapping pairs
// and dispatches the events. Pairs involving a trigger only produce events and
// are left out of the returned slice.
func (w *World) Step() []CollisionPair {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	if w.SpatialGrid == nil {
		w.SpatialGrid = NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_NUM_CELLS)
	}
	if w.Logger == nil {
		w.Logger = logging.Nop{}
	}
	if w.Events.listeners == nil {
		w.Events = NewEvents()
	}

	w.update()

	// Phase 1: broad phase, Phase 2: narrow phase
	collisions := w.detectCollision()
	w.Logger.Debug("world step", "bodies", len(w.Bodies), "overlaps", len(collisions))

	collisions = w.Events.recordOverlaps(collisions)
	w.Events.flush()

	return collisions
}

func (w *World) update() {
	task(w.Workers, w.Bodies, func(body *actor.Body) {
		body.Update()
	})
}

func (w *World) detectCollision() []CollisionPair {
	return NarrowPhase(BroadPhase(w.SpatialGrid, w.Bodies, w.Workers), w.Workers, w.Config, w.Logger)
}
