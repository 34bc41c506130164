package gjk2d

import (
	"bytes"
	"sort"

	"github.com/akmonengine/gjk2d/actor"
)

type EventType uint8

const (
	OVERLAP_ENTER EventType = iota
	OVERLAP_STAY
	OVERLAP_EXIT
	TRIGGER_ENTER
	TRIGGER_STAY
	TRIGGER_EXIT
)

func (t EventType) String() string {
	switch t {
	case OVERLAP_ENTER:
		return "overlap enter"
	case OVERLAP_STAY:
		return "overlap stay"
	case OVERLAP_EXIT:
		return "overlap exit"
	case TRIGGER_ENTER:
		return "trigger enter"
	case TRIGGER_STAY:
		return "trigger stay"
	case TRIGGER_EXIT:
		return "trigger exit"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// PairEvent reports a change, or the persistence, of an overlap between two bodies.
// BodyA has the smaller ID.
type PairEvent struct {
	Kind  EventType
	BodyA *actor.Body
	BodyB *actor.Body
	// Iterations of the GJK run of this step, zero on Exit
	Iterations int
}

func (e PairEvent) Type() EventType { return e.Kind }

type pairKey struct {
	bodyA *actor.Body
	bodyB *actor.Body
}

// makePairKey creates a normalized pair key, ordered by body ID
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	if bytes.Compare(bodyB.ID[:], bodyA.ID[:]) < 0 {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

func (p pairKey) isTrigger() bool {
	return p.bodyA.IsTrigger || p.bodyB.IsTrigger
}

// EventListener - callback for events
type EventListener func(event Event)

type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []PairEvent

	// Overlapping pairs of the previous and current steps, with their iteration count
	previousActivePairs map[pairKey]int
	currentActivePairs  map[pairKey]int
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]PairEvent, 0, 256),
		previousActivePairs: make(map[pairKey]int),
		currentActivePairs:  make(map[pairKey]int),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordOverlaps marks the pairs as active for this step and filters out the
// ones involving a trigger
func (e *Events) recordOverlaps(overlaps []CollisionPair) []CollisionPair {
	n := 0
	for _, o := range overlaps {
		e.currentActivePairs[makePairKey(o.BodyA, o.BodyB)] = o.Result.Iterations

		if !o.BodyA.IsTrigger && !o.BodyB.IsTrigger {
			overlaps[n] = o
			n++
		}
	}

	return overlaps[:n]
}

// processPairs compares the current and previous pairs to produce Enter/Stay/Exit
func (e *Events) processPairs() {
	for pair, iterations := range e.currentActivePairs {
		kind := OVERLAP_ENTER
		if _, ok := e.previousActivePairs[pair]; ok {
			kind = OVERLAP_STAY
		}
		e.push(kind, pair, iterations)
	}

	for pair := range e.previousActivePairs {
		if _, ok := e.currentActivePairs[pair]; !ok {
			e.push(OVERLAP_EXIT, pair, 0)
		}
	}

	// Swap for next step and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// push buffers the event, shifted to its TRIGGER_ counterpart when the pair involves a trigger
func (e *Events) push(kind EventType, pair pairKey, iterations int) {
	if pair.isTrigger() {
		kind += TRIGGER_ENTER - OVERLAP_ENTER
	}

	e.buffer = append(e.buffer, PairEvent{Kind: kind, BodyA: pair.bodyA, BodyB: pair.bodyB, Iterations: iterations})
}

// flush sends all buffered events, ordered by type then body IDs, and clears the buffer
func (e *Events) flush() {
	e.processPairs()

	sort.Slice(e.buffer, func(i, j int) bool {
		a, b := e.buffer[i], e.buffer[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if c := bytes.Compare(a.BodyA.ID[:], b.BodyA.ID[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(a.BodyB.ID[:], b.BodyB.ID[:]) < 0
	})

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Kind] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
