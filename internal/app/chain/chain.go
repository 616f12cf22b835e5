package chain

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"centerball/internal/app/errors"
	"centerball/internal/app/render"
)

// DefaultLength is the number of nodes in a chain when none is configured
const DefaultLength = 5

// FSM phases
const (
	PhaseIdle      = "idle"
	PhaseLegActive = "leg_active"
)

// FSM events
const (
	EventBegin    = "begin"
	EventComplete = "complete"
)

// Status is the outcome of a single tick
type Status int

const (
	// Idle means no leg was active, nothing changed
	Idle Status = iota
	// Continuing means the cursor's leg is still in progress
	Continuing
	// LegComplete means the leg finished and the cursor moved to its neighbor
	LegComplete
	// CycleComplete means the leg finished at an end, the direction flipped and the cursor stayed
	CycleComplete
)

// String returns a lowercase name for the status
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Continuing:
		return "continuing"
	case LegComplete:
		return "leg_complete"
	case CycleComplete:
		return "cycle_complete"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Completed reports whether the tick finished a leg
func (s Status) Completed() bool {
	return s == LegComplete || s == CycleComplete
}

// Result describes what a tick did
type Result struct {
	Status    Status
	Node      int
	Cursor    int
	Direction int
	Flipped   bool
}

// Observer is notified after every phase transition
type Observer func(event, src, dst string)

// RejectHandler is told when the phase machine refuses an event
type RejectHandler func(event string, err error)

// Option configures a Chain
type Option func(*Chain)

// WithObserver registers a phase transition observer
func WithObserver(observer Observer) Option {
	return func(c *Chain) {
		c.observer = observer
	}
}

// WithRejectHandler registers a handler for refused phase events
func WithRejectHandler(handler RejectHandler) Option {
	return func(c *Chain) {
		c.rejected = handler
	}
}

// Chain owns a fixed-length doubly-linked sequence of nodes, the active cursor and the traversal direction
type Chain struct {
	nodes     []Node
	cursor    int
	direction int
	phase     *fsm.FSM
	observer  Observer
	rejected  RejectHandler
}

// New builds a chain of length nodes linked head to tail
func New(length int, opts ...Option) (*Chain, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %w (got %d)", errors.ErrInvalidConfig, errors.ErrInvalidChainLength, length)
	}

	c := &Chain{nodes: make([]Node, length)}

	for _, opt := range opts {
		opt(c)
	}

	c.Reset()

	return c, nil
}

// Reset relinks every node, clears all animation state and returns the cursor to the head
func (c *Chain) Reset() {
	length := len(c.nodes)

	for i := range c.nodes {
		c.nodes[i] = Node{ordinal: i, length: length, prev: NoNeighbor, next: NoNeighbor}

		if i > 0 {
			c.nodes[i].prev = i - 1
			c.nodes[i-1].next = i
		}
	}

	c.cursor = 0
	c.direction = 1
	c.phase = c.newPhaseFSM()
}

// newPhaseFSM creates the Idle/LegActive machine mirroring the cursor node's state
func (c *Chain) newPhaseFSM() *fsm.FSM {
	return fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: EventBegin, Src: []string{PhaseIdle}, Dst: PhaseLegActive},
			{Name: EventComplete, Src: []string{PhaseLegActive}, Dst: PhaseIdle},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				if c.observer != nil {
					c.observer(e.Event, e.Src, e.Dst)
				}
			},
		},
	)
}

// Len returns the number of nodes
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node returns the node at ordinal i
func (c *Chain) Node(i int) *Node {
	return &c.nodes[i]
}

// Head returns the first node
func (c *Chain) Head() *Node {
	return &c.nodes[0]
}

// Tail returns the last node
func (c *Chain) Tail() *Node {
	return &c.nodes[len(c.nodes)-1]
}

// Cursor returns the ordinal of the active node
func (c *Chain) Cursor() int {
	return c.cursor
}

// Direction returns the traversal direction, +1 toward the tail and -1 toward the head
func (c *Chain) Direction() int {
	return c.direction
}

// Phase returns the current phase name
func (c *Chain) Phase() string {
	return c.phase.Current()
}

// BeginCycle starts a leg on the cursor node. onBegun runs only when a leg actually began;
// a cursor that is already mid-leg is left untouched.
func (c *Chain) BeginCycle(onBegun func()) bool {
	if !c.nodes[c.cursor].BeginLeg() {
		return false
	}

	c.fire(EventBegin)

	if onBegun != nil {
		onBegun()
	}

	return true
}

// Tick advances the cursor node by one step and hands off to the neighbor when its leg completes
func (c *Chain) Tick() Result {
	node := &c.nodes[c.cursor]

	result := Result{
		Status:    Continuing,
		Node:      c.cursor,
		Cursor:    c.cursor,
		Direction: c.direction,
	}

	if !node.state.Active() {
		result.Status = Idle
		return result
	}

	if !node.Advance() {
		return result
	}

	c.fire(EventComplete)

	c.cursor = node.Neighbor(c.direction, func() {
		c.direction *= -1
		result.Flipped = true
	})

	result.Cursor = c.cursor
	result.Direction = c.direction
	result.Status = LegComplete

	if result.Flipped {
		result.Status = CycleComplete
	}

	return result
}

// TickWith runs Tick and calls onNodeComplete when a leg finished
func (c *Chain) TickWith(onNodeComplete func(Result)) Result {
	result := c.Tick()

	if result.Status.Completed() && onNodeComplete != nil {
		onNodeComplete(result)
	}

	return result
}

// Draw draws every node from head to tail
func (c *Chain) Draw(s render.Surface, l Layout) {
	for i := range c.nodes {
		c.nodes[i].Draw(s, l)
	}
}

// fire moves the phase machine, which mirrors the cursor node so a refusal means the two drifted apart
func (c *Chain) fire(event string) {
	if err := c.phase.Event(context.Background(), event); err != nil && c.rejected != nil {
		c.rejected(event, err)
	}
}
