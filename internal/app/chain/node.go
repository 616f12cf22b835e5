package chain

import (
	"math"

	"centerball/internal/app/anim"
	"centerball/internal/app/render"
)

// NoNeighbor marks a missing link at either end of the chain
const NoNeighbor = -1

// Layout is the viewport the chain is drawn into
type Layout struct {
	Width  float64
	Height float64
}

// Node is one ball of the chain. Links are ordinals into the owning chain.
type Node struct {
	ordinal int
	length  int
	prev    int
	next    int
	state   anim.State
}

// Ordinal returns the node's position in the chain
func (n *Node) Ordinal() int {
	return n.ordinal
}

// Prev returns the previous node's ordinal or NoNeighbor
func (n *Node) Prev() int {
	return n.prev
}

// Next returns the next node's ordinal or NoNeighbor
func (n *Node) Next() int {
	return n.next
}

// State returns a copy of the node's animation state
func (n *Node) State() anim.State {
	return n.state
}

// BeginLeg starts a leg on this node if it is idle
func (n *Node) BeginLeg() bool {
	return n.state.BeginLeg()
}

// Advance steps this node's leg and reports completion
func (n *Node) Advance() bool {
	return n.state.Advance()
}

// Neighbor returns the ordinal of the neighbor in direction dir.
// At an end of the chain it calls onNoNeighbor and returns the node's own ordinal.
func (n *Node) Neighbor(dir int, onNoNeighbor func()) int {
	target := n.prev
	if dir == 1 {
		target = n.next
	}

	if target != NoNeighbor {
		return target
	}

	if onNoNeighbor != nil {
		onNoNeighbor()
	}

	return n.ordinal
}

// Position returns where the node is drawn and its radius
func (n *Node) Position(l Layout) (x, y, r float64) {
	return position(n.ordinal, n.length, n.state.Progress(), l)
}

// Draw fills the node's circle with the surface's current fill style
func (n *Node) Draw(s render.Surface, l Layout) {
	x, y, r := n.Position(l)

	s.Save()
	s.Translate(x, y)
	s.FillCircle(0, 0, r)
	s.Restore()
}

// position anchors even ordinals on the right edge and odd ones on the left, one slot per row.
// The first half of progress pulls the ball to the horizontal center, the second half drops it
// past the bottom edge.
func position(ordinal, length int, progress float64, l Layout) (float64, float64, float64) {
	gap := l.Height / float64(length+1)
	r := gap / 4

	odd := float64(ordinal % 2)
	even := float64((ordinal + 1) % 2)

	x := (l.Width-r)*even + r*odd
	y := float64(ordinal)*gap + gap/2 + r

	sc1 := math.Min(0.5, progress) * 2
	sc2 := math.Min(0.5, math.Max(progress-0.5, 0)) * 2

	return x + (l.Width/2-x)*sc1, y + (l.Height+r-y)*sc2, r
}
