//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// BufferSize is the per-subscriber channel capacity
const BufferSize = 64

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventCycleBegun       MessageType = "cycle_begun"
	EventLegComplete      MessageType = "leg_complete"
	EventDirectionFlipped MessageType = "direction_flipped"
	EventCycleComplete    MessageType = "cycle_complete"
	EventChainReset       MessageType = "chain_reset"
	EventCadenceChanged   MessageType = "cadence_changed"
	EventThemeReloaded    MessageType = "theme_reloaded"
	EventResized          MessageType = "resized"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// CycleBegun indicates a leg began on the cursor node
type CycleBegun struct {
	Node      int
	Direction int
}

// LegComplete indicates a node finished its leg and the cursor moved on
type LegComplete struct {
	Node      int
	Cursor    int
	Direction int
}

// DirectionFlipped indicates the traversal reached an end and reversed
type DirectionFlipped struct {
	Node      int
	Direction int
}

// CycleComplete indicates the stage stopped ticking
type CycleComplete struct {
	Node      int
	Cursor    int
	Direction int
}

// ChainReset indicates the chain was rebuilt
type ChainReset struct {
	Length int
}

// CadenceChanged indicates the interaction cadence was switched
type CadenceChanged struct {
	Cadence string
}

// ThemeReloaded indicates colors were reloaded from the config file
type ThemeReloaded struct {
	Path  string
	Theme config.Theme
}

// Resized indicates the drawing area changed size
type Resized struct {
	Cols int
	Rows int
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(log logger.Logger) Bus {
	return &bus{
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel closed when ctx ends
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, BufferSize)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers, dropping it for full subscribers unless critical
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case CycleBegun:
		return fmt.Sprintf("{node: %d, direction: %+d}", d.Node, d.Direction)
	case LegComplete:
		return fmt.Sprintf("{node: %d, cursor: %d, direction: %+d}", d.Node, d.Cursor, d.Direction)
	case DirectionFlipped:
		return fmt.Sprintf("{node: %d, direction: %+d}", d.Node, d.Direction)
	case CycleComplete:
		return fmt.Sprintf("{node: %d, cursor: %d, direction: %+d}", d.Node, d.Cursor, d.Direction)
	case ChainReset:
		return fmt.Sprintf("{length: %d}", d.Length)
	case CadenceChanged:
		return fmt.Sprintf("{cadence: %s}", d.Cadence)
	case ThemeReloaded:
		return fmt.Sprintf("{path: %s}", d.Path)
	case Resized:
		return fmt.Sprintf("{cols: %d, rows: %d}", d.Cols, d.Rows)
	case nil:
		return "{}"
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
