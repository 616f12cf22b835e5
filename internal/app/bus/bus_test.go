package bus

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"centerball/internal/config"
	"centerball/internal/config/logger"
)

func Test_New(t *testing.T) {
	b := New(nil)

	assert.NotNil(t, b)
}

func Test_Bus_PublishSubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{
		Type: EventLegComplete,
		Data: LegComplete{Node: 0, Cursor: 1, Direction: 1},
	})

	select {
	case msg := <-ch:
		assert.Equal(t, EventLegComplete, msg.Type)
		assert.False(t, msg.Timestamp.IsZero())
		data, ok := msg.Data.(LegComplete)
		assert.True(t, ok)
		assert.Equal(t, 1, data.Cursor)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected message")
	}
}

func Test_Bus_MultipleSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)

	b.Publish(Message{Type: EventCycleBegun, Data: CycleBegun{Node: 2, Direction: -1}})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, EventCycleBegun, msg.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Expected message on subscriber")
		}
	}
}

func Test_Bus_Unsubscribe_OnContextCancel(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed after context cancel")
}

func Test_Bus_Close(t *testing.T) {
	b := New(nil)

	ch := b.Subscribe(context.Background())

	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed")

	b.Publish(Message{Type: EventChainReset})
	b.Close()
}

func Test_Bus_SubscribeAfterClose(t *testing.T) {
	b := New(nil)
	b.Close()

	_, ok := <-b.Subscribe(context.Background())

	assert.False(t, ok)
}

func Test_Bus_DropsWhenSubscriberFull(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	for i := 0; i < BufferSize+10; i++ {
		b.Publish(Message{Type: EventLegComplete})
	}

	assert.Len(t, ch, BufferSize)
}

func Test_Bus_LogsPublishedMessages(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.DebugLevel
	cfg.Logging.Format = logger.JSONFormat

	b := New(logger.NewLoggerWithOutput(cfg, &buf))
	defer b.Close()

	b.Publish(Message{Type: EventDirectionFlipped, Data: DirectionFlipped{Node: 4, Direction: -1}})

	assert.Contains(t, buf.String(), "direction_flipped {node: 4, direction: -1}")
}

func Test_formatData(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		expected string
	}{
		{name: "cycle begun", data: CycleBegun{Node: 1, Direction: 1}, expected: "{node: 1, direction: +1}"},
		{name: "cycle complete", data: CycleComplete{Node: 4, Cursor: 4, Direction: -1}, expected: "{node: 4, cursor: 4, direction: -1}"},
		{name: "chain reset", data: ChainReset{Length: 5}, expected: "{length: 5}"},
		{name: "cadence", data: CadenceChanged{Cadence: "sweep"}, expected: "{cadence: sweep}"},
		{name: "theme", data: ThemeReloaded{Path: "centerball.yaml"}, expected: "{path: centerball.yaml}"},
		{name: "resized", data: Resized{Cols: 80, Rows: 24}, expected: "{cols: 80, rows: 24}"},
		{name: "nil", data: nil, expected: "{}"},
		{name: "other", data: 42, expected: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatData(tt.data))
		})
	}
}

func Test_NoOp(t *testing.T) {
	b := NoOp()

	assert.NotNil(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventCycleBegun})

	select {
	case <-ch:
		t.Fatal("NoOp should not deliver messages")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok)

	b.Close()
}
