//go:generate mockgen -source=driver.go -destination=driver_mock.go -package=driver
package driver

import (
	"sync"
	"time"
)

// Driver invokes a callback on a fixed period while running
type Driver interface {
	Start(cb func())
	Stop()
	Running() bool
}

// Clock creates tickers, abstracted so tests can fire ticks by hand
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type systemClock struct{}

type systemTicker struct {
	ticker *time.Ticker
}

// SystemClock returns a Clock backed by time.Ticker
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}

// driver runs at most one schedule at a time
type driver struct {
	clock    Clock
	interval time.Duration
	mu       sync.Mutex
	running  bool
	stop     chan struct{}
}

// New creates a Driver ticking at interval on the system clock
func New(interval time.Duration) Driver {
	return NewWithClock(interval, SystemClock())
}

// NewWithClock creates a Driver ticking at interval on the given clock
func NewWithClock(interval time.Duration, clock Clock) Driver {
	return &driver{
		clock:    clock,
		interval: interval,
	}
}

// Start schedules cb every interval, no-op when a schedule is already active
func (d *driver) Start(cb func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}

	d.running = true
	d.stop = make(chan struct{})

	go d.loop(d.clock.NewTicker(d.interval), d.stop, cb)
}

// Stop cancels the active schedule, no-op when none is active. Safe to call from cb.
func (d *driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}

	d.running = false
	close(d.stop)
	d.stop = nil
}

// Running reports whether a schedule is active
func (d *driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running
}

func (d *driver) loop(ticker Ticker, stop <-chan struct{}, cb func()) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			select {
			case <-stop:
				return
			default:
			}

			cb()
		}
	}
}
