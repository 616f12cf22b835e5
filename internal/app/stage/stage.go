//go:generate mockgen -source=stage.go -destination=stage_mock.go -package=stage
package stage

import (
	"centerball/internal/app/bus"
	"centerball/internal/app/chain"
	"centerball/internal/app/driver"
	"centerball/internal/app/render"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// Snapshot is a read-only view of the stage for status displays
type Snapshot struct {
	Cursor    int
	Direction int
	Phase     string
	Cadence   string
	Running   bool
	Progress  []float64
}

// Stage owns the canvas and the chain and turns taps and ticks into animation
type Stage interface {
	Render()
	Tap() bool
	Tick() chain.Result
	Ticks() <-chan struct{}
	Running() bool
	Resize(cols, rows int)
	Reset()
	ToggleCadence() string
	ApplyTheme(theme config.Theme)
	Canvas() *render.Canvas
	Snapshot() Snapshot
	Stop()
}

type stage struct {
	chain   *chain.Chain
	driver  driver.Driver
	canvas  *render.Canvas
	bus     bus.Bus
	log     logger.Logger
	theme   config.Theme
	cadence string
	ticks   chan struct{}
}

// New creates a stage with a chain of the configured length
func New(cfg *config.Config, d driver.Driver, b bus.Bus, log logger.Logger) (Stage, error) {
	log = log.WithComponent("STAGE")

	c, err := chain.New(cfg.Chain.Length,
		chain.WithObserver(func(event, src, dst string) {
			log.Debug().Msgf("PHASE %s → %s (trigger: %s)", src, dst, event)
		}),
		chain.WithRejectHandler(func(event string, err error) {
			log.Warn().Err(err).Msgf("Phase event %s refused", event)
		}),
	)
	if err != nil {
		return nil, err
	}

	s := &stage{
		chain:   c,
		driver:  d,
		canvas:  render.NewCanvas(cfg.Headless.Width, cfg.Headless.Height),
		bus:     b,
		log:     log,
		theme:   cfg.Theme,
		cadence: cfg.Chain.Cadence,
		ticks:   make(chan struct{}, 1),
	}

	s.Render()

	return s, nil
}

// Render paints the background and the chain
func (s *stage) Render() {
	w, h := s.canvas.Size()

	s.canvas.SetFillStyle(s.theme.Background)
	s.canvas.FillRect(0, 0, w, h)

	s.canvas.SetFillStyle(s.theme.Ball)
	s.chain.Draw(s.canvas, chain.Layout{Width: w, Height: h})
}

// Tap begins a leg on the cursor node and starts the driver when one began
func (s *stage) Tap() bool {
	if s.chain.BeginCycle(s.onBegun) {
		return true
	}

	if s.chain.Phase() != chain.PhaseLegActive || s.driver.Running() {
		return false
	}

	s.log.Debug().Msgf("Resuming leg on node %d", s.chain.Cursor())
	s.startDriver()

	return true
}

// Tick advances the chain one step and re-renders
func (s *stage) Tick() chain.Result {
	result := s.chain.TickWith(s.onNodeComplete)
	if result.Status == chain.Idle {
		return result
	}

	s.Render()

	return result
}

// Ticks delivers one notification per driver tick, coalescing ticks the loop has not consumed
func (s *stage) Ticks() <-chan struct{} {
	return s.ticks
}

// Running reports whether the driver is ticking
func (s *stage) Running() bool {
	return s.driver.Running()
}

// Resize adapts the canvas to a new terminal size
func (s *stage) Resize(cols, rows int) {
	s.canvas.Resize(cols, rows)
	s.Render()

	s.bus.Publish(bus.Message{Type: bus.EventResized, Data: bus.Resized{Cols: cols, Rows: rows}})
}

// Reset stops ticking and returns every node to its resting position
func (s *stage) Reset() {
	s.driver.Stop()
	s.chain.Reset()
	s.Render()

	s.log.Info().Msg("Chain reset")
	s.bus.Publish(bus.Message{Type: bus.EventChainReset, Data: bus.ChainReset{Length: s.chain.Len()}})
}

// ToggleCadence switches between step and sweep and returns the new cadence
func (s *stage) ToggleCadence() string {
	if s.cadence == config.CadenceSweep {
		s.cadence = config.CadenceStep
	} else {
		s.cadence = config.CadenceSweep
	}

	s.bus.Publish(bus.Message{Type: bus.EventCadenceChanged, Data: bus.CadenceChanged{Cadence: s.cadence}})

	return s.cadence
}

// ApplyTheme swaps the colors and re-renders
func (s *stage) ApplyTheme(theme config.Theme) {
	s.theme = theme
	s.Render()
}

// Canvas returns the raster the stage renders into
func (s *stage) Canvas() *render.Canvas {
	return s.canvas
}

// Snapshot captures the chain and driver state
func (s *stage) Snapshot() Snapshot {
	progress := make([]float64, s.chain.Len())
	for i := range progress {
		progress[i] = s.chain.Node(i).State().Progress()
	}

	return Snapshot{
		Cursor:    s.chain.Cursor(),
		Direction: s.chain.Direction(),
		Phase:     s.chain.Phase(),
		Cadence:   s.cadence,
		Running:   s.driver.Running(),
		Progress:  progress,
	}
}

// Stop halts the driver, any leg in progress keeps its position
func (s *stage) Stop() {
	s.driver.Stop()
}

func (s *stage) onBegun() {
	cursor := s.chain.Cursor()
	direction := s.chain.Node(cursor).State().Direction()

	s.log.Debug().Msgf("Leg began on node %d (direction %+d)", cursor, direction)
	s.bus.Publish(bus.Message{Type: bus.EventCycleBegun, Data: bus.CycleBegun{Node: cursor, Direction: direction}})

	s.startDriver()
}

// startDriver drops a notification left over from a stopped schedule, a new leg's first step comes from its own ticker
func (s *stage) startDriver() {
	if s.driver.Running() {
		return
	}

	select {
	case <-s.ticks:
	default:
	}

	s.driver.Start(s.notify)
}

// onNodeComplete applies the cadence: step stops after every leg, sweep keeps going until an end
func (s *stage) onNodeComplete(result chain.Result) {
	s.bus.Publish(bus.Message{
		Type: bus.EventLegComplete,
		Data: bus.LegComplete{Node: result.Node, Cursor: result.Cursor, Direction: result.Direction},
	})

	if result.Flipped {
		s.bus.Publish(bus.Message{
			Type: bus.EventDirectionFlipped,
			Data: bus.DirectionFlipped{Node: result.Node, Direction: result.Direction},
		})
	}

	if s.cadence == config.CadenceSweep && result.Status == chain.LegComplete && s.chain.BeginCycle(s.onBegun) {
		return
	}

	s.driver.Stop()

	s.log.Debug().Msgf("Cycle complete at node %d, cursor %d", result.Node, result.Cursor)
	s.bus.Publish(bus.Message{
		Type:     bus.EventCycleComplete,
		Data:     bus.CycleComplete{Node: result.Node, Cursor: result.Cursor, Direction: result.Direction},
		Critical: true,
	})
}

func (s *stage) notify() {
	select {
	case s.ticks <- struct{}{}:
	default:
	}
}
