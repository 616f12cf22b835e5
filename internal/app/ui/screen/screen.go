//go:generate mockgen -source=screen.go -destination=screen_mock.go -package=screen
package screen

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"centerball/internal/app/bus"
	"centerball/internal/app/errors"
	"centerball/internal/app/stage"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

const (
	eventBuffer = 16
	statusRows  = 1
	halfBlock   = '▀'
)

// Factory creates the tcell screen to draw on
type Factory func() (tcell.Screen, error)

// Screen runs the stage directly on a tcell screen
type Screen interface {
	Run(ctx context.Context) error
}

type screen struct {
	stage     stage.Stage
	bus       bus.Bus
	newScreen Factory
	accent    string
	buttons   tcell.ButtonMask
	log       logger.Logger
}

// New creates a tcell front end for the stage
func New(st stage.Stage, b bus.Bus, theme config.Theme, newScreen Factory, log logger.Logger) Screen {
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	return &screen{
		stage:     st,
		bus:       b,
		newScreen: newScreen,
		accent:    theme.Accent,
		log:       log.WithComponent("SCREEN"),
	}
}

// Run owns the terminal until the user quits or ctx ends
func (s *screen) Run(ctx context.Context) error {
	scr, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToInitScreen, err)
	}

	if err := scr.Init(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToInitScreen, err)
	}

	scr.EnableMouse()
	scr.HideCursor()

	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	pollDone := make(chan struct{})

	go poll(scr, events, done, pollDone)

	defer func() {
		close(done)
		scr.Fini()
		<-pollDone
	}()

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := s.bus.Subscribe(subCtx)

	s.resize(scr)

	s.log.Info().Msg("Screen started")

	for {
		s.draw(scr)

		select {
		case <-ctx.Done():
			s.stage.Stop()
			return nil

		case ev := <-events:
			if s.handleEvent(scr, ev) {
				s.stage.Stop()
				s.log.Info().Msg("Screen closed")

				return nil
			}

		case <-s.stage.Ticks():
			s.stage.Tick()

		case msg, ok := <-msgs:
			if !ok {
				msgs = nil
				continue
			}

			s.handleMessage(msg)
		}
	}
}

// poll forwards events until the screen is finalized, PollEvent then returns nil
func poll(scr tcell.Screen, events chan<- tcell.Event, done <-chan struct{}, pollDone chan<- struct{}) {
	defer close(pollDone)

	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent reacts to input and reports whether the user asked to quit
func (s *screen) handleEvent(scr tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		scr.Sync()
		s.resize(scr)

	case *tcell.EventKey:
		return s.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
		s.buttons = buttons

		if pressed {
			s.tap()
		}
	}

	return false
}

func (s *screen) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyEnter:
		s.tap()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			s.tap()
		case 'c':
			s.log.Info().Msgf("Cadence switched to %s", s.stage.ToggleCadence())
		case 'r':
			s.stage.Reset()
		}
	}

	return false
}

func (s *screen) tap() {
	if !s.stage.Tap() {
		s.log.Debug().Msg("Tap ignored, leg already in progress")
	}
}

func (s *screen) handleMessage(msg bus.Message) {
	if msg.Type != bus.EventThemeReloaded {
		return
	}

	if data, ok := msg.Data.(bus.ThemeReloaded); ok {
		s.stage.ApplyTheme(data.Theme)
		s.accent = data.Theme.Accent
		s.log.Info().Msgf("Theme reloaded from %s", data.Path)
	}
}

func (s *screen) resize(scr tcell.Screen) {
	cols, rows := scr.Size()
	s.stage.Resize(cols, max(rows-statusRows, 1))
}

// draw blits the canvas as half blocks and writes the status line below it
func (s *screen) draw(scr tcell.Screen) {
	canvas := s.stage.Canvas()

	for row := 0; row < canvas.Rows(); row++ {
		for col := 0; col < canvas.Cols(); col++ {
			top, bottom := canvas.Cell(col, row)
			style := tcell.StyleDefault.
				Foreground(tcell.GetColor(top)).
				Background(tcell.GetColor(bottom))

			scr.SetContent(col, row, halfBlock, nil, style)
		}
	}

	cols, rows := scr.Size()
	snap := s.stage.Snapshot()

	arrow := "↓"
	if snap.Direction < 0 {
		arrow = "↑"
	}

	status := fmt.Sprintf(" node %d %s  %s", snap.Cursor, arrow, snap.Cadence)
	if snap.Running {
		status += "  ●"
	}

	drawText(scr, rows-1, cols, status, tcell.StyleDefault.Foreground(tcell.GetColor(s.accent)).Bold(true))

	scr.Show()
}

func drawText(scr tcell.Screen, row, width int, text string, style tcell.Style) {
	col := 0

	for _, r := range text {
		if col >= width {
			return
		}

		scr.SetContent(col, row, r, nil, style)
		col++
	}

	for ; col < width; col++ {
		scr.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}
