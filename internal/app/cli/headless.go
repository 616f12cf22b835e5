package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"centerball/internal/app/render"
	"centerball/internal/app/stage"
)

// snapshotRows is the space the headless output keeps below the frame
const snapshotRows = 2

// runHeadless taps the configured number of times, waits for the chain to rest after each, then prints the frame
func (c *cli) runHeadless(ctx context.Context) error {
	cols, rows := c.headlessSize()
	c.stage.Resize(cols, rows)

	for i := 0; i < c.opts.Taps; i++ {
		if !c.stage.Tap() {
			continue
		}

		if err := c.awaitRest(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.out, render.Frame(c.stage.Canvas()))
	fmt.Fprintln(c.out, formatSnapshot(c.stage.Snapshot()))

	return nil
}

// awaitRest drives the stage from its tick channel until the driver stops
func (c *cli) awaitRest(ctx context.Context) error {
	for c.stage.Running() {
		select {
		case <-ctx.Done():
			c.stage.Stop()
			return ctx.Err()
		case <-c.stage.Ticks():
			c.stage.Tick()
		}
	}

	return nil
}

// headlessSize fits the frame to the terminal when stdout is one, the configured size otherwise
func (c *cli) headlessSize() (int, int) {
	fd := os.Stdout.Fd()

	if term.IsTerminal(fd) {
		if width, height, err := term.GetSize(fd); err == nil && height > snapshotRows {
			return width, height - snapshotRows
		}
	}

	return c.cfg.Headless.Width, c.cfg.Headless.Height
}

func formatSnapshot(snap stage.Snapshot) string {
	progress := make([]string, len(snap.Progress))
	for i, p := range snap.Progress {
		progress[i] = fmt.Sprintf("%.2f", p)
	}

	return fmt.Sprintf("cursor=%d direction=%+d cadence=%s progress=[%s]",
		snap.Cursor, snap.Direction, snap.Cadence, strings.Join(progress, " "))
}
