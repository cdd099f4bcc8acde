package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowscape/core"
	"github.com/lixenwraith/snowscape/parameter"
)

// HandleEvent applies one terminal event, returning false when the user quits
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.RegenerateRandom()
			case ' ':
				a.TogglePause()
			case 'd', 'D':
				a.ToggleStatus()
			}
		}

	case *tcell.EventResize:
		a.Resize(ev.Size())
	}

	return true
}

// Run drives the landscape on screen until the user quits or ctx is done
// Events are forwarded from a polling goroutine; state is only touched here
func (a *App) Run(ctx context.Context, screen tcell.Screen) error {
	if w, h := screen.Size(); w != a.dims.Width || h != a.dims.Height {
		a.Rebuild(w, h)
	}
	a.Draw(screen)

	events := make(chan tcell.Event, parameter.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frame := time.NewTicker(a.cfg.FrameInterval())
	defer frame.Stop()
	interval := a.cfg.Interval
	if interval <= 0 {
		interval = parameter.SnowUpdateInterval
	}
	snow := time.NewTicker(interval)
	defer snow.Stop()

	dirty := false
	for {
		select {
		case <-ctx.Done():
			a.log.Info("context done, stopping")
			return ctx.Err()

		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("quit requested")
				return nil
			}
			dirty = true

		case <-snow.C:
			a.Tick()
			dirty = true

		case <-frame.C:
			if dirty {
				a.Draw(screen)
				dirty = false
			}
		}
	}
}
