package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snowscape/audio"
	"github.com/lixenwraith/snowscape/config"
	"github.com/lixenwraith/snowscape/core"
	"github.com/lixenwraith/snowscape/placement"
	"github.com/lixenwraith/snowscape/render"
	"github.com/lixenwraith/snowscape/terrain"
	"github.com/lixenwraith/snowscape/vmath"
)

// App owns the screen dimensions and every piece of landscape state
// All methods must be called from a single goroutine
type App struct {
	cfg    config.Config
	log    *logrus.Entry
	player audio.Player

	terrain    *terrain.Manager
	resolver   *placement.Resolver
	compositor *render.Compositor
	status     *render.StatusRenderer

	// seeds draws the seed for each regeneration after the first
	seeds *vmath.FastRand

	dims   core.Dimensions
	paused bool
}

// New builds the landscape at cfg.Width x cfg.Height
// A zero cfg.Seed is replaced by one taken from the clock
func New(cfg config.Config, log *logrus.Logger, player audio.Player) *App {
	if player == nil {
		player = audio.NoopPlayer{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dims := core.Dimensions{Width: max(cfg.Width, 0), Height: max(cfg.Height, 0)}

	a := &App{
		cfg:        cfg,
		log:        log.WithField("component", "app"),
		player:     player,
		resolver:   placement.NewResolver(),
		compositor: render.NewSceneCompositor(dims.Width, dims.Height),
		status:     &render.StatusRenderer{Visible: cfg.ShowStatus},
		seeds:      vmath.NewFastRand(uint64(seed)),
		dims:       dims,
	}
	a.compositor.Register(a.status, render.PriorityOverlay)

	a.terrain = terrain.NewManager(dims.Width, dims.Height, seed, terrain.Options{
		Frequency:    cfg.Frequency,
		Amplitude:    cfg.Amplitude,
		Density:      cfg.Density,
		TerrainRatio: cfg.TerrainRatio,
	})
	a.resolver.Resolve(a.terrain, a.dims)

	a.log.WithFields(logrus.Fields{
		"seed":   seed,
		"width":  dims.Width,
		"height": dims.Height,
	}).Info("landscape created")
	return a
}

// Regenerate replaces the landscape with one built from seed at the current size
func (a *App) Regenerate(seed int64) {
	a.terrain.Regenerate(a.dims.Width, a.dims.Height, seed)
	a.resolver.Reset()
	state := a.resolver.Resolve(a.terrain, a.dims)
	a.player.Play(audio.SoundChime)

	a.log.WithFields(logrus.Fields{
		"seed":    seed,
		"objects": placedCount(state),
	}).Info("landscape regenerated")
}

// RegenerateRandom regenerates with the next seed of the session sequence
func (a *App) RegenerateRandom() {
	a.Regenerate(a.seeds.Int63())
}

// Rebuild regenerates the current seed at new dimensions, searching extrema again
// Used when the first real screen size differs from the one the landscape was built for
func (a *App) Rebuild(width, height int) {
	a.dims = core.Dimensions{Width: max(width, 0), Height: max(height, 0)}
	a.terrain.Regenerate(a.dims.Width, a.dims.Height, a.terrain.Seed())
	a.compositor.Resize(a.dims.Width, a.dims.Height)
	a.resolver.Reset()
	state := a.resolver.Resolve(a.terrain, a.dims)

	a.log.WithFields(logrus.Fields{
		"width":   a.dims.Width,
		"height":  a.dims.Height,
		"objects": placedCount(state),
	}).Debug("rebuilt for screen")
}

// Resize rebuilds the landscape for new dimensions keeping the seed
// Objects stay on their columns and are re-seated on the new surface
func (a *App) Resize(width, height int) {
	dims := core.Dimensions{Width: max(width, 0), Height: max(height, 0)}
	if dims == a.dims {
		return
	}
	a.dims = dims

	a.terrain.Resize(dims.Width, dims.Height)
	a.compositor.Resize(dims.Width, dims.Height)
	state := a.resolver.Rebase(a.terrain, dims)
	a.player.Play(audio.SoundGust)

	a.log.WithFields(logrus.Fields{
		"width":   dims.Width,
		"height":  dims.Height,
		"objects": placedCount(state),
	}).Debug("resized")
}

// Tick advances the snowfall one step unless paused
func (a *App) Tick() {
	if a.paused {
		return
	}
	a.terrain.UpdateSnow()
}

// TogglePause freezes or resumes the snowfall
func (a *App) TogglePause() {
	a.paused = !a.paused
	a.player.Play(audio.SoundTick)
	a.log.WithField("paused", a.paused).Debug("pause toggled")
}

// ToggleStatus shows or hides the status line
func (a *App) ToggleStatus() {
	a.status.Visible = !a.status.Visible
}

// Paused reports whether the snowfall is frozen
func (a *App) Paused() bool { return a.paused }

// Dimensions returns the current screen size
func (a *App) Dimensions() core.Dimensions { return a.dims }

// Seed returns the seed of the current landscape
func (a *App) Seed() int64 { return a.terrain.Seed() }

// Terrain exposes the terrain manager for inspection
func (a *App) Terrain() *terrain.Manager { return a.terrain }

// Placement returns the current object placement
func (a *App) Placement() placement.State { return a.resolver.State() }

// Render composes a frame and returns it as one string per row
func (a *App) Render() []string {
	return a.compositor.Compose(a.scene()).Rows()
}

// Draw composes a frame and flushes it to surface
func (a *App) Draw(surface render.Surface) {
	a.compositor.DrawScene(a.scene(), surface)
}

func (a *App) scene() render.Scene {
	scene := render.SceneFromTerrain(a.terrain, a.resolver.State())
	if a.status.Visible {
		scene.Status = a.statusLine()
	}
	return scene
}

func (a *App) statusLine() string {
	line := fmt.Sprintf(" seed %d  %dx%d  flakes %d  [r]egenerate [space] pause [q]uit ",
		a.terrain.Seed(), a.dims.Width, a.dims.Height, a.terrain.Snowfall().Len())
	if a.paused {
		line += "PAUSED "
	}
	return line
}

func placedCount(s placement.State) int {
	if p, ok := s.(placement.Placed); ok {
		return len(p.Anchors)
	}
	return 0
}
