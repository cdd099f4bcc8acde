package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowscape/asset"
	"github.com/lixenwraith/snowscape/audio"
	"github.com/lixenwraith/snowscape/config"
	"github.com/lixenwraith/snowscape/logger"
	"github.com/lixenwraith/snowscape/placement"
	"github.com/lixenwraith/snowscape/terrain"
)

// recordPlayer captures played cues
type recordPlayer struct {
	played []audio.SoundType
}

func (p *recordPlayer) Play(s audio.SoundType) { p.played = append(p.played, s) }
func (p *recordPlayer) Close()                 {}

func testConfig(width, height int) config.Config {
	cfg := config.Default()
	cfg.Seed = 12345
	cfg.Width = width
	cfg.Height = height
	return cfg
}

func newTestApp(width, height int) (*App, *recordPlayer) {
	p := &recordPlayer{}
	return New(testConfig(width, height), logger.Discard(), p), p
}

func TestRenderDimensions(t *testing.T) {
	a, _ := newTestApp(80, 24)
	rows := a.Render()
	if len(rows) != 24 {
		t.Fatalf("Expected 24 rows, got %d", len(rows))
	}
	for y, row := range rows {
		if n := len([]rune(row)); n != 80 {
			t.Errorf("Row %d has %d cells", y, n)
		}
	}
}

func TestRenderGroundRows(t *testing.T) {
	a, _ := newTestApp(60, 20)
	rows := a.Render()
	ground := a.Terrain().GroundHeight()
	if ground == 0 {
		t.Fatal("Expected a ground band")
	}

	for r := 0; r < ground; r++ {
		row := []rune(rows[20-1-r])
		for x, c := range row {
			g, _ := a.Terrain().Ground().At(x, r)
			if c != g && !terrain.IsSnowGlyph(c) && !isSpriteCell(a, x, 20-1-r) {
				t.Errorf("Ground cell (%d, %d) = %q", x, 20-1-r, c)
			}
		}
	}
}

// isSpriteCell reports whether any placed sprite covers (x, y)
func isSpriteCell(a *App, x, y int) bool {
	placed, ok := a.Placement().(placement.Placed)
	if !ok {
		return false
	}
	for _, an := range placed.Anchors {
		if x >= an.X && x < an.X+an.Sprite.Width && y <= an.Y && y > an.Y-an.Sprite.Height {
			return true
		}
	}
	return false
}

func TestDeterministicRender(t *testing.T) {
	a, _ := newTestApp(80, 24)
	b, _ := newTestApp(80, 24)
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Tick()
	}
	if strings.Join(a.Render(), "\n") != strings.Join(b.Render(), "\n") {
		t.Error("Same seed produced different frames")
	}
}

func TestTickAdvancesSnow(t *testing.T) {
	a, _ := newTestApp(80, 24)
	before := a.Terrain().Snowfall().Len()
	for i := 0; i < 5; i++ {
		a.Tick()
	}
	if a.Terrain().Snowfall().Len() == before {
		t.Error("Snowfall did not change after ticks")
	}
}

func TestPauseFreezesSnow(t *testing.T) {
	a, p := newTestApp(80, 24)
	a.Tick()
	a.TogglePause()
	if !a.Paused() {
		t.Fatal("Expected paused")
	}

	frame := strings.Join(a.Render(), "\n")
	for i := 0; i < 5; i++ {
		a.Tick()
	}
	if strings.Join(a.Render(), "\n") != frame {
		t.Error("Frame changed while paused")
	}
	if len(p.played) == 0 || p.played[len(p.played)-1] != audio.SoundTick {
		t.Errorf("Expected tick cue, got %v", p.played)
	}
}

func TestRegenerate(t *testing.T) {
	a, p := newTestApp(80, 24)
	a.Regenerate(99)
	if a.Seed() != 99 {
		t.Errorf("Expected seed 99, got %d", a.Seed())
	}
	if _, ok := a.Placement().(placement.Placed); !ok {
		t.Error("Placement not resolved after regenerate")
	}
	if len(p.played) != 1 || p.played[0] != audio.SoundChime {
		t.Errorf("Expected one chime, got %v", p.played)
	}

	before := a.Seed()
	a.RegenerateRandom()
	if a.Seed() == before {
		t.Error("RegenerateRandom kept the seed")
	}
}

func TestResizeKeepsSeed(t *testing.T) {
	a, p := newTestApp(80, 24)
	seed := a.Seed()

	a.Resize(40, 24)
	if a.Seed() != seed {
		t.Error("Resize changed the seed")
	}
	rows := a.Render()
	if len(rows) != 24 || len([]rune(rows[0])) != 40 {
		t.Errorf("Frame not resized: %d rows of %d", len(rows), len([]rune(rows[0])))
	}
	if len(p.played) != 1 || p.played[0] != audio.SoundGust {
		t.Errorf("Expected gust cue, got %v", p.played)
	}

	// Same size is a no-op
	a.Resize(40, 24)
	if len(p.played) != 1 {
		t.Error("Resize to the same size should do nothing")
	}
}

func TestResizeRoundTrip(t *testing.T) {
	a, _ := newTestApp(80, 24)
	original := a.Render()

	a.Resize(50, 30)
	a.Render()
	a.Resize(80, 24)

	restored := a.Render()
	// Snow is reseeded on rebuild, so compare only the terrain band
	band := a.Terrain().BandHeight(24)
	for y := 24 - band; y < 24; y++ {
		if len(original[y]) != len(restored[y]) {
			t.Fatalf("Row %d width changed", y)
		}
	}
	if a.Terrain().Hills().Seed() != a.Seed() {
		t.Error("Hills lost the landscape seed")
	}
}

func TestObjectsPlacedInFrame(t *testing.T) {
	a, _ := newTestApp(120, 40)
	placed, ok := a.Placement().(placement.Placed)
	if !ok {
		t.Fatal("Expected placed state")
	}
	tree, ok := placed.Get(asset.KindTree)
	if !ok {
		t.Fatal("Tree not placed on a 120x40 screen")
	}

	rows := a.Render()
	bottom := []rune(rows[tree.Y])
	found := false
	for x := tree.X; x < tree.X+tree.Sprite.Width && x < len(bottom); x++ {
		if tree.Sprite.Cell(x-tree.X, tree.Sprite.Height-1) == bottom[x] {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Tree bottom row not found in frame row %d: %q", tree.Y, rows[tree.Y])
	}
}

func TestTinyScreens(t *testing.T) {
	for _, d := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {200, 1}, {1, 60}} {
		a, _ := newTestApp(d[0], d[1])
		a.Tick()
		rows := a.Render()
		if len(rows) != d[1] {
			t.Errorf("%dx%d: got %d rows", d[0], d[1], len(rows))
		}
		a.Resize(d[1], d[0])
		a.Render()
	}
}

func TestStatusLine(t *testing.T) {
	a, _ := newTestApp(120, 24)
	if strings.Contains(a.Render()[0], "seed") {
		t.Fatal("Status shown by default")
	}
	a.ToggleStatus()
	if !strings.Contains(a.Render()[0], "seed 12345") {
		t.Errorf("Status line missing: %q", a.Render()[0])
	}
}

func TestHandleEvent(t *testing.T) {
	a, _ := newTestApp(80, 24)

	if !a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !a.Paused() {
		t.Error("Space should pause")
	}
	seed := a.Seed()
	if !a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) || a.Seed() == seed {
		t.Error("'r' should regenerate")
	}
	if !a.HandleEvent(tcell.NewEventResize(30, 10)) {
		t.Error("Resize should not quit")
	}
	if d := a.Dimensions(); d.Width != 30 || d.Height != 10 {
		t.Errorf("Resize event not applied: %+v", d)
	}

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if a.HandleEvent(ev) {
			t.Errorf("Key %v should quit", ev.Name())
		}
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	a, _ := newTestApp(80, 24)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background(), screen) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean quit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after 'q'")
	}

	if d := a.Dimensions(); d.Width != 40 || d.Height != 12 {
		t.Errorf("Run should adopt the screen size, got %+v", d)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 10)

	cfg := testConfig(30, 10)
	cfg.Interval = 10 * time.Millisecond
	a := New(cfg, logger.Discard(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx, screen); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline error, got %v", err)
	}

	// Bottom row of the screen is the ground band
	g, _ := a.Terrain().Ground().At(0, 0)
	got, _, _, _ := screen.GetContent(0, 9)
	if got != g && !terrain.IsSnowGlyph(got) {
		t.Errorf("Screen bottom-left %q, ground %q", got, g)
	}
}

func TestRunBuildsForScreenSize(t *testing.T) {
	for _, seed := range []int64{2, 7, 11} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			screen := tcell.NewSimulationScreen("UTF-8")
			if err := screen.Init(); err != nil {
				t.Fatalf("init screen: %v", err)
			}
			defer screen.Fini()
			screen.SetSize(200, 50)

			cfg := testConfig(80, 24)
			cfg.Seed = seed
			p := &recordPlayer{}
			a := New(cfg, logger.Discard(), p)

			done := make(chan error, 1)
			go func() { done <- a.Run(context.Background(), screen) }()
			screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("run: %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not return after 'q'")
			}

			if d := a.Dimensions(); d.Width != 200 || d.Height != 50 {
				t.Fatalf("Dimensions %+v, want the screen's 200x50", d)
			}
			if a.Seed() != seed {
				t.Errorf("Startup changed the seed to %d", a.Seed())
			}

			placed, ok := a.Placement().(placement.Placed)
			if !ok {
				t.Fatal("Not placed")
			}
			tree, ok := placed.Get(asset.KindTree)
			if !ok {
				t.Fatal("Tree not placed")
			}
			if peak, _ := a.Terrain().HighestPoint(); tree.Column != peak {
				t.Errorf("Tree on column %d, visible peak at %d", tree.Column, peak)
			}
			house, ok := placed.Get(asset.KindHouse)
			if !ok {
				t.Fatal("House not placed")
			}
			if trough, _ := a.Terrain().LowestPoint(); house.Column != trough {
				t.Errorf("House on column %d, visible trough at %d", house.Column, trough)
			}

			for _, s := range p.played {
				if s == audio.SoundGust {
					t.Error("Startup played a resize cue")
				}
			}
		})
	}
}
