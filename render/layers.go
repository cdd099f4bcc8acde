package render

import (
	"github.com/lixenwraith/snowscape/asset"
	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/placement"
)

// GroundRenderer paints the ground band on the bottom rows
type GroundRenderer struct{}

func (GroundRenderer) Render(scene Scene, buf *FrameBuffer) {
	g := scene.Ground
	if g == nil {
		return
	}
	_, height := buf.Bounds()
	for row := 0; row < g.Height(); row++ {
		y := height - 1 - row
		for x := 0; x < g.Width(); x++ {
			if r, ok := g.At(x, row); ok {
				buf.Set(x, y, r)
			}
		}
	}
}

// HillsRenderer paints hill columns bottom-up on top of the ground band
type HillsRenderer struct{}

func (HillsRenderer) Render(scene Scene, buf *FrameBuffer) {
	if scene.Hills == nil {
		return
	}
	_, height := buf.Bounds()
	base := height - groundHeight(scene)

	for x, col := range scene.Hills.Content() {
		for i, r := range col {
			if r == parameter.BlankGlyph {
				continue
			}
			buf.Set(x, base-1-i, r)
		}
	}
}

// SnowRenderer paints live flakes; flakes off the grid are dropped by the buffer
type SnowRenderer struct{}

func (SnowRenderer) Render(scene Scene, buf *FrameBuffer) {
	for _, f := range scene.Flakes {
		buf.Set(f.X, f.Y, f.Glyph)
	}
}

// SpriteRenderer paints placed objects last so terrain and snow never occlude them
type SpriteRenderer struct{}

func (SpriteRenderer) Render(scene Scene, buf *FrameBuffer) {
	placed, ok := scene.Placement.(placement.Placed)
	if !ok {
		return
	}
	for _, a := range placed.Anchors {
		DrawSprite(buf, a.Sprite, a.X, a.Y)
	}
}

// DrawSprite paints s with its bottom-left cell at (x, bottom), rows bottom-up
// Columns past the right edge are truncated; transparent cells keep what is below
func DrawSprite(buf *FrameBuffer, s *asset.Sprite, x, bottom int) {
	width, _ := buf.Bounds()
	visible := min(s.Width, width-x)
	if visible <= 0 {
		return
	}

	for i := 0; i < s.Height; i++ {
		row := s.Rows[s.Height-1-i]
		y := bottom - i
		for j := 0; j < visible; j++ {
			if r := row[j]; r != asset.Transparent {
				buf.Set(x+j, y, r)
			}
		}
	}
}

// StatusRenderer writes the scene status line on the top row
type StatusRenderer struct {
	Visible bool
}

func (s *StatusRenderer) IsVisible() bool { return s.Visible }

func (s *StatusRenderer) Render(scene Scene, buf *FrameBuffer) {
	x := 0
	for _, r := range scene.Status {
		buf.Set(x, 0, r)
		x++
	}
}

func groundHeight(scene Scene) int {
	if scene.Ground == nil {
		return 0
	}
	return scene.Ground.Height()
}
