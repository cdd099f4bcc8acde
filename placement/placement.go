package placement

import (
	"github.com/lixenwraith/snowscape/asset"
	"github.com/lixenwraith/snowscape/core"
	"github.com/lixenwraith/snowscape/vmath"
)

// Field is the terrain view placement needs; terrain.Manager satisfies it
type Field interface {
	HighestPoint() (int, int)
	LowestPoint() (int, int)
	LowestPointIn(from, to int) (int, int)
	DisplayHeight(x int) int
	GroundHeight() int
}

// Target selects which terrain extremum a sprite rests on
type Target uint8

const (
	// TargetHighest is the global peak
	TargetHighest Target = iota
	// TargetLowest is the global trough
	TargetLowest
	// TargetFreeLowest is the trough of the widest stretch not covered by earlier sprites
	TargetFreeLowest
)

// Rule binds a sprite to its target
type Rule struct {
	Sprite *asset.Sprite
	Target Target
}

// DefaultRules puts the tree on the peak, the house in the valley and the snowman
// in the widest remaining stretch
func DefaultRules() []Rule {
	return []Rule{
		{Sprite: asset.Tree, Target: TargetHighest},
		{Sprite: asset.House, Target: TargetLowest},
		{Sprite: asset.Snowman, Target: TargetFreeLowest},
	}
}

// Anchor is where one sprite sits on screen
// X is the sprite's left column, Y its bottom row
type Anchor struct {
	Sprite *asset.Sprite
	Column int
	X, Y   int
}

// Kind returns the anchored sprite's kind
func (a Anchor) Kind() asset.Kind {
	return a.Sprite.Kind
}

// Top returns the sprite's top row, negative when clipped by the screen top
func (a Anchor) Top() int {
	return a.Y - a.Sprite.Height + 1
}

// Footprint returns the columns the sprite covers
func (a Anchor) Footprint() core.Span {
	return core.Span{From: a.X, To: a.X + a.Sprite.Width}
}

// State is either Unplaced or Placed
type State interface {
	isState()
}

// Unplaced means anchors have not been computed for the current terrain
type Unplaced struct{}

// Placed holds the anchors of every sprite instantiated for the current terrain
type Placed struct {
	Anchors []Anchor
	Dims    core.Dimensions
}

func (Unplaced) isState() {}
func (Placed) isState()   {}

// Get returns the anchor of kind, false if it was not instantiated
func (p Placed) Get(kind asset.Kind) (Anchor, bool) {
	for _, a := range p.Anchors {
		if a.Kind() == kind {
			return a, true
		}
	}
	return Anchor{}, false
}

// Resolver computes sprite anchors once per terrain generation
type Resolver struct {
	rules []Rule
	state State
}

// NewResolver creates a resolver; no rules means DefaultRules
func NewResolver(rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules, state: Unplaced{}}
}

// State returns the current placement state
func (r *Resolver) State() State {
	return r.state
}

// Reset forgets anchors; call when terrain is regenerated
func (r *Resolver) Reset() {
	r.state = Unplaced{}
}

// Resolve computes anchors from Unplaced; from Placed it returns the cached state unchanged
func (r *Resolver) Resolve(f Field, dims core.Dimensions) State {
	if _, ok := r.state.(Placed); ok {
		return r.state
	}

	placed := Placed{Dims: dims}
	var taken []core.Span

	for _, rule := range r.rules {
		col, ok := r.column(rule, f, dims, taken)
		if !ok {
			continue
		}
		a, ok := anchorFor(rule.Sprite, col, f, dims)
		if !ok {
			continue
		}
		placed.Anchors = append(placed.Anchors, a)
		taken = append(taken, a.Footprint())
	}

	r.state = placed
	return r.state
}

// Rebase refits cached anchors to new dimensions without searching extrema again,
// so sprites stay on their columns instead of jumping to a new peak
func (r *Resolver) Rebase(f Field, dims core.Dimensions) State {
	placed, ok := r.state.(Placed)
	if !ok {
		return r.Resolve(f, dims)
	}

	next := Placed{Dims: dims, Anchors: make([]Anchor, 0, len(placed.Anchors))}
	for _, a := range placed.Anchors {
		next.Anchors = append(next.Anchors, rebaseAnchor(a.Sprite, a.Column, f, dims))
	}
	r.state = next
	return r.state
}

// column picks the extremum column for rule, false when nothing suitable exists
func (r *Resolver) column(rule Rule, f Field, dims core.Dimensions, taken []core.Span) (int, bool) {
	s := rule.Sprite
	if dims.Empty() || s.Width > dims.Width {
		return 0, false
	}

	switch rule.Target {
	case TargetHighest:
		x, _ := f.HighestPoint()
		return x, true
	case TargetLowest:
		x, _ := f.LowestPoint()
		return x, true
	case TargetFreeLowest:
		widest := core.Span{}
		for _, span := range core.FreeSpans(dims.Width, taken) {
			if span.Len() > widest.Len() {
				widest = span
			}
		}
		if widest.Len() < s.Width {
			return 0, false
		}
		// Keep the whole footprint inside the free stretch
		from := widest.From + s.Offset
		to := widest.To - s.Width + s.Offset + 1
		x, _ := f.LowestPointIn(from, to)
		return x, true
	}
	return 0, false
}

// anchorFor places s over column, false when the sky above the surface is too short
func anchorFor(s *asset.Sprite, column int, f Field, dims core.Dimensions) (Anchor, bool) {
	surface := surfaceRow(column, f, dims)
	// Rows at and below the contact row hang into the terrain, the rest need sky
	if s.Height-s.ContactRow > surface {
		return Anchor{}, false
	}
	return rebaseAnchor(s, column, f, dims), true
}

func rebaseAnchor(s *asset.Sprite, column int, f Field, dims core.Dimensions) Anchor {
	surface := surfaceRow(column, f, dims)
	// top = surface - height + contact, so bottom = top + height - 1
	bottom := vmath.SatSub(surface+s.ContactRow, 1)
	return Anchor{
		Sprite: s,
		Column: column,
		X:      vmath.SatSub(column, s.Offset),
		Y:      bottom,
	}
}

// surfaceRow is the screen row of the topmost hill cell at column
func surfaceRow(column int, f Field, dims core.Dimensions) int {
	return vmath.SatSub(vmath.SatSub(dims.Height, f.GroundHeight()), f.DisplayHeight(column))
}
