package render

import (
	"github.com/lixenwraith/snowscape/placement"
	"github.com/lixenwraith/snowscape/terrain"
)

// Scene is the read-only model a frame is drawn from, passed by value
// Renderers must not mutate anything reachable from it
type Scene struct {
	Ground    *terrain.Ground
	Hills     *terrain.Hills
	Flakes    []terrain.Snowflake
	Placement placement.State

	// Status is an optional line drawn on the top row, empty to skip
	Status string
}

// SceneFromTerrain builds a scene from the terrain manager's current state
func SceneFromTerrain(m *terrain.Manager, state placement.State) Scene {
	return Scene{
		Ground:    m.Ground(),
		Hills:     m.Hills(),
		Flakes:    m.Snowflakes(),
		Placement: state,
	}
}
