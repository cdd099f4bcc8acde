package render

// Renderer paints one layer of the scene
type Renderer interface {
	Render(scene Scene, buf *FrameBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
