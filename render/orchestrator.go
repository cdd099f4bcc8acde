package render

type layerEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Compositor coordinates the layer pipeline into one frame buffer
type Compositor struct {
	buffer   *FrameBuffer
	layers   []layerEntry
	regCount int
}

// NewCompositor creates an empty compositor with the given dimensions
func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		buffer: NewFrameBuffer(width, height),
		layers: make([]layerEntry, 0, 8),
	}
}

// NewSceneCompositor registers the landscape layers back to front:
// ground, hills, snow, objects
func NewSceneCompositor(width, height int) *Compositor {
	c := NewCompositor(width, height)
	c.Register(GroundRenderer{}, PriorityGround)
	c.Register(HillsRenderer{}, PriorityHills)
	c.Register(SnowRenderer{}, PrioritySnow)
	c.Register(SpriteRenderer{}, PriorityObjects)
	return c
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (c *Compositor) Register(r Renderer, priority Priority) {
	entry := layerEntry{
		renderer: r,
		priority: priority,
		index:    c.regCount,
	}
	c.regCount++

	pos := len(c.layers)
	for i, e := range c.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.layers = append(c.layers, layerEntry{})
	copy(c.layers[pos+1:], c.layers[pos:])
	c.layers[pos] = entry
}

// Resize updates buffer dimensions
func (c *Compositor) Resize(width, height int) {
	c.buffer.Resize(width, height)
}

// Compose clears the buffer and runs every visible layer in priority order
func (c *Compositor) Compose(scene Scene) *FrameBuffer {
	c.buffer.Clear()

	for _, entry := range c.layers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(scene, c.buffer)
	}
	return c.buffer
}

// DrawScene composes the scene and flushes it to surface in one pass
// A nil surface only composes
func (c *Compositor) DrawScene(scene Scene, surface Surface) {
	c.Compose(scene)
	if surface != nil {
		c.buffer.Flush(surface)
	}
}

// Buffer exposes the last composed frame
func (c *Compositor) Buffer() *FrameBuffer {
	return c.buffer
}
