package render

// Priority determines layer order. Lower values render first
type Priority int

const (
	PriorityGround Priority = iota * 100
	PriorityHills
	PrioritySnow
	PriorityObjects
	PriorityOverlay
)
