package renderer

import "time"

type BlockStat struct {
	// The block start row, height and the percentage of total frame area
	// it represents.
	BlockY       int
	BlockH       int
	FramePercent float32

	// Render time for the block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual block stats.
	Blocks []BlockStat

	// Ray counters.
	PrimaryRays    uint64
	ShadowRays     uint64
	ReflectionRays uint64

	// Deepest reflection recursion level reached.
	MaxDepthReached int

	// Total render time for entire frame.
	RenderTime time.Duration
}
