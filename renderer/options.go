package renderer

import "github.com/SummersBrian/cmsc427ps3/tracer"

// Rows per block when none is specified.
const DefaultBlockRows = 32

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Max recursion depth for reflection rays.
	MaxDepth int

	// Offset along the surface normal for shadow and reflection rays.
	ShadowBias float32

	// Number of rows traced between progress updates.
	BlockRows int
}

// Get the default options for a frame with the given dimensions.
func DefaultOptions(frameW, frameH int) Options {
	trOpts := tracer.DefaultOptions()
	return Options{
		FrameW:     frameW,
		FrameH:     frameH,
		MaxDepth:   trOpts.MaxDepth,
		ShadowBias: trOpts.ShadowBias,
		BlockRows:  DefaultBlockRows,
	}
}
