package tracer

import (
	"time"

	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/types"
)

const (
	// Reflection rays are traced while depth < MaxDepth, so a single
	// primary ray results in at most MaxDepth+1 shade calls.
	DefaultMaxDepth = 5

	// Offset applied along the surface normal to shadow and reflection
	// ray origins.
	DefaultShadowBias float32 = 1e-3
)

// Tracer options.
type Options struct {
	MaxDepth   int
	ShadowBias float32
}

// Get the default tracer options.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   DefaultMaxDepth,
		ShadowBias: DefaultShadowBias,
	}
}

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row (in image coordinates) and height.
	BlockY int
	BlockH int
}

// The Framebuffer interface is implemented by images that receive traced
// pixels. Pixel coordinates use a top-left origin.
type Framebuffer interface {
	SetPixel(x, y int, c types.Color)
}

// Tracer statistics.
type Stats struct {
	PrimaryRays    uint64
	ShadowRays     uint64
	ReflectionRays uint64

	// The deepest recursion level reached by any shaded ray.
	MaxDepthReached int

	// The last traced block height
	BlockH int

	// The time for tracing the last block (in nanoseconds)
	BlockTime int64
}

// A CPU ray tracer for a single immutable scene. A tracer keeps unsynchronized
// statistics and must only be used by one goroutine at a time.
type Tracer struct {
	scene *scene.Scene
	opts  Options
	stats Stats
}

// Create a new tracer for the given scene.
func New(sc *scene.Scene, opts Options) (*Tracer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.MaxDepth < 0 {
		return nil, ErrInvalidMaxDepth
	}
	if !types.IsFinite(opts.ShadowBias) || opts.ShadowBias < 0 {
		return nil, ErrInvalidBias
	}

	return &Tracer{
		scene: sc,
		opts:  opts,
	}, nil
}

// Retrieve tracer statistics.
func (tr *Tracer) Stats() *Stats {
	return &tr.stats
}

// Trace the rows of a block writing the shaded colors to frame. Image row y
// maps to image plane row frameH - y, so the top image row sees the top of
// the image plane.
func (tr *Tracer) Trace(frame Framebuffer, plane *scene.ImagePlane, req BlockRequest) error {
	if plane == nil {
		return ErrImagePlaneNotSet
	}
	frameW, frameH := plane.Dims()
	if req.BlockY < 0 || req.BlockH < 0 || req.BlockY+req.BlockH > frameH {
		return ErrInvalidBlock
	}

	start := time.Now()
	for y := req.BlockY; y < req.BlockY+req.BlockH; y++ {
		row := frameH - y
		for x := 0; x < frameW; x++ {
			tr.stats.PrimaryRays++
			frame.SetPixel(x, y, tr.Shade(plane.Ray(x, row), 0))
		}
	}

	tr.stats.BlockH = req.BlockH
	tr.stats.BlockTime = time.Since(start).Nanoseconds()
	return nil
}
