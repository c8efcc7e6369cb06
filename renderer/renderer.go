package renderer

import (
	"time"

	"github.com/SummersBrian/cmsc427ps3/log"
	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/tracer"
)

type Renderer interface {
	// Render frame.
	Render() error

	// Get the rendered frame.
	Frame() *Frame

	// Write the rendered frame to an image file.
	Save(path string) error

	// Get render statistics.
	Stats() FrameStats
}

// A renderer that traces the frame sequentially on the calling goroutine.
type defaultRenderer struct {
	logger log.Logger

	opts   Options
	scene  *scene.Scene
	plane  *scene.ImagePlane
	tracer *tracer.Tracer
	frame  *Frame

	rendered bool
	stats    FrameStats
}

// Create a new renderer for the given scene.
func NewDefault(sc *scene.Scene, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return nil, ErrInvalidFrameDims
	}

	plane, err := sc.Camera.ImagePlane(opts.FrameW, opts.FrameH)
	if err != nil {
		return nil, err
	}

	tr, err := tracer.New(sc, tracer.Options{MaxDepth: opts.MaxDepth, ShadowBias: opts.ShadowBias})
	if err != nil {
		return nil, err
	}

	frame, err := NewFrame(opts.FrameW, opts.FrameH)
	if err != nil {
		return nil, err
	}

	return &defaultRenderer{
		logger: log.New("renderer"),
		opts:   opts,
		scene:  sc,
		plane:  plane,
		tracer: tr,
		frame:  frame,
	}, nil
}

// Render frame. Blocks are traced top to bottom.
func (r *defaultRenderer) Render() error {
	blocks := tracer.ScheduleBlocks(r.opts.FrameH, r.opts.BlockRows)
	r.logger.Infof("rendering %dx%d frame in %d blocks", r.opts.FrameW, r.opts.FrameH, len(blocks))

	r.stats = FrameStats{Blocks: make([]BlockStat, 0, len(blocks))}
	trStats := r.tracer.Stats()

	start := time.Now()
	tracedRows := 0
	for _, block := range blocks {
		if err := r.tracer.Trace(r.frame, r.plane, block); err != nil {
			return err
		}

		tracedRows += block.BlockH
		blockStat := BlockStat{
			BlockY:       block.BlockY,
			BlockH:       block.BlockH,
			FramePercent: 100.0 * float32(block.BlockH) / float32(r.opts.FrameH),
			RenderTime:   time.Duration(trStats.BlockTime),
		}
		r.stats.Blocks = append(r.stats.Blocks, blockStat)
		r.logger.Debugf(
			"traced rows [%d, %d) in %s (%d/%d rows)",
			block.BlockY, block.BlockY+block.BlockH, blockStat.RenderTime, tracedRows, r.opts.FrameH,
		)
	}

	r.stats.PrimaryRays = trStats.PrimaryRays
	r.stats.ShadowRays = trStats.ShadowRays
	r.stats.ReflectionRays = trStats.ReflectionRays
	r.stats.MaxDepthReached = trStats.MaxDepthReached
	r.stats.RenderTime = time.Since(start)
	r.rendered = true

	r.logger.Noticef("rendered frame in %d ms", r.stats.RenderTime.Nanoseconds()/1e6)
	return nil
}

func (r *defaultRenderer) Frame() *Frame {
	return r.frame
}

// Write the rendered frame to path. Fails if Render has not completed.
func (r *defaultRenderer) Save(path string) error {
	if !r.rendered {
		return ErrFrameNotRendered
	}

	start := time.Now()
	if err := r.frame.Save(path); err != nil {
		return err
	}
	r.logger.Noticef("wrote frame to %s in %d ms", path, time.Since(start).Nanoseconds()/1e6)
	return nil
}

func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}
