package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/SummersBrian/cmsc427ps3/renderer"
	"github.com/SummersBrian/cmsc427ps3/scene/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var errInvalidArgCount = errors.New("expected exactly 4 arguments: sceneFile outputImageFile imageWidth imageHeight")

// Positional arguments of the render action.
type renderArgs struct {
	sceneFile string
	imageFile string
	frameW    int
	frameH    int
}

func parseRenderArgs(args []string) (renderArgs, error) {
	if len(args) != 4 {
		return renderArgs{}, errInvalidArgCount
	}

	frameW, err := parseFrameDim("imageWidth", args[2])
	if err != nil {
		return renderArgs{}, err
	}
	frameH, err := parseFrameDim("imageHeight", args[3])
	if err != nil {
		return renderArgs{}, err
	}

	return renderArgs{
		sceneFile: args[0],
		imageFile: args[1],
		frameW:    frameW,
		frameH:    frameH,
	}, nil
}

func parseFrameDim(name, value string) (int, error) {
	dim, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", name, value)
	}
	if dim <= 0 {
		return 0, fmt.Errorf("invalid %s %d: expected a positive integer", name, dim)
	}
	return int(dim), nil
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	args, err := parseRenderArgs(ctx.Args())
	if err == errInvalidArgCount {
		cli.ShowAppHelp(ctx)
		return err
	} else if err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:     args.frameW,
		FrameH:     args.frameH,
		MaxDepth:   ctx.GlobalInt("max-depth"),
		ShadowBias: float32(ctx.GlobalFloat64("bias")),
		BlockRows:  ctx.GlobalInt("block-rows"),
	}

	sc, err := reader.ReadScene(args.sceneFile)
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(sc, opts)
	if err != nil {
		return err
	}

	if err = r.Render(); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return r.Save(args.imageFile)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block", "Rows", "% of frame", "Render time"})
	for idx, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%d-%d", stat.BlockY, stat.BlockY+stat.BlockH-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef(
		"frame statistics (primary rays: %d, shadow rays: %d, reflection rays: %d, max depth: %d)\n%s",
		stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays, stats.MaxDepthReached, buf.String(),
	)
}
