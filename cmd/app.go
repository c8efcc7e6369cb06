package cmd

import (
	"github.com/SummersBrian/cmsc427ps3/renderer"
	"github.com/SummersBrian/cmsc427ps3/tracer"
	"github.com/urfave/cli"
)

// Create the rtrace cli application.
func NewApp() *cli.App {
	// The default version flag also claims -v which is our verbose flag.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rtrace"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.ArgsUsage = "sceneFile outputImageFile imageWidth imageHeight"
	app.Description = `Render a scene file to an image. The output format is selected by the
output file extension: .png, .tif/.tiff or .bmp (default).`
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.IntFlag{
			Name:   "max-depth",
			Value:  tracer.DefaultMaxDepth,
			Usage:  "max recursion depth for reflection rays",
			EnvVar: "RTRACE_MAX_DEPTH",
		},
		cli.Float64Flag{
			Name:   "bias",
			Value:  float64(tracer.DefaultShadowBias),
			Usage:  "offset along the surface normal for shadow and reflection rays",
			EnvVar: "RTRACE_BIAS",
		},
		cli.IntFlag{
			Name:  "block-rows",
			Value: renderer.DefaultBlockRows,
			Usage: "number of rows traced between progress updates",
		},
	}
	app.Action = RenderFrame
	app.Commands = []cli.Command{
		{
			Name:      "describe",
			Usage:     "parse a scene file and display scene statistics",
			ArgsUsage: "sceneFile",
			Action:    DescribeScene,
		},
	}

	return app
}
