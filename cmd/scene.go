package cmd

import (
	"errors"
	"fmt"

	"github.com/SummersBrian/cmsc427ps3/scene/reader"
	"github.com/urfave/cli"
)

// Display scene info.
func DescribeScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.App.Writer, sc.Stats())
	return err
}
