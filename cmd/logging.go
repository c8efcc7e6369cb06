package cmd

import (
	"github.com/SummersBrian/cmsc427ps3/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtrace")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
