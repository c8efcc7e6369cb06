package main

import (
	"os"

	"github.com/SummersBrian/cmsc427ps3/cmd"
	"github.com/SummersBrian/cmsc427ps3/log"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		log.New("rtrace").Errorf("%s", err.Error())
		os.Exit(1)
	}
}
