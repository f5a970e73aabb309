package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/urfave/cli/v2"
)

func newLogger(debug bool) (*zap.Logger, error) {
	lc := zap.NewDevelopmentConfig()
	lc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lc.DisableStacktrace = true
	if debug {
		lc.Level.SetLevel(zap.DebugLevel)
	} else {
		lc.Level.SetLevel(zap.InfoLevel)
	}
	return lc.Build()
}

type flags struct {
	debug *cli.BoolFlag
}

func (f *flags) Set() []cli.Flag {
	return []cli.Flag{
		f.debug,
	}
}

func main() {
	f := flags{
		debug: &cli.BoolFlag{
			Name:   "debug",
			Value:  false,
			Usage:  "show debug information",
			Hidden: true,
		},
	}

	fix := NewFixCommand(f)

	app := &cli.App{
		Name:        "confix",
		Description: "disable configuration columns that break type conversion",
		ArgsUsage:   "[config_path]",
		Flags:       f.Set(),
		Action:      fix.Run,
		ExitErrHandler: func(ctx *cli.Context, err error) {
			if err == nil {
				return
			}
			if f.debug.Get(ctx) {
				fmt.Printf("%+v\n", err)
			} else {
				fmt.Printf("%v\n", err)
			}
			os.Exit(1)
		},
		EnableBashCompletion: true,
	}
	if err := app.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(2)
	}
}
