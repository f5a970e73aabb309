package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/Feresey/confix/patch"
	"github.com/urfave/cli/v2"
)

const defaultConfigPath = "JSON/AdventureWorks2019.json"

type fixCommand struct {
	f   flags
	log *zap.Logger
}

func NewFixCommand(f flags) *fixCommand {
	return &fixCommand{f: f}
}

func (c *fixCommand) Run(ctx *cli.Context) error {
	log, err := newLogger(c.f.debug.Get(ctx))
	if err != nil {
		return xerrors.Errorf("create logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	c.log = log

	configPath := ctx.Args().First()
	if configPath == "" {
		configPath = defaultConfigPath
	}
	if err := checkConfigPath(configPath); err != nil {
		return err
	}
	c.log.Debug("patch configuration", zap.String("path", configPath))

	p := patch.NewPatcher(log, os.Stdout)
	fixed, err := p.Fix(configPath)
	if err != nil {
		return xerrors.Errorf("fix configuration: %w", err)
	}

	fmt.Printf("Fixed %d problematic columns\n", fixed)
	fmt.Printf("Configuration fixed: %s\n", configPath)
	return nil
}

func checkConfigPath(fpath string) error {
	fileInfo, err := os.Stat(fpath)
	if os.IsNotExist(err) {
		return xerrors.Errorf("config file %q does not exist", fpath)
	}
	if err != nil {
		return xerrors.Errorf("stat config file: %w", err)
	}
	if fileInfo.IsDir() {
		return xerrors.Errorf("%q is a directory, expected file", fpath)
	}
	if fileInfo.Mode().IsRegular() && fileInfo.Mode().Perm()&(1<<2) != 0 {
		return nil
	}
	return xerrors.Errorf("file %s exists but is not readable", fpath)
}
