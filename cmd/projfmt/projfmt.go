package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/projtree/debug"
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/parse"

	"github.com/scott-cotton/cli"
)

func projfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// eachInput calls f with the name and contents of each file in files,
// or of standard input if there are none. A file named "-" is standard
// input as well.
func eachInput(cc *cli.Context, files []string, f func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		var (
			d   []byte
			err error
		)
		if file == "-" {
			d, err = io.ReadAll(cc.In)
		} else {
			d, err = os.ReadFile(file)
		}
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := f(file, d); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) load(name string, d []byte) (*ir.Project, error) {
	p, err := parse.Parse(d, cfg.parseOpts(name)...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%s", name, p)
	}
	return p, nil
}

// writeFile replaces the contents of an existing file, keeping its
// permissions.
func writeFile(name string, d []byte) error {
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	return os.WriteFile(name, d, fi.Mode().Perm())
}
