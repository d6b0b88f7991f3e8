package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/projtree/debug"
	"github.com/signadot/projtree/encode"

	"github.com/scott-cotton/cli"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Check {
		return fmt.Errorf("%w: -w and -check cannot be used together", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	changed := 0
	err = eachInput(cc, args, func(name string, d []byte) error {
		p, err := cfg.load(name, d)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(p, buf, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		if debug.Encode() {
			debug.Logf("encoded %s:\n%s", name, buf.String())
		}
		switch {
		case cfg.Check:
			if !bytes.Equal(d, buf.Bytes()) {
				changed++
				fmt.Fprintln(cc.Out, name)
			}
		case cfg.Write:
			if bytes.Equal(d, buf.Bytes()) {
				return nil
			}
			if err := writeFile(name, buf.Bytes()); err != nil {
				return fmt.Errorf("error writing %s: %w", name, err)
			}
			if cfg.Verbose {
				theLog.Info("formatted", "file", name)
			}
		default:
			if _, err := cc.Out.Write(buf.Bytes()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if changed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
