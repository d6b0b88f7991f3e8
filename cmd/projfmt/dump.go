package main

import (
	"fmt"

	"github.com/signadot/projtree/dump"
	"github.com/signadot/projtree/format"

	"github.com/scott-cotton/cli"
)

func dumpMain(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	f := format.YAMLFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	i := 0
	return eachInput(cc, args, func(name string, d []byte) error {
		p, err := cfg.load(name, d)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
		if i > 0 && f == format.YAMLFormat {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		i++
		if err := dump.Encode(p, cc.Out, f); err != nil {
			return fmt.Errorf("error dumping %s: %w", name, err)
		}
		return nil
	})
}
