package main

import (
	"fmt"

	"github.com/signadot/projtree/debug"
	"github.com/signadot/projtree/validate"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := color.New(color.FgRed, color.Bold)
	if cfg.colors(cc.Out) {
		bad.EnableColor()
	} else {
		bad.DisableColor()
	}
	nBad := 0
	err = eachInput(cc, args, func(name string, d []byte) error {
		p, err := cfg.load(name, d)
		if err != nil {
			nBad++
			fmt.Fprintf(cc.Out, "%s: %s\n", name, bad.Sprint(err.Error()))
			return nil
		}
		vs := validate.Validate(p)
		if debug.Validate() {
			debug.Logf("validated %s: %d violations\n", name, len(vs))
		}
		for _, v := range vs {
			nBad++
			fmt.Fprintf(cc.Out, "%s:%s: %s: %s\n", name, v.Path, bad.Sprint(v.Code.String()), v.Message)
		}
		if len(vs) == 0 && cfg.Verbose {
			theLog.Info("ok", "file", name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if nBad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
