package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/projtree/encode"
	"github.com/signadot/projtree/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: -U must not be negative", cli.ErrUsage)
	}
	useColor := cfg.colors(cc.Out)
	return eachInput(cc, args, func(name string, d []byte) error {
		p, err := cfg.load(name, d)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(p, buf); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		chunks := libdiff.DiffLines(string(d), buf.String())
		out := libdiff.Unified(name, name+" (canonical)", chunks, cfg.Context)
		return writeDiff(cc.Out, out, useColor)
	})
}

func writeDiff(w io.Writer, out string, useColor bool) error {
	if !useColor {
		_, err := io.WriteString(w, out)
		return err
	}
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)
	for _, c := range []*color.Color{add, del, hunk} {
		c.EnableColor()
	}
	for _, ln := range strings.SplitAfter(out, "\n") {
		var err error
		switch {
		case strings.HasPrefix(ln, "+++"), strings.HasPrefix(ln, "---"):
			_, err = io.WriteString(w, ln)
		case strings.HasPrefix(ln, "+"):
			_, err = add.Fprint(w, ln)
		case strings.HasPrefix(ln, "-"):
			_, err = del.Fprint(w, ln)
		case strings.HasPrefix(ln, "@@"):
			_, err = hunk.Fprint(w, ln)
		default:
			_, err = io.WriteString(w, ln)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
