package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/projtree/encode"
	"github.com/signadot/projtree/format"
	"github.com/signadot/projtree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='output with color'"`
	NoComments bool `cli:"name=nc desc='drop comments'"`
	Verbose    bool `cli:"name=v desc='log what is done to files'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseComments(!cfg.NoComments),
	}
	if name != "" && name != "-" {
		res = append(res, parse.ParseFilename(name))
	}
	return res
}

// colors reports whether output to w should be colored: always with
// -color, never if -color was given as false, otherwise when w is a
// terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colors(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig

	Write  bool `cli:"name=w desc='write result to the source file'"`
	Check  bool `cli:"name=check desc='list files that are not canonical and exit 1 if any'"`
	Header bool `cli:"name=header desc='start output with an xml declaration'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeXMLHeader(cfg.Header)}
	if cfg.Write || cfg.Check {
		return res
	}
	return append(res, cfg.MainConfig.encOpts(w)...)
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Context int `cli:"name=U desc='number of context lines'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig

	OutFormat *format.Format

	Dump *cli.Command
}
