package main

import (
	"io"
	"os"

	"github.com/signadot/eds/encode"
	"github.com/signadot/eds/eval"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	*cli.Command

	Dump  bool   `cli:"name=dump desc='print the vm after processing'"`
	Graph string `cli:"name=graph desc='write the vm graph to a file, yaml records for .yaml/.yml, dot otherwise'"`
	Color bool   `cli:"name=color desc='color the dump even when not on a terminal'"`
	Keep  bool   `cli:"name=k desc='keep going after a failing file'"`
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "eds").
		WithSynopsis("eds [opts] [files]").
		WithDescription("eds runs metaL source files against an executable data structure vm.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eds(cfg, cc, args)
		})
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []encode.DumpOption {
	if cfg.Color {
		return []encode.DumpOption{encode.DumpColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.DumpOption{encode.DumpColors(encode.NewColors())}
	}
	return nil
}

// machine readies the process wide machine to write to w.
func (cfg *MainConfig) machine(w io.Writer) *eval.Machine {
	m := eval.Default()
	m.SetOutput(w)
	m.SetDumpOptions(cfg.dumpOpts(w)...)
	return m
}
