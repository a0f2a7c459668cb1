package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/signadot/eds/encode"
	"github.com/signadot/eds/eval"
	"github.com/signadot/eds/ir"
	"github.com/signadot/eds/parse"
	"github.com/signadot/eds/token"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

var errIO = errors.New("i/o error")

const (
	exitOK       = 0
	exitIO       = 1
	exitTokenize = 2
	exitGrammar  = 3
	exitRuntime  = 4
)

func eds(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(exitIO)
	}
	m := cfg.machine(cc.Out)
	err = run(m, args, cfg.Keep)
	if errors.Is(err, eval.ErrBye) {
		return nil
	}
	code := exitCode(err)
	if oErr := cfg.output(m, cc.Out); oErr != nil {
		theLog.Error("output", "error", oErr)
		if code == exitOK {
			code = exitIO
		}
	}
	if code != exitOK {
		return cli.ExitCodeErr(code)
	}
	return nil
}

// exitCode maps a run error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, eval.ErrBye):
		return exitOK
	case errors.Is(err, errIO):
		return exitIO
	case errors.Is(err, token.ErrTokenize):
		return exitTokenize
	case errors.Is(err, parse.ErrGrammar):
		return exitGrammar
	default:
		return exitRuntime
	}
}

type source struct {
	name string
	src  []byte
	err  error
}

// load reads files concurrently.  Failures are recorded per file so they
// surface in argument order.
func load(files []string) []source {
	res := make([]source, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		res[i].name = file
		g.Go(func() error {
			src, err := os.ReadFile(file)
			if err != nil {
				res[i].err = fmt.Errorf("%w: %w", errIO, err)
				return nil
			}
			res[i].src = src
			return nil
		})
	}
	g.Wait()
	return res
}

// run evaluates files against m in argument order, releasing unreachable
// nodes after each file.  The first failure stops the run unless keep is
// set, in which case every file is run and the first failure is returned.
// BYE stops the run and is returned as is.
func run(m *eval.Machine, files []string, keep bool) error {
	srcs := load(files)
	p := parse.NewParser(m)
	var first error
	for i := range srcs {
		s := &srcs[i]
		err := s.err
		if err == nil {
			err = p.Parse(s.src)
			m.Lock()
			m.Collect()
			m.Unlock()
		}
		if err == nil {
			continue
		}
		if errors.Is(err, eval.ErrBye) {
			return err
		}
		err = fmt.Errorf("%s: %w", s.name, err)
		theLog.Error("run", "file", s.name, "error", err, "code", exitCode(err))
		if !keep {
			return err
		}
		if first == nil {
			first = err
		}
	}
	return first
}

func (cfg *MainConfig) output(m *eval.Machine, w io.Writer) error {
	m.Lock()
	defer m.Unlock()
	if cfg.Dump {
		if err := encode.Dump(m.VM(), w, m.DumpOptions()...); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if cfg.Graph == "" {
		return nil
	}
	return writeGraph(m.VM(), cfg.Graph)
}

func writeGraph(root *ir.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = encode.WriteRecords(root, f)
	default:
		err = encode.WriteDOT(root, f)
	}
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	return err
}
