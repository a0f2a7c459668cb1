package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/eds/eval"
	"github.com/signadot/eds/ir"
	"github.com/signadot/eds/parse"
	"github.com/signadot/eds/token"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{eval.ErrBye, exitOK},
		{fmt.Errorf("x: %w", eval.ErrBye), exitOK},
		{fmt.Errorf("%w: %w", errIO, os.ErrNotExist), exitIO},
		{token.UnexpectedErr('@', token.Pos{Line: 1, Col: 1}), exitTokenize},
		{&parse.GrammarErr{Err: errors.New("x"), Pos: token.Pos{Line: 1, Col: 1}}, exitGrammar},
		{fmt.Errorf("SWAP: %w", &ir.UnderflowErr{Op: "swap", Need: 2, Have: 0}), exitRuntime},
		{ir.ErrSlotNotFound, exitRuntime},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	res := make([]string, len(contents))
	for i, c := range contents {
		res[i] = filepath.Join(dir, fmt.Sprintf("f%d.eds", i))
		if err := os.WriteFile(res[i], []byte(c), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return res
}

func vectorNames(m *eval.Machine) []string {
	res := []string{}
	for _, n := range m.VM().Nest() {
		res = append(res, n.Str())
	}
	return res
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		keep  bool
		code  int
		nest  string
	}{
		{name: "none", code: exitOK, nest: ""},
		{name: "ok", files: []string{"a\n", "b\nc\n"}, code: exitOK, nest: "1 1 2"},
		{name: "bye", files: []string{"a\nBYE\nb\n", "c\n"}, code: exitOK, nest: "1"},
		{name: "tokenize", files: []string{"a\n", "@\n", "c\n"}, code: exitTokenize, nest: "1"},
		{name: "grammar", files: []string{"a DUP\n", "c\n"}, code: exitGrammar, nest: ""},
		{name: "underflow", files: []string{"SWAP\n"}, code: exitRuntime, nest: ""},
		{name: "keep", files: []string{"a\n", "@\n", "DROPALL\nDROP\n", "c\n"}, keep: true, code: exitTokenize, nest: "1"},
		{name: "keep bye", files: []string{"DUP\n", "BYE\n", "c\n"}, keep: true, code: exitOK, nest: ""},
		{name: "bye before bad char", files: []string{"a\nBYE\n@\n", "c\n"}, code: exitOK, nest: "1"},
		{name: "tokenize mid file", files: []string{"a\nb\n@\n"}, code: exitTokenize, nest: "1 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := eval.NewMachine(eval.DefaultName, nil)
			err := run(m, writeFiles(t, tt.files...), tt.keep)
			if got := exitCode(err); got != tt.code {
				t.Errorf("code %d, want %d (%v)", got, tt.code, err)
			}
			if got := strings.Join(vectorNames(m), " "); got != tt.nest {
				t.Errorf("nest %q, want %q", got, tt.nest)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	m := eval.NewMachine(eval.DefaultName, nil)
	err := run(m, []string{filepath.Join(t.TempDir(), "nope")}, false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
	if exitCode(err) != exitIO {
		t.Errorf("code %d, want %d", exitCode(err), exitIO)
	}
}

func TestOutput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		graph string
		want  string
	}{
		{filepath.Join(dir, "g.dot"), "digraph"},
		{filepath.Join(dir, "g.yaml"), "nodes:"},
	}
	for _, tt := range tests {
		t.Run(filepath.Ext(tt.graph), func(t *testing.T) {
			m := eval.NewMachine(eval.DefaultName, nil)
			if err := run(m, writeFiles(t, "hello 1\n"), false); err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			cfg := &MainConfig{Dump: true, Graph: tt.graph}
			if err := cfg.output(m, buf); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), "\t\t0 = <symbol:hello>") {
				t.Errorf("dump %q", buf.String())
			}
			d, err := os.ReadFile(tt.graph)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(d), tt.want) {
				t.Errorf("graph lacks %q:\n%s", tt.want, d)
			}
		})
	}
}

func TestRunShowBeforeTokenizeErr(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	m := eval.NewMachine(eval.DefaultName, buf)
	err := run(m, writeFiles(t, "hello\n?\n@\n"), false)
	if got := exitCode(err); got != exitTokenize {
		t.Errorf("code %d, want %d (%v)", got, exitTokenize, err)
	}
	if !strings.Contains(buf.String(), "\t\t0 = <symbol:hello>") {
		t.Errorf("dump %q", buf.String())
	}
}

func TestRunReleasesDropped(t *testing.T) {
	m := eval.NewMachine(eval.DefaultName, nil)
	files := writeFiles(t, "a b c d\nDROP\n")
	want := -1
	for i := 0; i < 3; i++ {
		if err := run(m, files, false); err != nil {
			t.Fatal(err)
		}
		if m.VM().Depth() != 0 {
			t.Fatalf("round %d: depth %d", i, m.VM().Depth())
		}
		got := m.Arena().Len()
		if want == -1 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("round %d: arena holds %d nodes, want %d", i, got, want)
		}
	}
}

func TestMachine(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	cfg := &MainConfig{Color: true}
	m := cfg.machine(buf)
	if m != eval.Default() {
		t.Errorf("machine is not the process wide machine")
	}
	if m.Output() != buf {
		t.Errorf("output not redirected")
	}
	if len(m.DumpOptions()) != 1 {
		t.Errorf("got %d dump options, want 1", len(m.DumpOptions()))
	}
	cfg.Color = false
	if m := cfg.machine(buf); len(m.DumpOptions()) != 0 {
		t.Errorf("got %d dump options for a buffer, want 0", len(m.DumpOptions()))
	}
}
