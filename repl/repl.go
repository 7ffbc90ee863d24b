// Copyright © 2026 The curage-lang authors

// Package repl implements the interactive curage session. Input is
// accumulated line by line; a line that leaves a block unclosed
// switches to the continuation prompt instead of reporting an error,
// and a complete input runs against a persistent environment.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/vain0x/curage-lang/analysis"
	"github.com/vain0x/curage-lang/diagnostic"
	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/rdparser"
)

const replFile = "<stdin>"

type config struct {
	stdin  io.ReadCloser
	stderr io.Writer
	color  diagnostic.ColorMode
}

func newConfig(opts ...Option) *config {
	config := &config{
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.Writer) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithColor sets the diagnostic color mode.
func WithColor(mode diagnostic.ColorMode) Option {
	return func(c *config) {
		c.color = mode
	}
}

// Run runs the REPL until end of input.
func Run(prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	cont := prompt
	if len(prompt) >= 2 {
		cont = strings.Repeat(" ", len(prompt)-2) + "| "
	}

	rlCfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyPath(),
		HistorySearchFold: true,
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	session := &session{
		cfg:      cfg,
		interp:   interp.New(interp.WithStdout(cfg.stderr)),
		renderer: &diagnostic.Renderer{Color: cfg.color},
	}

	for {
		if session.pending() {
			rl.SetPrompt(cont)
		} else {
			rl.SetPrompt(prompt)
		}
		line, err := rl.ReadLine()
		if err == readline.ErrInterrupt {
			session.reset()
			continue
		}
		if err != nil {
			return nil
		}
		session.feed(line)
	}
}

// session holds the multi-line input buffer and the persistent
// environment.
type session struct {
	cfg      *config
	interp   *interp.Interp
	renderer *diagnostic.Renderer
	buf      []string
}

func (s *session) pending() bool {
	return len(s.buf) > 0
}

func (s *session) reset() {
	s.buf = nil
}

// feed consumes one input line. A bare expression is evaluated and
// echoed; statements run once every opened block is closed.
func (s *session) feed(line string) {
	if !s.pending() && strings.TrimSpace(line) != "" {
		if expr, err := rdparser.ParseExpr(lexer.Tokenize(line)); err == nil {
			v, err := s.interp.Eval(expr)
			if err != nil {
				fmt.Fprintln(s.cfg.stderr, err)
				return
			}
			fmt.Fprintln(s.cfg.stderr, v)
			return
		}
	}

	s.buf = append(s.buf, line)
	source := strings.Join(s.buf, "\n")
	res := analysis.AnalyzeSource(source, &analysis.Config{
		File:    replFile,
		Globals: interp.BuiltinNames(),
	})

	diags := res.Diagnostics()
	if onlyUnclosedBlocks(diags) {
		// Wait for the matching 'end'.
		return
	}
	s.buf = nil
	if len(diags) > 0 {
		if err := s.renderer.RenderAll(s.cfg.stderr, replFile, source, diags); err != nil {
			fmt.Fprintln(s.cfg.stderr, err)
		}
		return
	}
	if err := s.interp.Run(res.Program); err != nil {
		fmt.Fprintln(s.cfg.stderr, err)
	}
}

func onlyUnclosedBlocks(diags []diagnostic.Diagnostic) bool {
	if len(diags) == 0 {
		return false
	}
	for _, d := range diags {
		if d.Message != "Expected 'end'." {
			return false
		}
	}
	return true
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".curage_history")
}
