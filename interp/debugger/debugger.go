// Copyright © 2026 The curage-lang authors

// Package debugger implements a statement-level debugger engine for the
// curage interpreter. It provides breakpoint management, stepping,
// variable inspection, and debug evaluation without any external
// protocol dependencies.
//
// Concurrency model: the interpreter goroutine calls the engine through
// the statement hook and blocks on a channel while paused. The external
// consumer (the DAP server goroutine) resumes it via Resume, StepOver,
// or Terminate.
package debugger

import (
	"errors"
	"sync"

	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/parser/ast"
	"github.com/vain0x/curage-lang/parser/lexer"
	"github.com/vain0x/curage-lang/parser/rdparser"
)

// EventType identifies the kind of debug event.
type EventType int

const (
	// EventStopped indicates execution has paused.
	EventStopped EventType = iota
	// EventContinued indicates execution has resumed.
	EventContinued
	// EventExited indicates the program has finished.
	EventExited
)

// StopReason describes why execution paused.
type StopReason string

const (
	StopBreakpoint StopReason = "breakpoint"
	StopStep       StopReason = "step"
	StopEntry      StopReason = "entry"
)

// Event is sent to the event callback when the debugger state changes.
type Event struct {
	Type     EventType
	Reason   StopReason
	ExitCode int         // set for EventExited
	BP       *Breakpoint // non-nil for breakpoint stops
}

// EventCallback is called when the debugger state changes. It runs on
// the interpreter goroutine, so it must not block.
type EventCallback func(Event)

type resumeAction int

const (
	actionContinue resumeAction = iota
	actionStep
	actionTerminate
)

// Engine pauses the interpreter at breakpoints and on step requests.
// It implements interp.Hook.
type Engine struct {
	file        string
	breakpoints *BreakpointStore

	readyOnce sync.Once
	readyCh   chan struct{}
	resumeCh  chan resumeAction

	mu           sync.Mutex
	onEvent      EventCallback
	stopOnEntry  bool
	entered      bool
	stepping     bool
	terminated   bool
	paused       bool
	pausedStmt   ast.Stmt
	pausedInterp *interp.Interp
}

var _ interp.Hook = &Engine{}

// NewEngine creates an engine for a program loaded from file. The
// engine holds every statement until SignalReady is called, so the DAP
// client can install breakpoints before the first statement runs.
func NewEngine(file string) *Engine {
	return &Engine{
		file:        file,
		breakpoints: NewBreakpointStore(),
		readyCh:     make(chan struct{}),
		resumeCh:    make(chan resumeAction, 1),
	}
}

// File returns the program path the engine was created with.
func (e *Engine) File() string {
	return e.file
}

// Breakpoints returns the engine's breakpoint store.
func (e *Engine) Breakpoints() *BreakpointStore {
	return e.breakpoints
}

// SetEventCallback registers the callback notified on state changes.
func (e *Engine) SetEventCallback(cb EventCallback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onEvent = cb
}

// SetStopOnEntry makes the engine pause before the first statement.
func (e *Engine) SetStopOnEntry(stop bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopOnEntry = stop
}

// SignalReady releases the interpreter goroutine. Called after the DAP
// configurationDone request.
func (e *Engine) SignalReady() {
	e.readyOnce.Do(func() { close(e.readyCh) })
}

// Resume continues execution until the next breakpoint.
func (e *Engine) Resume() {
	e.send(actionContinue)
}

// StepOver continues execution until the next executed statement.
func (e *Engine) StepOver() {
	e.send(actionStep)
}

// Terminate resumes execution with all further pauses disabled. The
// interpreter has no preemption, so the program runs to completion.
func (e *Engine) Terminate() {
	e.SignalReady()
	e.send(actionTerminate)
}

func (e *Engine) send(a resumeAction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.paused {
		if a == actionTerminate {
			e.terminated = true
		}
		return
	}
	select {
	case e.resumeCh <- a:
	default:
	}
}

// PausedState returns the statement the interpreter is paused at and a
// snapshot of the visible bindings. ok is false while running.
func (e *Engine) PausedState() (stmt ast.Stmt, vars []interp.Binding, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.paused {
		return nil, nil, false
	}
	return e.pausedStmt, e.pausedInterp.Globals(), true
}

// Evaluate parses src as one expression and evaluates it against the
// paused interpreter's environment.
func (e *Engine) Evaluate(src string) (int64, error) {
	e.mu.Lock()
	in := e.pausedInterp
	paused := e.paused
	e.mu.Unlock()
	if !paused {
		return 0, errors.New("not paused")
	}
	expr, err := rdparser.ParseExpr(lexer.Tokenize(src))
	if err != nil {
		return 0, err
	}
	return in.Eval(expr)
}

// Exited notifies the client that the program finished. Called by the
// driver after interp.Run returns.
func (e *Engine) Exited(code int) {
	e.mu.Lock()
	cb := e.onEvent
	e.mu.Unlock()
	if cb != nil {
		cb(Event{Type: EventExited, ExitCode: code})
	}
}

// EnterStmt implements interp.Hook. It blocks the interpreter while
// paused; positions are reported to the client 1-based.
func (e *Engine) EnterStmt(in *interp.Interp, stmt ast.Stmt) func() {
	<-e.readyCh

	e.mu.Lock()
	if e.terminated {
		e.mu.Unlock()
		return func() {}
	}
	var reason StopReason
	var bp *Breakpoint
	if !e.entered {
		e.entered = true
		if e.stopOnEntry {
			reason = StopEntry
		}
	}
	if reason == "" && e.stepping {
		reason = StopStep
	}
	if reason == "" {
		if bp = e.breakpoints.At(stmt.Range().Start.Line + 1); bp != nil {
			reason = StopBreakpoint
		}
	}
	if reason == "" {
		e.mu.Unlock()
		return func() {}
	}
	e.stepping = false
	e.paused = true
	e.pausedStmt = stmt
	e.pausedInterp = in
	cb := e.onEvent
	e.mu.Unlock()

	if cb != nil {
		cb(Event{Type: EventStopped, Reason: reason, BP: bp})
	}

	action := <-e.resumeCh

	e.mu.Lock()
	e.paused = false
	e.pausedStmt = nil
	switch action {
	case actionStep:
		e.stepping = true
	case actionTerminate:
		e.terminated = true
	}
	e.mu.Unlock()

	if cb != nil {
		cb(Event{Type: EventContinued})
	}
	return func() {}
}
