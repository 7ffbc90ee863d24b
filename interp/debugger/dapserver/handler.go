// Copyright © 2026 The curage-lang authors

package dapserver

import (
	"log"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/go-dap"

	"github.com/vain0x/curage-lang/interp/debugger"
)

// curageThreadID is the single thread reported to the client; the
// interpreter is single threaded.
const curageThreadID = 1

// globalsScopeRef is the variables reference for the one visible scope.
const globalsScopeRef = 1000

// handler dispatches incoming DAP messages to the appropriate method.
type handler struct {
	server *Server
	engine *debugger.Engine

	mu          sync.Mutex
	initialized bool
	launched    bool
}

func newHandler(s *Server, e *debugger.Engine) *handler {
	h := &handler{
		server: s,
		engine: e,
	}
	// Forward engine state changes to the DAP client.
	e.SetEventCallback(func(evt debugger.Event) {
		switch evt.Type {
		case debugger.EventStopped:
			var bpIDs []int
			if evt.BP != nil {
				bpIDs = []int{evt.BP.ID}
			}
			h.sendStoppedEvent(evt.Reason, bpIDs)
		case debugger.EventExited:
			h.sendExitedEvent(evt.ExitCode)
		}
	})
	return h
}

// send sends a DAP message and logs any write error.
func (h *handler) send(msg dap.Message) {
	if err := h.server.send(msg); err != nil {
		log.Printf("dap: send error: %v", err)
	}
}

func (h *handler) handle(msg dap.Message) {
	switch req := msg.(type) {
	case *dap.InitializeRequest:
		h.onInitialize(req)
	case *dap.LaunchRequest:
		h.onLaunch(req)
	case *dap.AttachRequest:
		h.onAttach(req)
	case *dap.SetBreakpointsRequest:
		h.onSetBreakpoints(req)
	case *dap.SetExceptionBreakpointsRequest:
		h.onSetExceptionBreakpoints(req)
	case *dap.ConfigurationDoneRequest:
		h.onConfigurationDone(req)
	case *dap.ThreadsRequest:
		h.onThreads(req)
	case *dap.StackTraceRequest:
		h.onStackTrace(req)
	case *dap.ScopesRequest:
		h.onScopes(req)
	case *dap.VariablesRequest:
		h.onVariables(req)
	case *dap.ContinueRequest:
		h.onContinue(req)
	case *dap.NextRequest:
		h.onNext(req)
	case *dap.StepInRequest:
		h.onStepIn(req)
	case *dap.StepOutRequest:
		h.onStepOut(req)
	case *dap.EvaluateRequest:
		h.onEvaluate(req)
	case *dap.DisconnectRequest:
		h.onDisconnect(req)
	default:
		log.Printf("dap: unhandled message type: %T", msg)
	}
}

func (h *handler) onInitialize(req *dap.InitializeRequest) {
	h.mu.Lock()
	h.initialized = true
	h.mu.Unlock()

	resp := &dap.InitializeResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	resp.Body = dap.Capabilities{
		SupportsConfigurationDoneRequest: true,
		SupportsEvaluateForHovers:        true,
		SupportTerminateDebuggee:         true,
	}
	h.send(resp)

	// Tell the client it can send configuration.
	h.send(&dap.InitializedEvent{
		Event: h.newEvent("initialized"),
	})
}

// onLaunch acknowledges the launch request. The program itself comes
// from the debug command's argument, not the launch arguments.
func (h *handler) onLaunch(req *dap.LaunchRequest) {
	resp := &dap.LaunchResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
}

func (h *handler) onAttach(req *dap.AttachRequest) {
	resp := &dap.AttachResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
}

func (h *handler) onSetBreakpoints(req *dap.SetBreakpointsRequest) {
	lines := make([]int, len(req.Arguments.Breakpoints))
	for i, bp := range req.Arguments.Breakpoints {
		lines[i] = bp.Line
	}
	bps := h.engine.Breakpoints().SetLines(lines)

	resp := &dap.SetBreakpointsResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	resp.Body.Breakpoints = make([]dap.Breakpoint, len(bps))
	for i, bp := range bps {
		resp.Body.Breakpoints[i] = dap.Breakpoint{
			Id:       bp.ID,
			Line:     bp.Line,
			Verified: bp.Verified,
		}
	}
	h.send(resp)
}

func (h *handler) onSetExceptionBreakpoints(req *dap.SetExceptionBreakpointsRequest) {
	// Runtime errors always stop the program, so there is nothing to
	// configure.
	resp := &dap.SetExceptionBreakpointsResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
}

func (h *handler) onConfigurationDone(req *dap.ConfigurationDoneRequest) {
	resp := &dap.ConfigurationDoneResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)

	h.mu.Lock()
	h.launched = true
	h.mu.Unlock()

	h.engine.SignalReady()
}

func (h *handler) onThreads(req *dap.ThreadsRequest) {
	resp := &dap.ThreadsResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	resp.Body.Threads = []dap.Thread{
		{Id: curageThreadID, Name: "Curage Main"},
	}
	h.send(resp)
}

// onStackTrace reports a single frame. Curage has no calls other than
// builtins, so the paused statement is the whole stack.
func (h *handler) onStackTrace(req *dap.StackTraceRequest) {
	resp := &dap.StackTraceResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)

	stmt, _, ok := h.engine.PausedState()
	if !ok {
		h.send(resp)
		return
	}

	r := stmt.Range()
	file := h.engine.File()
	resp.Body.StackFrames = []dap.StackFrame{
		{
			Id:     1,
			Name:   "main",
			Line:   r.Start.Line + 1,
			Column: r.Start.Character + 1,
			Source: &dap.Source{
				Name: filepath.Base(file),
				Path: file,
			},
		},
	}
	resp.Body.TotalFrames = 1
	h.send(resp)
}

func (h *handler) onScopes(req *dap.ScopesRequest) {
	resp := &dap.ScopesResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	resp.Body.Scopes = []dap.Scope{
		{
			Name:               "Globals",
			VariablesReference: globalsScopeRef,
			Expensive:          false,
		},
	}
	h.send(resp)
}

func (h *handler) onVariables(req *dap.VariablesRequest) {
	resp := &dap.VariablesResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)

	if req.Arguments.VariablesReference == globalsScopeRef {
		_, vars, ok := h.engine.PausedState()
		if ok {
			resp.Body.Variables = make([]dap.Variable, len(vars))
			for i, b := range vars {
				resp.Body.Variables[i] = dap.Variable{
					Name:  b.Name,
					Value: strconv.FormatInt(b.Value, 10),
					Type:  "int",
				}
			}
		}
	}
	if resp.Body.Variables == nil {
		resp.Body.Variables = []dap.Variable{}
	}
	h.send(resp)
}

func (h *handler) onContinue(req *dap.ContinueRequest) {
	resp := &dap.ContinueResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	resp.Body.AllThreadsContinued = true
	h.send(resp)
	h.engine.Resume()
}

func (h *handler) onNext(req *dap.NextRequest) {
	resp := &dap.NextResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
	h.engine.StepOver()
}

// onStepIn behaves like next; curage statements have no callee bodies
// to descend into.
func (h *handler) onStepIn(req *dap.StepInRequest) {
	resp := &dap.StepInResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
	h.engine.StepOver()
}

func (h *handler) onStepOut(req *dap.StepOutRequest) {
	resp := &dap.StepOutResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)
	h.engine.Resume()
}

func (h *handler) onEvaluate(req *dap.EvaluateRequest) {
	resp := &dap.EvaluateResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)

	v, err := h.engine.Evaluate(req.Arguments.Expression)
	if err != nil {
		resp.Success = false
		resp.Message = err.Error()
	} else {
		resp.Body.Result = strconv.FormatInt(v, 10)
		resp.Body.Type = "int"
	}
	h.send(resp)
}

func (h *handler) onDisconnect(req *dap.DisconnectRequest) {
	resp := &dap.DisconnectResponse{}
	resp.Response = h.newResponse(req.Seq, req.Command)
	h.send(resp)

	h.engine.Terminate()

	h.send(&dap.TerminatedEvent{
		Event: h.newEvent("terminated"),
	})
	h.server.close()
}

// sendStoppedEvent sends a DAP stopped event to the client.
func (h *handler) sendStoppedEvent(reason debugger.StopReason, bpIDs []int) {
	evt := &dap.StoppedEvent{
		Event: h.newEvent("stopped"),
	}
	evt.Body.Reason = string(reason)
	evt.Body.ThreadId = curageThreadID
	evt.Body.AllThreadsStopped = true
	if len(bpIDs) > 0 {
		evt.Body.HitBreakpointIds = bpIDs
	}
	h.send(evt)
}

func (h *handler) sendExitedEvent(code int) {
	evt := &dap.ExitedEvent{
		Event: h.newEvent("exited"),
	}
	evt.Body.ExitCode = code
	h.send(evt)
	h.send(&dap.TerminatedEvent{
		Event: h.newEvent("terminated"),
	})
}

// --- helpers ---

func (h *handler) newResponse(reqSeq int, command string) dap.Response {
	return dap.Response{
		ProtocolMessage: dap.ProtocolMessage{Seq: h.server.nextSeq(), Type: "response"},
		RequestSeq:      reqSeq,
		Success:         true,
		Command:         command,
	}
}

func (h *handler) newEvent(event string) dap.Event {
	return dap.Event{
		ProtocolMessage: dap.ProtocolMessage{Seq: h.server.nextSeq(), Type: "event"},
		Event:           event,
	}
}
