// Copyright © 2026 The curage-lang authors

// Package dapserver implements a DAP (Debug Adapter Protocol) server
// for the curage debugger engine. It translates between the DAP wire
// protocol and the debugger.Engine interface.
//
// The server supports two transport modes:
//   - TCP: the server listens on a port and accepts a single client
//     connection ("curage debug --listen").
//   - Stdio: the server reads from stdin and writes to stdout, as
//     expected by editors launching a debug adapter as a child process
//     ("curage debug --stdio").
package dapserver

import (
	"bufio"
	"io"
	"net"
	"sync"

	"github.com/google/go-dap"

	"github.com/vain0x/curage-lang/interp/debugger"
)

// Server is a DAP protocol server that wraps a debugger Engine.
type Server struct {
	engine *debugger.Engine

	mu     sync.Mutex
	seq    int
	writer io.Writer
	reader *bufio.Reader

	// done is closed when the server should stop processing messages.
	done chan struct{}
}

// New creates a new DAP server wrapping the given debugger engine.
func New(engine *debugger.Engine) *Server {
	return &Server{
		engine: engine,
		done:   make(chan struct{}),
	}
}

// ServeConn serves DAP messages on a single connection. It blocks until
// the connection is closed or a disconnect request is received.
func (s *Server) ServeConn(conn io.ReadWriteCloser) error {
	defer conn.Close()
	return s.serve(conn, conn)
}

// ServeTCP listens on the given address and serves a single DAP client.
func (s *Server) ServeTCP(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	return s.ServeListener(ln)
}

// ServeListener accepts a single connection from the listener and
// serves DAP messages on it.
func (s *Server) ServeListener(ln net.Listener) error {
	conn, err := ln.Accept()
	if err != nil {
		return err
	}
	return s.ServeConn(conn)
}

// ServeStdio serves DAP messages on the given reader and writer,
// typically os.Stdin and os.Stdout.
func (s *Server) ServeStdio(r io.Reader, w io.Writer) error {
	return s.serve(r, w)
}

func (s *Server) serve(r io.Reader, w io.Writer) error {
	s.mu.Lock()
	s.writer = w
	s.reader = bufio.NewReader(r)
	s.mu.Unlock()

	handler := newHandler(s, s.engine)

	for {
		select {
		case <-s.done:
			return nil
		default:
		}

		msg, err := dap.ReadProtocolMessage(s.reader)
		if err != nil {
			select {
			case <-s.done:
				return nil
			default:
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		handler.handle(msg)
	}
}

// send writes a DAP protocol message to the client. The caller sets the
// Seq field before calling send, via the newResponse/newEvent helpers.
func (s *Server) send(msg dap.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dap.WriteProtocolMessage(s.writer, msg)
}

// nextSeq returns the next sequence number for outgoing messages.
func (s *Server) nextSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// close signals the server to stop processing messages.
func (s *Server) close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
