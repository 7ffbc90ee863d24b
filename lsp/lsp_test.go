// Copyright © 2026 The curage-lang authors

package lsp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const testURI = "file:///work/main.curage"

// notifyRecorder captures server-initiated notifications.
type notifyRecorder struct {
	mu        sync.Mutex
	published []*protocol.PublishDiagnosticsParams
}

func (r *notifyRecorder) ctx() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *notifyRecorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1]
}

func newTestServer(t *testing.T, source string) (*Server, *notifyRecorder) {
	t.Helper()
	s := New(WithGlobals([]string{"print", "read"}))
	rec := &notifyRecorder{}
	err := s.textDocumentDidOpen(rec.ctx(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "curage",
			Version:    1,
			Text:       source,
		},
	})
	require.NoError(t, err)
	return s, rec
}

func posParams(line, char int) protocol.TextDocumentPositionParams {
	return protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Position: protocol.Position{
			Line:      protocol.UInteger(line),
			Character: protocol.UInteger(char),
		},
	}
}

func TestInitialize(t *testing.T) {
	s := New()
	rec := &notifyRecorder{}
	res, err := s.initialize(rec.ctx(), &protocol.InitializeParams{})
	require.NoError(t, err)

	initRes, ok := res.(protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, serverName, initRes.ServerInfo.Name)

	syncOpts, ok := initRes.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *syncOpts.Change)

	rename, ok := initRes.Capabilities.RenameProvider.(*protocol.RenameOptions)
	require.True(t, ok)
	assert.True(t, *rename.PrepareProvider)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	_, rec := newTestServer(t, "set y = 2")

	pub := rec.last(t)
	assert.Equal(t, testURI, pub.URI)
	require.Len(t, pub.Diagnostics, 1)
	d := pub.Diagnostics[0]
	assert.Equal(t, "'y' is not defined.", d.Message)
	assert.Equal(t, "curage", *d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *d.Severity)
	assert.Equal(t, protocol.UInteger(4), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(5), d.Range.End.Character)
}

func TestDidChangeReanalyzes(t *testing.T) {
	s, rec := newTestServer(t, "let x = 1")
	assert.Empty(t, rec.last(t).Diagnostics)

	err := s.textDocumentDidChange(rec.ctx(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "let x = y"},
		},
	})
	require.NoError(t, err)

	pub := rec.last(t)
	require.Len(t, pub.Diagnostics, 1)
	assert.Equal(t, "'y' is not defined.", pub.Diagnostics[0].Message)

	// The snapshot follows the edit, so queries see the new content.
	doc := s.docs.Get(testURI)
	require.NotNil(t, doc)
	assert.Equal(t, "let x = y", doc.Content)
	assert.Equal(t, int32(2), doc.Version)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	s, rec := newTestServer(t, "set y = 2")

	err := s.textDocumentDidClose(rec.ctx(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	assert.Empty(t, rec.last(t).Diagnostics)
	assert.Nil(t, s.docs.Get(testURI))
}

func TestDocumentHighlight(t *testing.T) {
	s, _ := newTestServer(t, "let answer = 42\nset answer = answer + 1")

	got, err := s.textDocumentDocumentHighlight(nil, &protocol.DocumentHighlightParams{
		TextDocumentPositionParams: posParams(0, 4),
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, protocol.DocumentHighlightKindWrite, *got[0].Kind)
	assert.Equal(t, protocol.UInteger(0), got[0].Range.Start.Line)
	assert.Equal(t, protocol.DocumentHighlightKindRead, *got[1].Kind)
	assert.Equal(t, protocol.UInteger(1), got[1].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(4), got[1].Range.Start.Character)
	assert.Equal(t, protocol.DocumentHighlightKindRead, *got[2].Kind)
	assert.Equal(t, protocol.UInteger(13), got[2].Range.Start.Character)

	// Whitespace hits nothing.
	got, err = s.textDocumentDocumentHighlight(nil, &protocol.DocumentHighlightParams{
		TextDocumentPositionParams: posParams(0, 3),
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDefinition(t *testing.T) {
	s, _ := newTestServer(t, "let x = 1\nset x = 2")

	res, err := s.textDocumentDefinition(nil, &protocol.DefinitionParams{
		TextDocumentPositionParams: posParams(1, 4),
	})
	require.NoError(t, err)
	loc, ok := res.(protocol.Location)
	require.True(t, ok)
	assert.Equal(t, protocol.UInteger(0), loc.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(4), loc.Range.Start.Character)
}

func TestDefinitionBuiltin(t *testing.T) {
	s, _ := newTestServer(t, "let r = read()")

	res, err := s.textDocumentDefinition(nil, &protocol.DefinitionParams{
		TextDocumentPositionParams: posParams(0, 8),
	})
	require.NoError(t, err)
	assert.Nil(t, res, "builtins have no source definition")
}

func TestReferences(t *testing.T) {
	s, _ := newTestServer(t, "let x = 1\nset x = x")

	params := &protocol.ReferenceParams{
		TextDocumentPositionParams: posParams(0, 4),
	}
	locs, err := s.textDocumentReferences(nil, params)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, protocol.UInteger(1), locs[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(4), locs[0].Range.Start.Character)
	assert.Equal(t, protocol.UInteger(8), locs[1].Range.Start.Character)

	params.Context.IncludeDeclaration = true
	locs, err = s.textDocumentReferences(nil, params)
	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, protocol.UInteger(0), locs[0].Range.Start.Line)
}

func TestPrepareRename(t *testing.T) {
	s, _ := newTestServer(t, "let x = 1\nlet y = print(x)")

	res, err := s.textDocumentPrepareRename(nil, &protocol.PrepareRenameParams{
		TextDocumentPositionParams: posParams(0, 4),
	})
	require.NoError(t, err)
	rp, ok := res.(*protocol.RangeWithPlaceholder)
	require.True(t, ok)
	assert.Equal(t, "x", rp.Placeholder)
	assert.Equal(t, protocol.UInteger(4), rp.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(5), rp.Range.End.Character)

	// Keywords are not renameable.
	res, err = s.textDocumentPrepareRename(nil, &protocol.PrepareRenameParams{
		TextDocumentPositionParams: posParams(0, 0),
	})
	require.NoError(t, err)
	assert.Nil(t, res)

	// Neither are builtins.
	res, err = s.textDocumentPrepareRename(nil, &protocol.PrepareRenameParams{
		TextDocumentPositionParams: posParams(1, 8),
	})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestRename(t *testing.T) {
	s, _ := newTestServer(t, "let answer = 42\nset answer = answer + 1")

	edit, err := s.textDocumentRename(nil, &protocol.RenameParams{
		TextDocumentPositionParams: posParams(1, 13),
		NewName:                    "result",
	})
	require.NoError(t, err)
	require.NotNil(t, edit)
	edits := edit.Changes[testURI]
	require.Len(t, edits, 3)
	for _, e := range edits {
		assert.Equal(t, "result", e.NewText)
	}
	assert.Equal(t, protocol.UInteger(0), edits[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(4), edits[0].Range.Start.Character)
}

func TestRenameBuiltin(t *testing.T) {
	s, _ := newTestServer(t, "let r = read()")

	edit, err := s.textDocumentRename(nil, &protocol.RenameParams{
		TextDocumentPositionParams: posParams(0, 8),
		NewName:                    "scan",
	})
	require.NoError(t, err)
	assert.Nil(t, edit)
}

func TestHover(t *testing.T) {
	s, _ := newTestServer(t, "let x = 1\nset x = x")

	hov, err := s.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: posParams(0, 4),
	})
	require.NoError(t, err)
	require.NotNil(t, hov)
	content, ok := hov.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "`x`")
	assert.Contains(t, content.Value, "Defined at line 1.")
	assert.Contains(t, content.Value, "2 references.")

	hov, err = s.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: posParams(0, 6),
	})
	require.NoError(t, err)
	assert.Nil(t, hov)
}

func TestPositionConversion(t *testing.T) {
	assert.Equal(t, "/work/main.curage", uriToPath("file:///work/main.curage"))
	assert.Equal(t, "file:///work/main.curage", pathToURI("/work/main.curage"))
	assert.Equal(t, protocol.UInteger(0), safeUint(-3))
}
