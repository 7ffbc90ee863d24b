// Copyright © 2026 The curage-lang authors

package lsp

import (
	"sync"

	"github.com/vain0x/curage-lang/analysis"
)

// Document represents an open text document tracked by the LSP server.
// Every edit produces a fresh analysis snapshot before any query runs
// against it, so query results always describe the current content.
type Document struct {
	mu       sync.Mutex
	URI      string
	Version  int32
	Content  string
	analysis *analysis.Result
}

// analyze runs the full pipeline on the document content and replaces
// the cached snapshot. Analysis never fails; problems surface as
// diagnostics on the result.
func (d *Document) analyze(globals []string) {
	d.analysis = analysis.AnalyzeSource(d.Content, &analysis.Config{
		File:    uriToPath(d.URI),
		Globals: globals,
	})
}

// Snapshot returns the current analysis result.
func (d *Document) Snapshot() *analysis.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analysis
}

// DocumentStore manages open documents with thread-safe access.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds a document to the store and analyzes it.
func (s *DocumentStore) Open(uri string, version int32, content string, globals []string) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Content: content,
	}
	doc.analyze(globals)
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change updates a document's content (full sync) and re-analyzes it.
func (s *DocumentStore) Change(uri string, version int32, content string, globals []string) *Document {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri}
		s.docs[uri] = doc
	}
	s.mu.Unlock()

	doc.mu.Lock()
	doc.Version = version
	doc.Content = content
	doc.analyze(globals)
	doc.mu.Unlock()
	return doc
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns every open document.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out
}
