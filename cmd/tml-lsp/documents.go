package main

import (
	"context"
	"sync"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/debug"
	"github.com/tml-format/go-tml/index"
	"github.com/tml-format/go-tml/parse"

	"go.lsp.dev/protocol"
)

// document caches the parse tree and position index for one open file.
// The cache is invalidated by version: a change notification with a new
// version replaces the whole entry.
type document struct {
	uri     string
	version int32
	content string
	nodes   []*ast.Node
	idx     *index.Index
}

type documentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{
		docs: make(map[string]*document),
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, version int32, content string) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old, ok := ds.docs[uri]; ok && old.version >= version && old.content == content {
		return old
	}
	nodes := parse.Parse(content)
	doc := &document{
		uri:     uri,
		version: version,
		content: content,
		nodes:   nodes,
		idx:     index.Build(nodes),
	}
	ds.docs[uri] = doc
	if debug.LSP() {
		debug.Logf("indexed %s version %d: %d roots\n", uri, version, len(nodes))
	}
	return doc
}

func (ds *documentStore) drop(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	s.docs.put(string(td.URI), td.Version, td.Text)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// sync is full, so the last change carries the whole document
	change := params.ContentChanges[len(params.ContentChanges)-1]
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Version, change.Text)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.drop(string(params.TextDocument.URI))
	return nil
}
