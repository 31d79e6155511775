// Package testserver builds a fully wired HTTP server over a temporary
// export file for end-to-end tests.
package testserver

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ietsi/tablero/internal/dashboard"
	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/ietsi/tablero/internal/store"
	"github.com/ietsi/tablero/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DataPath string
	Cache    *store.Cache
}

// New starts a server over a temp export file seeded with content. Tests can
// rewrite DataPath and hit /api/refresh to simulate a changed export.
func New(t *testing.T, content string) *TestServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	parser := project.NewParser(project.LayoutV1, nil)
	cache := store.NewCache(store.FileSource{Path: path}, parser, nil)

	srv := transport.NewServer(cache, classifier, status.StrategyExact, status.DefaultColorRules(), nil)
	router := srv.Routes()
	router.Handle("/", dashboard.NewHandler())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DataPath: path,
		Cache:    cache,
	}
}

// Rewrite replaces the export file contents.
func (ts *TestServer) Rewrite(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ts.DataPath, []byte(content), 0o644))
}
