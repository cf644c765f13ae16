package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	"github.com/simonindia/office-assistant/pkg/config"
)

// newTestClient opens a fresh database file under t.TempDir.
func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	client, err := sqlite.NewClient(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "assistant_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}
