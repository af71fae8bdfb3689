package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithForeignKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn  string
		want string
	}{
		{":memory:", ":memory:?_pragma=foreign_keys(1)"},
		{"file:orgs.db?_pragma=busy_timeout(5000)", "file:orgs.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
		{"file:orgs.db?_pragma=foreign_keys(0)", "file:orgs.db?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, withForeignKeys(tt.dsn))
	}
}

func TestForeignKeysOnEveryConnection(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	st, err := NewStore("file:" + t.TempDir() + "/orgs.db?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	// Hold both connections open so the pool has to dial a second one.
	conn1, err := st.db.Conn(ctx)
	require.NoError(t, err)
	defer conn1.Close()
	conn2, err := st.db.Conn(ctx)
	require.NoError(t, err)
	defer conn2.Close()

	for i, c := range []interface {
		QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	}{conn1, conn2} {
		var on int
		require.NoError(t, c.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on))
		require.Equal(t, 1, on, "connection %d", i+1)
	}

	_, err = conn2.ExecContext(ctx,
		`INSERT INTO organisations (id, name, description, owner_id, created_at, updated_at)
		 VALUES ('00000000-0000-0000-0000-000000000001', 'Orphan', '', '00000000-0000-0000-0000-000000000002', 0, 0)`)
	require.Error(t, err, "owner must exist")
}
