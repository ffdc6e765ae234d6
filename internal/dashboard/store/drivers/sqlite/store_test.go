package sqlite

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:", slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Set(ctx, "doc", testDoc{Name: "first", Count: 1}))

	var got testDoc
	st.Get(ctx, "doc", &got)
	require.Equal(t, testDoc{Name: "first", Count: 1}, got)

	t.Run("set overwrites the whole document", func(t *testing.T) {
		require.NoError(t, st.Set(ctx, "doc", testDoc{Name: "second"}))

		var again testDoc
		st.Get(ctx, "doc", &again)
		require.Equal(t, testDoc{Name: "second", Count: 0}, again)
	})
}

func TestStoreGetMissingKeyKeepsDefault(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	got := testDoc{Name: "default", Count: 42}
	st.Get(ctx, "never-written", &got)
	require.Equal(t, testDoc{Name: "default", Count: 42}, got)

	t.Run("slice default stays empty, not nil", func(t *testing.T) {
		list := []testDoc{}
		st.Get(ctx, "never-written", &list)
		require.NotNil(t, list)
		require.Empty(t, list)
	})
}

func TestStoreGetMalformedDocumentKeepsDefault(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Write garbage below the codec, as a previous version might have.
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO documents (key, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		"broken", `{"name": unquoted}`)
	require.NoError(t, err)

	got := testDoc{Name: "default"}
	st.Get(ctx, "broken", &got)
	require.Equal(t, "default", got.Name)

	t.Run("valid json of the wrong shape", func(t *testing.T) {
		// The first element decodes cleanly, the second fails; the
		// caller's default must survive untouched, not half-replaced.
		_, err := st.db.ExecContext(ctx,
			`INSERT INTO documents (key, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
			"wrong-shape", `[{"name": "ok", "count": 1}, {"name": 7}]`)
		require.NoError(t, err)

		list := []testDoc{{Name: "default", Count: 42}}
		st.Get(ctx, "wrong-shape", &list)
		require.Equal(t, []testDoc{{Name: "default", Count: 42}}, list)
	})
}

func TestStoreSetRejectsUnencodableDocument(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.Error(t, st.Set(ctx, "bad", make(chan int)))

	// The failed Set must not have created the key.
	var got testDoc
	st.Get(ctx, "bad", &got)
	require.Equal(t, testDoc{}, got)
}

func TestStoreMigrationsAreIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestStorePing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
