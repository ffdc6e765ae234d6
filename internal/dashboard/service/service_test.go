package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/internal/dashboard/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory document store with migrations applied.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

var errWriteFailed = errors.New("write failed")

// failingStore reads through to the wrapped store but rejects every write.
type failingStore struct {
	store.Store
}

func (f *failingStore) Set(ctx context.Context, key string, doc any) error {
	return errWriteFailed
}

func TestMutationsKeepProjectionOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()

	accounts := &AccountsService{Store: st, Projections: proj}
	campaigns := &CampaignsService{Store: st, Projections: proj}

	acc, err := accounts.Create(ctx, admin, domain.Account{Name: "kept"})
	require.NoError(t, err)
	c, err := campaigns.Create(ctx, admin, domain.Campaign{Name: "kept", Budget: 1000})
	require.NoError(t, err)
	require.Equal(t, 1000.0, proj.MetricsFor(admin).TotalRevenue)

	broken := &failingStore{Store: st}
	brokenAccounts := &AccountsService{Store: broken, Projections: proj}
	brokenCampaigns := &CampaignsService{Store: broken, Projections: proj}

	t.Run("create", func(t *testing.T) {
		_, err := brokenAccounts.Create(ctx, admin, domain.Account{Name: "lost"})
		require.ErrorIs(t, err, errWriteFailed)

		visible := proj.AccountsFor(admin)
		require.Len(t, visible, 1)
		require.Equal(t, acc.ID, visible[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		err := brokenCampaigns.Update(ctx, admin, c.ID, CampaignPatch{Budget: ptr(9999.0)})
		require.ErrorIs(t, err, errWriteFailed)
		require.Equal(t, 1000.0, proj.MetricsFor(admin).TotalRevenue)
	})

	t.Run("delete", func(t *testing.T) {
		err := brokenAccounts.Delete(ctx, admin, acc.ID)
		require.ErrorIs(t, err, errWriteFailed)
		require.Len(t, proj.AccountsFor(admin), 1)
	})

	// The store itself never saw the failed writes either.
	stored := []domain.Account{}
	st.Get(ctx, store.KeyAccounts, &stored)
	require.Len(t, stored, 1)
}
