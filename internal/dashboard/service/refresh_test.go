package service

import (
	"context"
	"testing"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/stretchr/testify/require"
)

func TestRefreshAllSeedsWorkspaceOnce(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()
	svc := &RefreshService{Store: st, Projections: proj}

	require.NoError(t, svc.RefreshAll(ctx, admin))

	first := proj.Workspace()
	require.NotEmpty(t, first.ID)
	require.Equal(t, "admin-1", first.OwnerID)

	// A second pass finds the stored workspace and keeps its identity.
	require.NoError(t, svc.RefreshAll(ctx, admin))
	require.Equal(t, first.ID, proj.Workspace().ID)
}

func TestRefreshAllClearsLoadingOnSeedFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()
	svc := &RefreshService{Store: &failingStore{Store: st}, Projections: proj}

	// No workspace exists, so the pass tries to seed one and the write
	// fails. The flags must not stay stuck on loading.
	require.ErrorIs(t, svc.RefreshAll(ctx, admin), errWriteFailed)
	require.Equal(t, LoadingFlags{}, proj.Loading())
}

func TestRefreshAllLoadsEveryCollection(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()

	accounts := &AccountsService{Store: st, Projections: proj}
	cards := &CardsService{Store: st, Projections: proj}
	campaigns := &CampaignsService{Store: st, Projections: proj}
	expenses := &ExpensesService{Store: st, Projections: proj}

	_, err := accounts.Create(ctx, admin, domain.Account{Name: "acc"})
	require.NoError(t, err)
	_, err = cards.Create(ctx, admin, domain.Card{Name: "card"})
	require.NoError(t, err)
	_, err = campaigns.Create(ctx, admin, domain.Campaign{Name: "camp", Budget: 1000})
	require.NoError(t, err)
	_, err = expenses.Create(ctx, admin, domain.Expense{Amount: 250})
	require.NoError(t, err)

	// A fresh projection set simulates a restarted session.
	fresh := NewProjections()
	svc := &RefreshService{Store: st, Projections: fresh}
	require.NoError(t, svc.RefreshAll(ctx, admin))

	require.Len(t, fresh.AccountsFor(admin), 1)
	require.Len(t, fresh.Cards(), 1)
	require.Len(t, fresh.CampaignsFor(admin), 1)
	require.Len(t, fresh.Expenses(), 1)
	require.Empty(t, fresh.Proxies())

	m := fresh.MetricsFor(admin)
	require.Equal(t, 1000.0, m.TotalRevenue)
	require.Equal(t, 250.0, m.TotalExpenses)
	require.Equal(t, 75.0, m.TotalROI)

	require.Equal(t, LoadingFlags{}, fresh.Loading())
}

func TestRefreshedProjectionsAreRoleScoped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()

	accounts := &AccountsService{Store: st, Projections: proj}
	campaigns := &CampaignsService{Store: st, Projections: proj}

	_, err := accounts.Create(ctx, admin, domain.Account{Name: "a1", FarmerID: "farmer-1"})
	require.NoError(t, err)
	_, err = accounts.Create(ctx, admin, domain.Account{Name: "a2", FarmerID: "farmer-2"})
	require.NoError(t, err)
	_, err = campaigns.Create(ctx, admin, domain.Campaign{Name: "c1", Budget: 100})
	require.NoError(t, err)

	fresh := NewProjections()
	svc := &RefreshService{Store: st, Projections: fresh}
	require.NoError(t, svc.RefreshAll(ctx, admin))

	t.Run("farmer reader sees own accounts and no campaigns", func(t *testing.T) {
		farmer := domain.User{ID: "farmer-1", Role: domain.RoleFarmer}

		visible := fresh.AccountsFor(farmer)
		require.Len(t, visible, 1)
		require.Equal(t, "a1", visible[0].Name)
		require.Empty(t, fresh.CampaignsFor(farmer))
		// Metrics follow the visible campaigns.
		require.Equal(t, 0.0, fresh.MetricsFor(farmer).TotalRevenue)
	})

	t.Run("admin reader sees everything", func(t *testing.T) {
		require.Len(t, fresh.AccountsFor(admin), 2)
		require.Len(t, fresh.CampaignsFor(admin), 1)
		require.Equal(t, 100.0, fresh.MetricsFor(admin).TotalRevenue)
	})
}

func TestRefreshAllTypedDates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()

	expenses := &ExpensesService{Store: st, Projections: proj}
	created, err := expenses.Create(ctx, admin, domain.Expense{Amount: 10})
	require.NoError(t, err)

	fresh := NewProjections()
	svc := &RefreshService{Store: st, Projections: fresh}
	require.NoError(t, svc.RefreshAll(ctx, admin))

	got := fresh.Expenses()[0]
	require.False(t, got.Date.IsZero())
	require.True(t, created.Date.Equal(got.Date))
}
