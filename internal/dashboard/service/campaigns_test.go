package service

import (
	"context"
	"testing"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/stretchr/testify/require"
)

func TestCampaignsCreateOwnedByActor(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	launcher := domain.User{ID: "launcher-1", Role: domain.RoleLauncher}
	svc := &CampaignsService{Store: st, Projections: NewProjections()}

	c, err := svc.Create(ctx, launcher, domain.Campaign{Name: "spring", Budget: 500})
	require.NoError(t, err)
	require.Equal(t, "launcher-1", c.LauncherID)
	require.Equal(t, domain.CampaignActive, c.Status)

	// Ownership cannot be spoofed through the payload.
	c2, err := svc.Create(ctx, launcher, domain.Campaign{Name: "spoofed", LauncherID: "someone-else"})
	require.NoError(t, err)
	require.Equal(t, "launcher-1", c2.LauncherID)
}

func TestCampaignsMutationsRecomputeMetrics(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()
	campaigns := &CampaignsService{Store: st, Projections: proj}
	expenses := &ExpensesService{Store: st, Projections: proj}

	c, err := campaigns.Create(ctx, admin, domain.Campaign{Name: "c", Budget: 1000})
	require.NoError(t, err)
	require.Equal(t, 1000.0, proj.MetricsFor(admin).TotalRevenue)

	_, err = expenses.Create(ctx, admin, domain.Expense{Amount: 400})
	require.NoError(t, err)

	m := proj.MetricsFor(admin)
	require.Equal(t, 400.0, m.TotalExpenses)
	require.Equal(t, 600.0, m.TotalProfit)
	require.Equal(t, 60.0, m.TotalROI)

	require.NoError(t, campaigns.Update(ctx, admin, c.ID, CampaignPatch{Budget: ptr(2000.0)}))
	require.Equal(t, 2000.0, proj.MetricsFor(admin).TotalRevenue)
	require.Equal(t, 80.0, proj.MetricsFor(admin).TotalROI)

	require.NoError(t, campaigns.Delete(ctx, admin, c.ID))
	m = proj.MetricsFor(admin)
	require.Equal(t, 0.0, m.TotalRevenue)
	require.Equal(t, 0.0, m.TotalROI) // no division by zero
	require.Equal(t, -400.0, m.TotalProfit)
}

func TestExpensesCreateDefaultsDate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	svc := &ExpensesService{Store: st, Projections: NewProjections()}

	e, err := svc.Create(ctx, admin, domain.Expense{Amount: 12.5, Category: "proxies"})
	require.NoError(t, err)
	require.False(t, e.Date.IsZero())
	require.Equal(t, "admin-1", e.CreatedBy)

	stored := []domain.Expense{}
	st.Get(ctx, store.KeyExpenses, &stored)
	require.Len(t, stored, 1)
	require.Equal(t, e.ID, stored[0].ID)
}

func TestExpensesUpdateRecomputesMetrics(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()
	svc := &ExpensesService{Store: st, Projections: proj}

	e, err := svc.Create(ctx, admin, domain.Expense{Amount: 100, Category: "cards"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, admin, e.ID, ExpensePatch{Amount: ptr(250.0)}))
	require.Equal(t, 250.0, proj.MetricsFor(admin).TotalExpenses)

	stored := []domain.Expense{}
	st.Get(ctx, store.KeyExpenses, &stored)
	require.Len(t, stored, 1)
	require.Equal(t, 250.0, stored[0].Amount)
	require.Equal(t, "cards", stored[0].Category)

	// unknown id leaves the ledger alone
	require.NoError(t, svc.Update(ctx, admin, "missing", ExpensePatch{Amount: ptr(1.0)}))
	require.Equal(t, 250.0, proj.MetricsFor(admin).TotalExpenses)
}

func TestExpensesDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	proj := NewProjections()
	svc := &ExpensesService{Store: st, Projections: proj}

	e, err := svc.Create(ctx, admin, domain.Expense{Amount: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, e.ID))
	require.NoError(t, svc.Delete(ctx, admin, e.ID))
	require.Empty(t, proj.Expenses())
	require.Equal(t, 0.0, proj.MetricsFor(admin).TotalExpenses)
}
