package service

import (
	"context"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
	"github.com/farmops/farmboard/pkg/slogx"
)

// RefreshService re-derives every in-memory projection from the document
// store in one pass. It is the only component that touches the store's read
// path for all collections at once, and the authoritative place that seeds a
// default workspace when none exists.
type RefreshService struct {
	Store       store.Store
	Projections *Projections
}

// RefreshAll flags every collection as loading, reads all documents, seeds a
// default workspace if absent and replaces every projection, then flags
// everything loaded. Stored date fields come back as time.Time through typed
// decoding. Idempotent: running it twice in a row yields the same
// projections.
func (s *RefreshService) RefreshAll(ctx context.Context, actor domain.User) error {
	log := slogx.FromContext(ctx)
	s.Projections.beginRefresh()

	accounts := []domain.Account{}
	s.Store.Get(ctx, store.KeyAccounts, &accounts)

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)

	campaigns := []domain.Campaign{}
	s.Store.Get(ctx, store.KeyCampaigns, &campaigns)

	expenses := []domain.Expense{}
	s.Store.Get(ctx, store.KeyExpenses, &expenses)

	var ws domain.Workspace
	s.Store.Get(ctx, store.KeyWorkspace, &ws)
	if ws.ID == "" {
		ws = defaultWorkspace(actor)
		if err := s.Store.Set(ctx, store.KeyWorkspace, ws); err != nil {
			// The pass is over either way; flags must not stick on loading.
			s.Projections.endRefresh()
			return err
		}
		log.Info("seeded default workspace", "owner", actor.ID)
	}

	s.Projections.SetAccounts(accounts)
	s.Projections.SetCards(cards)
	s.Projections.SetProxies(proxies)
	s.Projections.SetExpenses(expenses)
	s.Projections.SetCampaigns(campaigns)
	s.Projections.SetWorkspace(ws)

	return nil
}

// defaultWorkspace builds an empty workspace owned by the acting user. Both
// the refresh pass and the lazy-seeding workspace mutators go through here.
func defaultWorkspace(actor domain.User) domain.Workspace {
	now := time.Now().UTC()
	return domain.Workspace{
		ID:        idx.New().String(),
		OwnerID:   actor.ID,
		Team:      []domain.TeamMember{},
		Tasks:     []domain.Task{},
		Activity:  []domain.Activity{},
		Chat:      []domain.ChatMessage{},
		Channels:  []domain.ChatChannel{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
