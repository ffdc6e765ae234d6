package service

import (
	"context"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// CampaignsService is the repository for campaigns. Campaign changes always
// feed the dashboard metrics derived from the projection.
type CampaignsService struct {
	Store       store.Store
	Projections *Projections

	mu sync.Mutex
}

type CampaignPatch struct {
	Name      *string
	Budget    *float64
	Spent     *float64
	Status    *domain.CampaignStatus
	AccountID *string
}

// Create stores a new campaign owned by the acting user.
func (s *CampaignsService) Create(ctx context.Context, actor domain.User, c domain.Campaign) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Status == "" {
		c.Status = domain.CampaignActive
	}

	now := time.Now().UTC()
	c.ID = idx.New().String()
	c.LauncherID = actor.ID
	c.CreatedAt = now
	c.UpdatedAt = now

	campaigns := []domain.Campaign{}
	s.Store.Get(ctx, store.KeyCampaigns, &campaigns)
	campaigns = append(campaigns, c)

	if err := s.Store.Set(ctx, store.KeyCampaigns, campaigns); err != nil {
		return domain.Campaign{}, err
	}
	s.Projections.SetCampaigns(campaigns)
	return c, nil
}

// Update merges patch over the campaign; an absent id is a silent no-op.
func (s *CampaignsService) Update(ctx context.Context, actor domain.User, id string, patch CampaignPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaigns := []domain.Campaign{}
	s.Store.Get(ctx, store.KeyCampaigns, &campaigns)

	changed := false
	for i := range campaigns {
		if campaigns[i].ID != id {
			continue
		}
		if patch.Name != nil {
			campaigns[i].Name = *patch.Name
		}
		if patch.Budget != nil {
			campaigns[i].Budget = *patch.Budget
		}
		if patch.Spent != nil {
			campaigns[i].Spent = *patch.Spent
		}
		if patch.Status != nil {
			campaigns[i].Status = *patch.Status
		}
		if patch.AccountID != nil {
			campaigns[i].AccountID = *patch.AccountID
		}
		campaigns[i].UpdatedAt = time.Now().UTC()
		changed = true
		break
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyCampaigns, campaigns); err != nil {
		return err
	}
	s.Projections.SetCampaigns(campaigns)
	return nil
}

// Delete removes the campaign; idempotent for absent ids.
func (s *CampaignsService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaigns := []domain.Campaign{}
	s.Store.Get(ctx, store.KeyCampaigns, &campaigns)

	kept := campaigns[:0]
	for _, c := range campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := s.Store.Set(ctx, store.KeyCampaigns, kept); err != nil {
		return err
	}
	s.Projections.SetCampaigns(kept)
	return nil
}
