package service

import (
	"context"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// CardsService is the repository for payment cards. Assignment to an account
// always moves the AssignedTo/AssignedBy/AssignedAt triple as one unit.
type CardsService struct {
	Store       store.Store
	Projections *Projections

	mu sync.Mutex
}

type CardPatch struct {
	Name   *string
	Number *string
	Bank   *string
	Status *domain.ResourceStatus
	Cost   *float64
}

func (s *CardsService) Create(ctx context.Context, actor domain.User, card domain.Card) (domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if card.Status == "" {
		card.Status = domain.ResourceActive
	}

	now := time.Now().UTC()
	card.ID = idx.New().String()
	card.Assignment = domain.Assignment{}
	card.CreatedAt = now
	card.UpdatedAt = now

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)
	cards = append(cards, card)

	if err := s.Store.Set(ctx, store.KeyCards, cards); err != nil {
		return domain.Card{}, err
	}
	s.Projections.SetCards(cards)
	return card, nil
}

// Update merges patch over the card; an absent id is a silent no-op.
func (s *CardsService) Update(ctx context.Context, actor domain.User, id string, patch CardPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)

	changed := false
	for i := range cards {
		if cards[i].ID != id {
			continue
		}
		if patch.Name != nil {
			cards[i].Name = *patch.Name
		}
		if patch.Number != nil {
			cards[i].Number = *patch.Number
		}
		if patch.Bank != nil {
			cards[i].Bank = *patch.Bank
		}
		if patch.Status != nil {
			cards[i].Status = *patch.Status
		}
		if patch.Cost != nil {
			cards[i].Cost = *patch.Cost
		}
		cards[i].UpdatedAt = time.Now().UTC()
		changed = true
		break
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyCards, cards); err != nil {
		return err
	}
	s.Projections.SetCards(cards)
	return nil
}

// Delete removes the card; idempotent for absent ids.
func (s *CardsService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)

	kept := cards[:0]
	for _, c := range cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := s.Store.Set(ctx, store.KeyCards, kept); err != nil {
		return err
	}
	s.Projections.SetCards(kept)
	return nil
}

// Assign records that the account now holds this card. The assignment triple
// is written together and the status flips to assigned.
func (s *CardsService) Assign(ctx context.Context, actor domain.User, cardID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)

	now := time.Now().UTC()
	found := false
	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}
		cards[i].Assignment = domain.Assignment{
			AssignedTo: accountID,
			AssignedBy: actor.ID,
			AssignedAt: &now,
		}
		cards[i].Status = domain.ResourceAssigned
		cards[i].UpdatedAt = now
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Store.Set(ctx, store.KeyCards, cards); err != nil {
		return err
	}
	s.Projections.SetCards(cards)
	return nil
}

// Unassign clears the whole assignment triple and returns the card to active.
func (s *CardsService) Unassign(ctx context.Context, actor domain.User, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := []domain.Card{}
	s.Store.Get(ctx, store.KeyCards, &cards)

	found := false
	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}
		cards[i].Assignment = domain.Assignment{}
		cards[i].Status = domain.ResourceActive
		cards[i].UpdatedAt = time.Now().UTC()
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Store.Set(ctx, store.KeyCards, cards); err != nil {
		return err
	}
	s.Projections.SetCards(cards)
	return nil
}
