package service

import (
	"context"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// ExpensesService is the repository for the expense ledger. Expense changes
// feed the dashboard metrics; the collection itself is visible to every role.
type ExpensesService struct {
	Store       store.Store
	Projections *Projections

	mu sync.Mutex
}

func (s *ExpensesService) Create(ctx context.Context, actor domain.User, e domain.Expense) (domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	e.ID = idx.New().String()
	e.CreatedBy = actor.ID
	e.CreatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}

	expenses := []domain.Expense{}
	s.Store.Get(ctx, store.KeyExpenses, &expenses)
	expenses = append(expenses, e)

	if err := s.Store.Set(ctx, store.KeyExpenses, expenses); err != nil {
		return domain.Expense{}, err
	}
	s.Projections.SetExpenses(expenses)
	return e, nil
}

// ExpensePatch carries the updatable expense fields; nil means unchanged.
type ExpensePatch struct {
	Amount    *float64   `json:"amount,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	AccountID *string    `json:"accountId,omitempty"`
	Category  *string    `json:"category,omitempty"`
}

// Update merges the patch over the expense. Absent ids are a silent no-op.
func (s *ExpensesService) Update(ctx context.Context, actor domain.User, id string, patch ExpensePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := []domain.Expense{}
	s.Store.Get(ctx, store.KeyExpenses, &expenses)

	changed := false
	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		if patch.Amount != nil {
			expenses[i].Amount = *patch.Amount
		}
		if patch.Date != nil {
			expenses[i].Date = *patch.Date
		}
		if patch.AccountID != nil {
			expenses[i].AccountID = *patch.AccountID
		}
		if patch.Category != nil {
			expenses[i].Category = *patch.Category
		}
		changed = true
		break
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyExpenses, expenses); err != nil {
		return err
	}
	s.Projections.SetExpenses(expenses)
	return nil
}

// Delete removes the expense; idempotent for absent ids.
func (s *ExpensesService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := []domain.Expense{}
	s.Store.Get(ctx, store.KeyExpenses, &expenses)

	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := s.Store.Set(ctx, store.KeyExpenses, kept); err != nil {
		return err
	}
	s.Projections.SetExpenses(kept)
	return nil
}
