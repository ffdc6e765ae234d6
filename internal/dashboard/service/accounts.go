package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// AccountsService is the repository for the accounts collection. Status
// changes are audited: every distinct transition appends exactly one
// StatusHistory entry within the same mutation.
type AccountsService struct {
	Store       store.Store
	Projections *Projections

	// mu serializes read-modify-write cycles so the process is a single
	// writer for this collection. Across processes the store remains
	// last-write-wins at document granularity.
	mu sync.Mutex
}

// AccountPatch carries a partial update; nil fields are left unchanged.
type AccountPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Platform      *string
	Status        *domain.AccountStatus
	FarmerID      *string
	Priority      *int
	Tags          *[]string
	TwoFactorCode *string
	BackupCodes   *[]string
	CookieData    *string
}

// Create assigns an id and timestamps, seeds the audit trail with the initial
// status, persists the collection and returns the stored account.
func (s *AccountsService) Create(ctx context.Context, actor domain.User, acc domain.Account) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc.Status == "" {
		acc.Status = domain.AccountNew
	}
	if err := validateBackupCodes(&acc.BackupCodes); err != nil {
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	acc.ID = idx.New().String()
	acc.CreatedBy = actor.ID
	acc.CreatedByName = actor.Name
	acc.CreatedAt = now
	acc.UpdatedAt = now
	acc.StatusHistory = []domain.StatusChange{{
		Status:    acc.Status,
		ChangedBy: actor.ID,
		ChangedAt: now,
	}}

	accounts := []domain.Account{}
	s.Store.Get(ctx, store.KeyAccounts, &accounts)
	accounts = append(accounts, acc)

	if err := s.Store.Set(ctx, store.KeyAccounts, accounts); err != nil {
		return domain.Account{}, err
	}
	s.Projections.SetAccounts(accounts)
	return acc, nil
}

// Update merges patch over the account with the given id. An absent id is a
// silent no-op. A status change appends one StatusHistory entry; updating to
// the current status appends nothing.
func (s *AccountsService) Update(ctx context.Context, actor domain.User, id string, patch AccountPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.BackupCodes != nil {
		if err := validateBackupCodes(patch.BackupCodes); err != nil {
			return err
		}
	}

	accounts := []domain.Account{}
	s.Store.Get(ctx, store.KeyAccounts, &accounts)

	changed := false
	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}
		applyAccountPatch(&accounts[i], patch, actor)
		changed = true
		break
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyAccounts, accounts); err != nil {
		return err
	}
	s.Projections.SetAccounts(accounts)
	return nil
}

// Delete removes the account with the given id. Deleting an id that does not
// exist is idempotent.
func (s *AccountsService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := []domain.Account{}
	s.Store.Get(ctx, store.KeyAccounts, &accounts)

	kept := accounts[:0]
	for _, a := range accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}

	if err := s.Store.Set(ctx, store.KeyAccounts, kept); err != nil {
		return err
	}
	s.Projections.SetAccounts(kept)
	return nil
}

// AddComment appends a comment to the account. Unlike Update, a missing
// account is an error here, since the comment would otherwise vanish.
func (s *AccountsService) AddComment(ctx context.Context, actor domain.User, accountID, text string) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := []domain.Account{}
	s.Store.Get(ctx, store.KeyAccounts, &accounts)

	comment := domain.Comment{
		ID:         idx.New().String(),
		Text:       text,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		CreatedAt:  time.Now().UTC(),
	}

	found := false
	for i := range accounts {
		if accounts[i].ID == accountID {
			accounts[i].Comments = append(accounts[i].Comments, comment)
			accounts[i].UpdatedAt = comment.CreatedAt
			found = true
			break
		}
	}
	if !found {
		return domain.Comment{}, ErrNotFound
	}

	if err := s.Store.Set(ctx, store.KeyAccounts, accounts); err != nil {
		return domain.Comment{}, err
	}
	s.Projections.SetAccounts(accounts)
	return comment, nil
}

func applyAccountPatch(acc *domain.Account, patch AccountPatch, actor domain.User) {
	now := time.Now().UTC()

	if patch.Name != nil {
		acc.Name = *patch.Name
	}
	if patch.Email != nil {
		acc.Email = *patch.Email
	}
	if patch.Phone != nil {
		acc.Phone = *patch.Phone
	}
	if patch.Platform != nil {
		acc.Platform = *patch.Platform
	}
	if patch.FarmerID != nil {
		acc.FarmerID = *patch.FarmerID
	}
	if patch.Priority != nil {
		acc.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		acc.Tags = *patch.Tags
	}
	if patch.TwoFactorCode != nil {
		acc.TwoFactorCode = *patch.TwoFactorCode
	}
	if patch.BackupCodes != nil {
		acc.BackupCodes = *patch.BackupCodes
	}
	if patch.CookieData != nil {
		acc.CookieData = *patch.CookieData
	}

	if patch.Status != nil && *patch.Status != acc.Status {
		acc.Status = *patch.Status
		acc.StatusHistory = append(acc.StatusHistory, domain.StatusChange{
			Status:    *patch.Status,
			ChangedBy: actor.ID,
			ChangedAt: now,
		})
	}

	acc.UpdatedAt = now
}

// validateBackupCodes enforces the cardinality invariant at the store level:
// either no codes at all or exactly eight, unique after lowercasing. The
// normalized forms are written back in place.
func validateBackupCodes(codes *[]string) error {
	if len(*codes) == 0 {
		return nil
	}
	if len(*codes) != domain.BackupCodeCount {
		return ErrBackupCodes
	}

	seen := make(map[string]struct{}, domain.BackupCodeCount)
	normalized := make([]string, 0, domain.BackupCodeCount)
	for _, c := range *codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			return ErrBackupCodes
		}
		if _, dup := seen[c]; dup {
			return ErrBackupCodes
		}
		seen[c] = struct{}{}
		normalized = append(normalized, c)
	}
	*codes = normalized
	return nil
}
