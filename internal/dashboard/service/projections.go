package service

import (
	"sync"

	"github.com/farmops/farmboard/internal/dashboard/domain"
)

// LoadingFlags expose the per-collection refresh state. A collection moves
// loading to loaded on every refresh pass. There is no separate error state;
// read failures degrade to defaults and still land on loaded.
type LoadingFlags struct {
	Accounts  bool `json:"accounts"`
	Cards     bool `json:"cards"`
	Proxies   bool `json:"proxies"`
	Campaigns bool `json:"campaigns"`
	Expenses  bool `json:"expenses"`
	Workspace bool `json:"workspace"`
}

// Projections is the mutex-guarded in-memory view of the store. Setters hold
// the full collections; the role filter and the metrics calculator run at
// read time against the requesting user, so every caller gets the view its
// own role permits, never the view of whoever wrote last. The filter and the
// snapshot read happen under one lock, so a reader can never observe a
// half-applied mutation or a stale aggregate.
type Projections struct {
	mu sync.RWMutex

	accounts  []domain.Account
	campaigns []domain.Campaign
	cards     []domain.Card
	proxies   []domain.Proxy
	expenses  []domain.Expense
	workspace domain.Workspace
	loading   LoadingFlags
}

func NewProjections() *Projections {
	return &Projections{
		accounts:  []domain.Account{},
		campaigns: []domain.Campaign{},
		cards:     []domain.Card{},
		proxies:   []domain.Proxy{},
		expenses:  []domain.Expense{},
	}
}

// beginRefresh flags every collection as loading.
func (p *Projections) beginRefresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = LoadingFlags{
		Accounts: true, Cards: true, Proxies: true,
		Campaigns: true, Expenses: true, Workspace: true,
	}
}

// endRefresh flags everything loaded, whether or not the pass replaced any
// collection. Used on refresh error paths so flags never stick on loading.
func (p *Projections) endRefresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = LoadingFlags{}
}

// SetAccounts replaces the full account collection.
func (p *Projections) SetAccounts(full []domain.Account) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts = full
	p.loading.Accounts = false
}

// SetCampaigns replaces the full campaign collection.
func (p *Projections) SetCampaigns(full []domain.Campaign) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.campaigns = full
	p.loading.Campaigns = false
}

// SetExpenses replaces the expense collection. Expenses are never
// role-filtered.
func (p *Projections) SetExpenses(expenses []domain.Expense) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expenses = expenses
	p.loading.Expenses = false
}

func (p *Projections) SetCards(cards []domain.Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = cards
	p.loading.Cards = false
}

func (p *Projections) SetProxies(proxies []domain.Proxy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.proxies = proxies
	p.loading.Proxies = false
}

func (p *Projections) SetWorkspace(ws domain.Workspace) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.workspace = ws
	p.loading.Workspace = false
}

// AccountsFor returns the accounts visible to the acting user's role.
func (p *Projections) AccountsFor(actor domain.User) []domain.Account {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.VisibleAccounts(p.accounts, actor)
}

// CampaignsFor returns the campaigns visible to the acting user's role.
func (p *Projections) CampaignsFor(actor domain.User) []domain.Campaign {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.VisibleCampaigns(p.campaigns, actor)
}

// MetricsFor derives the dashboard aggregates from the campaigns visible to
// the acting user and the full expense ledger.
func (p *Projections) MetricsFor(actor domain.User) domain.Metrics {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.ComputeMetrics(domain.VisibleCampaigns(p.campaigns, actor), p.expenses)
}

func (p *Projections) Cards() []domain.Card {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cards
}

func (p *Projections) Proxies() []domain.Proxy {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.proxies
}

func (p *Projections) Expenses() []domain.Expense {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.expenses
}

func (p *Projections) Workspace() domain.Workspace {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.workspace
}

func (p *Projections) Loading() LoadingFlags {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}
