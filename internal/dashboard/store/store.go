// Package store defines the document store every repository persists through:
// a flat key to JSON-document namespace where each key holds one whole collection
// (or the workspace singleton) and every write replaces the full document.
package store

import "context"

// Document keys owned by the dashboard core. Each holds one top-level
// collection serialized as a single JSON document.
const (
	KeyAccounts  = "accounts"
	KeyCards     = "cards"
	KeyProxies   = "proxies"
	KeyCampaigns = "campaigns"
	KeyExpenses  = "expenses"
	KeyWorkspace = "workspace"
)

// Auxiliary keys co-resident in the same namespace but owned by neighboring
// subsystems. The core never reads or writes them; they are listed so nobody
// reuses a key by accident.
const (
	KeyUsers      = "users"
	KeyOffers     = "offers"
	KeyOfferLinks = "offer_links"
	KeyLinkStats  = "link_stats"
)

// Store is the durable key to JSON-document substrate. Concrete drivers (sqlite)
// implement this. There are no partial writes: Set replaces the full document
// at key.
type Store interface {
	// Get decodes the document at key into out. An absent key or a document
	// that fails to decode is not an error: out is left untouched so the
	// caller keeps whatever default it preloaded, and a diagnostic is logged.
	Get(ctx context.Context, key string, out any)

	// Set serializes doc and overwrites the document at key. Write failures
	// are returned to the caller; the mutation boundary is expected to leave
	// its in-memory projection unchanged when Set fails.
	Set(ctx context.Context, key string, doc any) error

	// ApplyMigrations brings the underlying schema up to date.
	ApplyMigrations() error

	// Ping verifies the substrate is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
