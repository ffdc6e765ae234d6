package domain

import "time"

// AccountStatus tracks an account through its farming lifecycle.
type AccountStatus string

const (
	AccountNew            AccountStatus = "new"
	AccountFarming        AccountStatus = "farming"
	AccountWarmingUp      AccountStatus = "warming_up"
	AccountReadyForFarm   AccountStatus = "ready_for_farm"
	AccountFarmed         AccountStatus = "farmed"
	AccountReadyForLaunch AccountStatus = "ready_for_launch"
	AccountLaunched       AccountStatus = "launched"
	AccountPaused         AccountStatus = "paused"
	AccountResting        AccountStatus = "resting"
	AccountBlocked        AccountStatus = "blocked"
	AccountSold           AccountStatus = "sold"
	AccountDead           AccountStatus = "dead"
)

// StatusChange is one entry of an account's audit trail. The history is
// append-only: entries are never truncated or reordered.
type StatusChange struct {
	Status    AccountStatus `json:"status"`
	ChangedBy string        `json:"changedBy"`
	ChangedAt time.Time     `json:"changedAt"`
}

type Comment struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BackupCodeCount is the only valid non-zero cardinality for Account.BackupCodes.
const BackupCodeCount = 8

type Account struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Platform string        `json:"platform"`
	Status   AccountStatus `json:"status"`

	// StatusHistory gains exactly one entry per status transition, starting
	// with the creation status.
	StatusHistory []StatusChange `json:"statusHistory"`

	FarmerID string    `json:"farmerId,omitempty"`
	Priority int       `json:"priority"`
	Tags     []string  `json:"tags,omitempty"`
	Comments []Comment `json:"comments,omitempty"`

	// Secret material is stored as-is; encrypting it is out of scope.
	TwoFactorCode string   `json:"twoFactorCode,omitempty"`
	BackupCodes   []string `json:"backupCodes,omitempty"` // exactly 8 or empty
	CookieData    string   `json:"cookieData,omitempty"`

	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
