package domain

import "time"

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
)

// Campaign is owned by the launcher who created it.
type Campaign struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Budget     float64        `json:"budget"`
	Spent      float64        `json:"spent"`
	Status     CampaignStatus `json:"status"`
	AccountID  string         `json:"accountId,omitempty"`
	LauncherID string         `json:"launcherId"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
