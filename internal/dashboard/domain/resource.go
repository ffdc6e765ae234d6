package domain

import "time"

// ResourceStatus covers both cards and proxies.
type ResourceStatus string

const (
	ResourceActive   ResourceStatus = "active"
	ResourceBlocked  ResourceStatus = "blocked"
	ResourceExpired  ResourceStatus = "expired"
	ResourceTesting  ResourceStatus = "testing"
	ResourceAssigned ResourceStatus = "assigned"
	ResourceInUse    ResourceStatus = "in_use"
)

// Assignment describes one fact: which account currently holds the resource,
// who assigned it and when. The three fields are set and cleared together,
// never independently.
type Assignment struct {
	AssignedTo string     `json:"assignedTo,omitempty"` // Account id
	AssignedBy string     `json:"assignedBy,omitempty"` // User id
	AssignedAt *time.Time `json:"assignedAt,omitempty"`
}

// Assigned reports whether the resource is currently held by an account.
func (a Assignment) Assigned() bool { return a.AssignedTo != "" }

type Card struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Number string         `json:"number"`
	Bank   string         `json:"bank"`
	Status ResourceStatus `json:"status"`
	Cost   float64        `json:"cost"`
	Assignment
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Proxy struct {
	ID       string         `json:"id"`
	Host     string         `json:"host"`
	Port     int            `json:"port"`
	Protocol string         `json:"protocol"`
	Country  string         `json:"country"`
	Username string         `json:"username,omitempty"`
	Password string         `json:"password,omitempty"`
	Status   ResourceStatus `json:"status"`
	Cost     float64        `json:"cost"`
	Assignment
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
