package dashsdk

import "time"

// ErrorResponse is the standard error body returned by the dashboard API.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description"`
}

// CreateAccountRequest creates a farming account. Status defaults to "new"
// when omitted.
type CreateAccountRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Platform      string   `json:"platform,omitempty"`
	Status        string   `json:"status,omitempty"`
	FarmerID      string   `json:"farmerId,omitempty"`
	Priority      int      `json:"priority,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	TwoFactorCode string   `json:"twoFactorCode,omitempty"`
	BackupCodes   []string `json:"backupCodes,omitempty"`
	CookieData    string   `json:"cookieData,omitempty"`
}

// UpdateAccountRequest is a partial update: absent fields are left unchanged.
// A status different from the account's current status appends an audit
// trail entry.
type UpdateAccountRequest struct {
	Name          *string   `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Platform      *string   `json:"platform,omitempty"`
	Status        *string   `json:"status,omitempty"`
	FarmerID      *string   `json:"farmerId,omitempty"`
	Priority      *int      `json:"priority,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	TwoFactorCode *string   `json:"twoFactorCode,omitempty"`
	CookieData    *string   `json:"cookieData,omitempty"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

// BackupCodesRequest replaces an account's backup codes: either empty or
// exactly eight unique codes.
type BackupCodesRequest struct {
	Codes []string `json:"codes"`
}

type CreateCardRequest struct {
	Name   string  `json:"name"`
	Number string  `json:"number,omitempty"`
	Bank   string  `json:"bank,omitempty"`
	Status string  `json:"status,omitempty"`
	Cost   float64 `json:"cost,omitempty"`
}

type UpdateCardRequest struct {
	Name   *string  `json:"name,omitempty"`
	Number *string  `json:"number,omitempty"`
	Bank   *string  `json:"bank,omitempty"`
	Status *string  `json:"status,omitempty"`
	Cost   *float64 `json:"cost,omitempty"`
}

type CreateProxyRequest struct {
	Host     string  `json:"host"`
	Port     int     `json:"port"`
	Protocol string  `json:"protocol,omitempty"`
	Country  string  `json:"country,omitempty"`
	Username string  `json:"username,omitempty"`
	Password string  `json:"password,omitempty"`
	Status   string  `json:"status,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
}

type UpdateProxyRequest struct {
	Host     *string  `json:"host,omitempty"`
	Port     *int     `json:"port,omitempty"`
	Protocol *string  `json:"protocol,omitempty"`
	Country  *string  `json:"country,omitempty"`
	Username *string  `json:"username,omitempty"`
	Password *string  `json:"password,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

// AssignRequest binds a card or proxy to an account.
type AssignRequest struct {
	AccountID string `json:"accountId"`
}

type CreateCampaignRequest struct {
	Name      string  `json:"name"`
	Budget    float64 `json:"budget"`
	Status    string  `json:"status,omitempty"`
	AccountID string  `json:"accountId,omitempty"`
}

type UpdateCampaignRequest struct {
	Name      *string  `json:"name,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
	Spent     *float64 `json:"spent,omitempty"`
	Status    *string  `json:"status,omitempty"`
	AccountID *string  `json:"accountId,omitempty"`
}

type CreateExpenseRequest struct {
	Amount    float64    `json:"amount"`
	Date      *time.Time `json:"date,omitempty"`
	AccountID string     `json:"accountId,omitempty"`
	Category  string     `json:"category,omitempty"`
}

type UpdateExpenseRequest struct {
	Amount    *float64   `json:"amount,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	AccountID *string    `json:"accountId,omitempty"`
	Category  *string    `json:"category,omitempty"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	AssigneeID  string `json:"assigneeId,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

type AddTeamMemberRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type CreateChannelRequest struct {
	Name  string `json:"name"`
	Topic string `json:"topic,omitempty"`
}

type UpdateChannelRequest struct {
	Name  *string `json:"name,omitempty"`
	Topic *string `json:"topic,omitempty"`
}

type PostMessageRequest struct {
	ChannelID string `json:"channelId"`
	Text      string `json:"text"`
	ReplyTo   string `json:"replyTo,omitempty"`
}

type ReactionRequest struct {
	Emoji string `json:"emoji"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Store string `json:"store"`
}

// MetricsResponse mirrors the derived dashboard aggregates.
type MetricsResponse struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalProfit   float64 `json:"totalProfit"`
	TotalROI      float64 `json:"totalROI"`
}
