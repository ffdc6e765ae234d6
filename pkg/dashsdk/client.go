// Package dashsdk is a thin typed client for the farmboard dashboard API.
// The browser UI consumes the API directly; this client exists for scripting,
// integrations and tests.
package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a farmboard instance. Token is a bearer JWT minted by the
// authentication service; the dashboard API derives the acting user from it.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx response decoded into the standard error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashsdk: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// do performs one authenticated request and decodes the response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("dashsdk: encoding request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("dashsdk: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("dashsdk: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			apiErr.Code = body.Error
			apiErr.Message = body.ErrorDescription
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("dashsdk: decoding response: %w", err)
	}
	return nil
}

// Refresh triggers a full projection refresh for the acting user.
func (c *Client) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/refresh", nil, nil)
}

// Metrics returns the derived dashboard aggregates.
func (c *Client) Metrics(ctx context.Context) (MetricsResponse, error) {
	var out MetricsResponse
	err := c.do(ctx, http.MethodGet, "/v1/metrics", nil, &out)
	return out, err
}

// ListAccounts returns the accounts visible to the acting user, decoded into
// out (a pointer to a slice of the caller's account type).
func (c *Client) ListAccounts(ctx context.Context, out any) error {
	return c.do(ctx, http.MethodGet, "/v1/accounts", nil, out)
}

// CreateAccount creates an account and decodes the stored record into out.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest, out any) error {
	return c.do(ctx, http.MethodPost, "/v1/accounts", req, out)
}

// UpdateAccount applies a partial update to an account.
func (c *Client) UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) error {
	return c.do(ctx, http.MethodPatch, "/v1/accounts/"+id, req, nil)
}

// DeleteAccount removes an account; deleting an absent id succeeds.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/accounts/"+id, nil, nil)
}

// AssignCard binds a card to an account.
func (c *Client) AssignCard(ctx context.Context, cardID, accountID string) error {
	return c.do(ctx, http.MethodPost, "/v1/cards/"+cardID+"/assign", AssignRequest{AccountID: accountID}, nil)
}

// UnassignCard releases a card from its account.
func (c *Client) UnassignCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodPost, "/v1/cards/"+cardID+"/unassign", nil, nil)
}

// CreateCampaign creates a campaign owned by the acting user.
func (c *Client) CreateCampaign(ctx context.Context, req CreateCampaignRequest, out any) error {
	return c.do(ctx, http.MethodPost, "/v1/campaigns", req, out)
}

// CreateExpense records a ledger row.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest, out any) error {
	return c.do(ctx, http.MethodPost, "/v1/expenses", req, out)
}

// Workspace returns the workspace aggregate decoded into out.
func (c *Client) Workspace(ctx context.Context, out any) error {
	return c.do(ctx, http.MethodGet, "/v1/workspace", nil, out)
}

// AddTask creates a workspace task.
func (c *Client) AddTask(ctx context.Context, req CreateTaskRequest, out any) error {
	return c.do(ctx, http.MethodPost, "/v1/workspace/tasks", req, out)
}

// PostMessage posts a chat message to a channel.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest, out any) error {
	return c.do(ctx, http.MethodPost, "/v1/workspace/messages", req, out)
}
