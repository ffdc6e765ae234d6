package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	httpapi "github.com/farmops/farmboard/internal/dashboard/http"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/internal/dashboard/store/drivers/sqlite"
	"github.com/farmops/farmboard/pkg/httpx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "farmboard-auth"

var testSecret = []byte("router-test-secret-32-bytes-long!")

func newTestRouter(t *testing.T) *httpapi.Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	proj := service.NewProjections()
	router := httpapi.NewRouter(testSecret, testIssuer, "test", nil, st, slog.New(slog.DiscardHandler))
	router.Projections = proj
	router.RefreshService = &service.RefreshService{Store: st, Projections: proj}
	router.AccountsService = &service.AccountsService{Store: st, Projections: proj}
	router.CardsService = &service.CardsService{Store: st, Projections: proj}
	router.ProxiesService = &service.ProxiesService{Store: st, Projections: proj}
	router.CampaignsService = &service.CampaignsService{Store: st, Projections: proj}
	router.ExpensesService = &service.ExpensesService{Store: st, Projections: proj}
	router.WorkspaceService = &service.WorkspaceService{Store: st, Projections: proj}
	router.ApplyRoutes()
	return router
}

func tokenFor(t *testing.T, id, name, role string) string {
	t.Helper()
	claims := httpx.IdentityClaims{
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return raw
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/v1/accounts", "/v1/cards", "/v1/workspace", "/v1/metrics"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouterHealthProbesArePublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"store"`)
}

func TestRouterAccountLifecycle(t *testing.T) {
	router := newTestRouter(t)
	admin := tokenFor(t, "admin-1", "Admin", "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"name": "fb-01", "platform": "facebook", "farmerId": "farmer-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, domain.AccountNew, created.Status)
	require.Len(t, created.StatusHistory, 1)

	t.Run("list reflects the new account", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/accounts", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
	})

	t.Run("patch transitions status", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/v1/accounts/"+created.ID, admin, map[string]any{
			"status": "farming",
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/accounts", admin, map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid_request")
	})

	t.Run("comment on unknown account is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/accounts/missing/comments", admin, map[string]any{
			"text": "hello",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("invalid backup codes are 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/v1/accounts/"+created.ID+"/backup-codes", admin, map[string]any{
			"codes": []string{"only", "two"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/v1/accounts/"+created.ID, admin, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		rec = doJSON(t, router, http.MethodDelete, "/v1/accounts/"+created.ID, admin, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouterRoleScopedViews(t *testing.T) {
	router := newTestRouter(t)
	admin := tokenFor(t, "admin-1", "Admin", "admin")
	farmer := tokenFor(t, "farmer-1", "Fred", "farmer")
	viewer := tokenFor(t, "viewer-1", "Vic", "viewer")

	// All writes come from the admin; each reader must still get only its
	// own role's view, with no refresh in between.
	rec := doJSON(t, router, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"name": "mine", "farmerId": "farmer-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"name": "other", "farmerId": "farmer-2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/campaigns", admin, map[string]any{
		"name": "launch", "budget": 1000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("farmer sees only own accounts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/accounts", farmer, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		require.Equal(t, "mine", got[0].Name)
	})

	t.Run("viewer sees no accounts or campaigns", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/accounts", viewer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var accounts []domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
		require.Empty(t, accounts)

		rec = doJSON(t, router, http.MethodGet, "/v1/campaigns", viewer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var campaigns []domain.Campaign
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
		require.Empty(t, campaigns)
	})

	t.Run("metrics follow the reader's visible campaigns", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/metrics", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var m domain.Metrics
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		require.Equal(t, 1000.0, m.TotalRevenue)

		rec = doJSON(t, router, http.MethodGet, "/v1/metrics", viewer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		require.Equal(t, 0.0, m.TotalRevenue)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/accounts", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
	})
}

func TestRouterTeamEndpointsRequireLeadership(t *testing.T) {
	router := newTestRouter(t)
	farmer := tokenFor(t, "farmer-1", "Fred", "farmer")
	leader := tokenFor(t, "leader-1", "Lea", "leader")

	body := map[string]any{"userId": "u-1", "name": "New Member", "role": "viewer"}

	rec := doJSON(t, router, http.MethodPost, "/v1/workspace/team", farmer, body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/workspace/team", leader, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var member domain.TeamMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
	require.NotEmpty(t, member.ID)

	rec = doJSON(t, router, http.MethodDelete, "/v1/workspace/team/"+member.ID, leader, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouterMetricsFlow(t *testing.T) {
	router := newTestRouter(t)
	admin := tokenFor(t, "admin-1", "Admin", "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/campaigns", admin, map[string]any{
		"name": "launch", "budget": 1000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/expenses", admin, map[string]any{
		"amount": 400, "category": "proxies",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/metrics", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var m domain.Metrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	require.Equal(t, 1000.0, m.TotalRevenue)
	require.Equal(t, 400.0, m.TotalExpenses)
	require.Equal(t, 60.0, m.TotalROI)
}

func TestRouterCardAssignment(t *testing.T) {
	router := newTestRouter(t)
	admin := tokenFor(t, "admin-1", "Admin", "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/cards", admin, map[string]any{"name": "visa"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var card domain.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))

	rec = doJSON(t, router, http.MethodPost, "/v1/cards/"+card.ID+"/assign", admin, map[string]any{
		"accountId": "acc-1",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/cards", admin, nil)
	var cards []domain.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	require.Equal(t, "acc-1", cards[0].AssignedTo)
	require.Equal(t, domain.ResourceAssigned, cards[0].Status)

	rec = doJSON(t, router, http.MethodPost, "/v1/cards/missing/assign", admin, map[string]any{
		"accountId": "acc-1",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterWorkspaceChat(t *testing.T) {
	router := newTestRouter(t)
	admin := tokenFor(t, "admin-1", "Admin", "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/workspace/channels", admin, map[string]any{
		"name": "general",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var ch domain.ChatChannel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ch))

	rec = doJSON(t, router, http.MethodPost, "/v1/workspace/messages", admin, map[string]any{
		"channelId": ch.ID, "text": "hello team",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg domain.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))

	rec = doJSON(t, router, http.MethodPost, "/v1/workspace/messages/"+msg.ID+"/reactions", admin, map[string]any{
		"emoji": "👍",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/workspace", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ws domain.Workspace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	require.Len(t, ws.Chat, 1)
	require.Equal(t, []string{"admin-1"}, ws.Chat[0].Reactions["👍"])

	// Deleting the channel removes its messages too.
	rec = doJSON(t, router, http.MethodDelete, "/v1/workspace/channels/"+ch.ID, admin, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/workspace", admin, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	require.Empty(t, ws.Channels)
	require.Empty(t, ws.Chat)
}
