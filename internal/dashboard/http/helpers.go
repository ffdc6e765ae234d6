package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
	"github.com/farmops/farmboard/pkg/slogx"
)

// actingUser converts the authenticated identity into the domain user every
// store mutation requires. The authn middleware guarantees it is present on
// /v1 routes.
func actingUser(r *http.Request) (domain.User, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		return domain.User{}, false
	}
	return domain.User{
		ID:   id.ID,
		Name: id.Name,
		Role: domain.Role(id.Role),
	}, true
}

// decodeJSON parses the request body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, dashsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return false
	}
	return true
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, dashsdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, dashsdk.ErrorResponse{
		Error:            "unauthorized",
		ErrorDescription: "Authentication required",
	})
}

// writeServiceError maps service errors onto the standard error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, dashsdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "The referenced entity does not exist",
		})
	case errors.Is(err, service.ErrBackupCodes):
		writeBadRequest(w, "Backup codes must be empty or exactly 8 unique codes")
	default:
		log.Error("store operation failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, dashsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "The operation could not be persisted",
		})
	}
}

// optStatus converts an optional string DTO field to an account status.
func optAccountStatus(s *string) *domain.AccountStatus {
	if s == nil {
		return nil
	}
	v := domain.AccountStatus(*s)
	return &v
}

func optResourceStatus(s *string) *domain.ResourceStatus {
	if s == nil {
		return nil
	}
	v := domain.ResourceStatus(*s)
	return &v
}

func optCampaignStatus(s *string) *domain.CampaignStatus {
	if s == nil {
		return nil
	}
	v := domain.CampaignStatus(*s)
	return &v
}

func optTaskStatus(s *string) *domain.TaskStatus {
	if s == nil {
		return nil
	}
	v := domain.TaskStatus(*s)
	return &v
}
