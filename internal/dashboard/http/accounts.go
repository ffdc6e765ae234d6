package http

import (
	"net/http"
	"strings"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// AccountsHandler handles the farming-account endpoints.
type AccountsHandler struct {
	Accounts    *service.AccountsService
	Projections *service.Projections
}

// HandleList handles GET /v1/accounts
//
//	@Summary		List visible accounts
//	@Description	Returns the accounts visible to the acting user's role: admins and leaders
//	@Description	see all, farmers see their own, other roles see none.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	domain.Account
//	@Router			/v1/accounts [get].
func (h *AccountsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.Projections.AccountsFor(actor))
}

// HandleCreate handles POST /v1/accounts
//
//	@Summary		Create account
//	@Description	Creates a farming account. The audit trail is seeded with the initial status.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.CreateAccountRequest	true	"Account fields"
//	@Success		201		{object}	domain.Account
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts [post].
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeBadRequest(w, "Account name is required")
		return
	}

	acc, err := h.Accounts.Create(r.Context(), actor, domain.Account{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Platform:      req.Platform,
		Status:        domain.AccountStatus(req.Status),
		FarmerID:      req.FarmerID,
		Priority:      req.Priority,
		Tags:          req.Tags,
		TwoFactorCode: req.TwoFactorCode,
		BackupCodes:   req.BackupCodes,
		CookieData:    req.CookieData,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, acc)
}

// HandleUpdate handles PATCH /v1/accounts/{id}
//
//	@Summary		Update account
//	@Description	Partial update. A status change appends exactly one audit trail entry;
//	@Description	updating an absent id is a no-op.
//	@Tags			Accounts
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string							true	"Account id"
//	@Param			request	body	dashsdk.UpdateAccountRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts/{id} [patch].
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Accounts.Update(r.Context(), actor, r.PathValue("id"), service.AccountPatch{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Platform:      req.Platform,
		Status:        optAccountStatus(req.Status),
		FarmerID:      req.FarmerID,
		Priority:      req.Priority,
		Tags:          req.Tags,
		TwoFactorCode: req.TwoFactorCode,
		CookieData:    req.CookieData,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/accounts/{id}
//
//	@Summary		Delete account
//	@Description	Removes the account. Idempotent: a second delete of the same id succeeds.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Account id"
//	@Success		204
//	@Router			/v1/accounts/{id} [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Accounts.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddComment handles POST /v1/accounts/{id}/comments
//
//	@Summary		Comment on account
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Account id"
//	@Param			request	body		dashsdk.AddCommentRequest	true	"Comment text"
//	@Success		201		{object}	domain.Comment
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts/{id}/comments [post].
func (h *AccountsHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.AddCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeBadRequest(w, "Comment text is required")
		return
	}

	comment, err := h.Accounts.AddComment(r.Context(), actor, r.PathValue("id"), req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, comment)
}

// HandleBackupCodes handles PUT /v1/accounts/{id}/backup-codes
//
//	@Summary		Replace backup codes
//	@Description	Sets the account's backup codes: either empty or exactly 8 unique codes,
//	@Description	normalized to lowercase.
//	@Tags			Accounts
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Account id"
//	@Param			request	body	dashsdk.BackupCodesRequest	true	"Backup codes"
//	@Success		204
//	@Failure		400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts/{id}/backup-codes [put].
func (h *AccountsHandler) HandleBackupCodes(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.BackupCodesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Accounts.Update(r.Context(), actor, r.PathValue("id"), service.AccountPatch{
		BackupCodes: &req.Codes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
