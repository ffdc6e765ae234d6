package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// ExpensesHandler handles the expense ledger endpoints.
type ExpensesHandler struct {
	Expenses    *service.ExpensesService
	Projections *service.Projections
}

// HandleList handles GET /v1/expenses
//
//	@Summary		List expenses
//	@Description	The ledger is visible to every authenticated role.
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	domain.Expense
//	@Router			/v1/expenses [get].
func (h *ExpensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Projections.Expenses())
}

// HandleCreate handles POST /v1/expenses
//
//	@Summary		Record expense
//	@Description	Appends a ledger row. Metrics reflect it immediately.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.CreateExpenseRequest	true	"Expense fields"
//	@Success		201		{object}	domain.Expense
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/expenses [post].
func (h *ExpensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		writeBadRequest(w, "Expense amount must be positive")
		return
	}

	e := domain.Expense{
		Amount:    req.Amount,
		AccountID: req.AccountID,
		Category:  req.Category,
	}
	if req.Date != nil {
		e.Date = *req.Date
	}

	created, err := h.Expenses.Create(r.Context(), actor, e)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PATCH /v1/expenses/{id}
//
//	@Summary	Update expense
//	@Tags		Expenses
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string							true	"Expense id"
//	@Param		request	body	dashsdk.UpdateExpenseRequest	true	"Fields to change"
//	@Success	204
//	@Failure	400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/expenses/{id} [patch].
func (h *ExpensesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		writeBadRequest(w, "Expense amount must be positive")
		return
	}

	err := h.Expenses.Update(r.Context(), actor, r.PathValue("id"), service.ExpensePatch{
		Amount:    req.Amount,
		Date:      req.Date,
		AccountID: req.AccountID,
		Category:  req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/expenses/{id}
//
//	@Summary	Delete expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Expense id"
//	@Success	204
//	@Router		/v1/expenses/{id} [delete].
func (h *ExpensesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Expenses.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
