package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// CardsHandler handles the payment-card endpoints.
type CardsHandler struct {
	Cards       *service.CardsService
	Projections *service.Projections
}

// HandleList handles GET /v1/cards
//
//	@Summary	List cards
//	@Tags		Cards
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.Card
//	@Router		/v1/cards [get].
func (h *CardsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Projections.Cards())
}

// HandleCreate handles POST /v1/cards
//
//	@Summary	Create card
//	@Tags		Cards
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dashsdk.CreateCardRequest	true	"Card fields"
//	@Success	201		{object}	domain.Card
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/cards [post].
func (h *CardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.Cards.Create(r.Context(), actor, domain.Card{
		Name:   req.Name,
		Number: req.Number,
		Bank:   req.Bank,
		Status: domain.ResourceStatus(req.Status),
		Cost:   req.Cost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, card)
}

// HandleUpdate handles PATCH /v1/cards/{id}
//
//	@Summary	Update card
//	@Tags		Cards
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string						true	"Card id"
//	@Param		request	body	dashsdk.UpdateCardRequest	true	"Fields to change"
//	@Success	204
//	@Router		/v1/cards/{id} [patch].
func (h *CardsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Cards.Update(r.Context(), actor, r.PathValue("id"), service.CardPatch{
		Name:   req.Name,
		Number: req.Number,
		Bank:   req.Bank,
		Status: optResourceStatus(req.Status),
		Cost:   req.Cost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/cards/{id}
//
//	@Summary	Delete card
//	@Tags		Cards
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Card id"
//	@Success	204
//	@Router		/v1/cards/{id} [delete].
func (h *CardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Cards.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAssign handles POST /v1/cards/{id}/assign
//
//	@Summary		Assign card to account
//	@Description	Sets assignedTo/assignedBy/assignedAt as one unit and flips the status to assigned.
//	@Tags			Cards
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Card id"
//	@Param			request	body	dashsdk.AssignRequest	true	"Target account"
//	@Success		204
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/cards/{id}/assign [post].
func (h *CardsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.AssignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.AccountID == "" {
		writeBadRequest(w, "accountId is required")
		return
	}

	if err := h.Cards.Assign(r.Context(), actor, r.PathValue("id"), req.AccountID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnassign handles POST /v1/cards/{id}/unassign
//
//	@Summary		Unassign card
//	@Description	Clears the whole assignment triple and returns the card to active.
//	@Tags			Cards
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Card id"
//	@Success		204
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/cards/{id}/unassign [post].
func (h *CardsHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Cards.Unassign(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
