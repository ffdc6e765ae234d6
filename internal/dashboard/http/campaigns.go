package http

import (
	"net/http"
	"strings"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// CampaignsHandler handles the campaign endpoints.
type CampaignsHandler struct {
	Campaigns   *service.CampaignsService
	Projections *service.Projections
}

// HandleList handles GET /v1/campaigns
//
//	@Summary		List visible campaigns
//	@Description	Admins and leaders see all campaigns, launchers see their own, other roles see none.
//	@Tags			Campaigns
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	domain.Campaign
//	@Router			/v1/campaigns [get].
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.Projections.CampaignsFor(actor))
}

// HandleCreate handles POST /v1/campaigns
//
//	@Summary		Create campaign
//	@Description	Creates a campaign owned by the acting user. Metrics reflect it immediately.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.CreateCampaignRequest	true	"Campaign fields"
//	@Success		201		{object}	domain.Campaign
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/campaigns [post].
func (h *CampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateCampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeBadRequest(w, "Campaign name is required")
		return
	}

	c, err := h.Campaigns.Create(r.Context(), actor, domain.Campaign{
		Name:      req.Name,
		Budget:    req.Budget,
		Status:    domain.CampaignStatus(req.Status),
		AccountID: req.AccountID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleUpdate handles PATCH /v1/campaigns/{id}
//
//	@Summary	Update campaign
//	@Tags		Campaigns
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string							true	"Campaign id"
//	@Param		request	body	dashsdk.UpdateCampaignRequest	true	"Fields to change"
//	@Success	204
//	@Router		/v1/campaigns/{id} [patch].
func (h *CampaignsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateCampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Campaigns.Update(r.Context(), actor, r.PathValue("id"), service.CampaignPatch{
		Name:      req.Name,
		Budget:    req.Budget,
		Spent:     req.Spent,
		Status:    optCampaignStatus(req.Status),
		AccountID: req.AccountID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/campaigns/{id}
//
//	@Summary	Delete campaign
//	@Tags		Campaigns
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Campaign id"
//	@Success	204
//	@Router		/v1/campaigns/{id} [delete].
func (h *CampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Campaigns.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
