package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// ProxiesHandler handles the proxy endpoints. Same shape as CardsHandler.
type ProxiesHandler struct {
	Proxies     *service.ProxiesService
	Projections *service.Projections
}

// HandleList handles GET /v1/proxies
//
//	@Summary	List proxies
//	@Tags		Proxies
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.Proxy
//	@Router		/v1/proxies [get].
func (h *ProxiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Projections.Proxies())
}

// HandleCreate handles POST /v1/proxies
//
//	@Summary	Create proxy
//	@Tags		Proxies
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dashsdk.CreateProxyRequest	true	"Proxy fields"
//	@Success	201		{object}	domain.Proxy
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/proxies [post].
func (h *ProxiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateProxyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Host == "" || req.Port == 0 {
		writeBadRequest(w, "Proxy host and port are required")
		return
	}

	proxy, err := h.Proxies.Create(r.Context(), actor, domain.Proxy{
		Host:     req.Host,
		Port:     req.Port,
		Protocol: req.Protocol,
		Country:  req.Country,
		Username: req.Username,
		Password: req.Password,
		Status:   domain.ResourceStatus(req.Status),
		Cost:     req.Cost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, proxy)
}

// HandleUpdate handles PATCH /v1/proxies/{id}
//
//	@Summary	Update proxy
//	@Tags		Proxies
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string						true	"Proxy id"
//	@Param		request	body	dashsdk.UpdateProxyRequest	true	"Fields to change"
//	@Success	204
//	@Router		/v1/proxies/{id} [patch].
func (h *ProxiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateProxyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Proxies.Update(r.Context(), actor, r.PathValue("id"), service.ProxyPatch{
		Host:     req.Host,
		Port:     req.Port,
		Protocol: req.Protocol,
		Country:  req.Country,
		Username: req.Username,
		Password: req.Password,
		Status:   optResourceStatus(req.Status),
		Cost:     req.Cost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/proxies/{id}
//
//	@Summary	Delete proxy
//	@Tags		Proxies
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Proxy id"
//	@Success	204
//	@Router		/v1/proxies/{id} [delete].
func (h *ProxiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Proxies.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAssign handles POST /v1/proxies/{id}/assign
//
//	@Summary	Assign proxy to account
//	@Tags		Proxies
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string					true	"Proxy id"
//	@Param		request	body	dashsdk.AssignRequest	true	"Target account"
//	@Success	204
//	@Failure	404	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/proxies/{id}/assign [post].
func (h *ProxiesHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Proxies.Assign(r.Context(), actor, r.PathValue("id"), req.AccountID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnassign handles POST /v1/proxies/{id}/unassign
//
//	@Summary	Unassign proxy
//	@Tags		Proxies
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Proxy id"
//	@Success	204
//	@Failure	404	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/proxies/{id}/unassign [post].
func (h *ProxiesHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Proxies.Unassign(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
