package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/httpx"
)

// RefreshHandler exposes the orchestrated full-store refresh.
type RefreshHandler struct {
	RefreshService *service.RefreshService
	Projections    *service.Projections
}

// HandleRefresh handles POST /v1/refresh
//
//	@Summary		Refresh all projections
//	@Description	Reloads every collection from the store, seeds a default workspace if
//	@Description	absent and replaces every in-memory projection.
//	@Tags			Refresh
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	service.LoadingFlags	"per-collection loading flags, all false"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/refresh [post].
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.RefreshService.RefreshAll(r.Context(), actor); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.Projections.Loading())
}
