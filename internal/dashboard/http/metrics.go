package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/httpx"
)

// MetricsHandler serves the derived dashboard aggregates.
type MetricsHandler struct {
	Projections *service.Projections
}

// HandleGet handles GET /v1/metrics
//
//	@Summary		Dashboard metrics
//	@Description	Returns revenue, expenses, profit and ROI derived from the campaigns
//	@Description	visible to the acting user and the full expense ledger.
//	@Tags			Metrics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Metrics
//	@Router			/v1/metrics [get].
func (h *MetricsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.Projections.MetricsFor(actor))
}
