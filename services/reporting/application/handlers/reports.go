package handlers

import (
	"net/http"

	"github.com/ghuser/posledger/pkg/errhttp"
	"github.com/ghuser/posledger/pkg/httpx"
	appsvcs "github.com/ghuser/posledger/services/reporting/application/services"
)

// GetDashboardHandler handles GET /reports/dashboard requests.
type GetDashboardHandler struct {
	svc *appsvcs.Services
}

// NewGetDashboardHandler returns a GetDashboardHandler backed by the given services.
func NewGetDashboardHandler(svc *appsvcs.Services) *GetDashboardHandler {
	return &GetDashboardHandler{svc: svc}
}

// Execute returns the landing-page metrics.
//
//	@Summary	Dashboard report
//	@Tags		reports
//	@Produce	json
//	@Success	200	{object}	models.DashboardReport
//	@Router		/reports/dashboard [get]
func (h *GetDashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Reporting.Dashboard(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

// GetItemReportHandler handles GET /reports/items requests.
type GetItemReportHandler struct {
	svc *appsvcs.Services
}

// NewGetItemReportHandler returns a GetItemReportHandler backed by the given services.
func NewGetItemReportHandler(svc *appsvcs.Services) *GetItemReportHandler {
	return &GetItemReportHandler{svc: svc}
}

// Execute returns the catalog aggregates.
//
//	@Summary	Item report
//	@Tags		reports
//	@Produce	json
//	@Success	200	{object}	models.ItemReport
//	@Router		/reports/items [get]
func (h *GetItemReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Reporting.Items(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}
