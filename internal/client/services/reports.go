package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

type Reports struct {
	api Sender
	log logging.Logger
}

func NewReports(s Sender, log logging.Logger) *Reports {
	if log == nil {
		log = logging.Nop()
	}
	return &Reports{api: s, log: log.With("resource", "/reports")}
}

func (r *Reports) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	return fetch[models.DashboardSummary](ctx, r.api, r.log, http.MethodGet, "/reports/dashboard-summary", nil, nil, "summary")
}

// Performance returns per-member figures for period ("day" or "month"),
// optionally narrowed to one team lead.
func (r *Reports) Performance(ctx context.Context, period, teamLeadID string) ([]models.PerformanceRow, error) {
	params := Params(map[string]string{"period": period, "teamLeadId": teamLeadID})
	return fetch[[]models.PerformanceRow](ctx, r.api, r.log, http.MethodGet, "/reports/performance", nil, params, "report")
}

func (r *Reports) ManagerCalls(ctx context.Context, filters url.Values) ([]models.CallLog, error) {
	return fetch[[]models.CallLog](ctx, r.api, r.log, http.MethodGet, "/reports/manager-calls", nil, filters, "calls")
}

func (r *Reports) ActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	return fetch[[]models.ActivityLog](ctx, r.api, r.log, http.MethodGet, "/reports/activity-logs", nil, nil, "logs")
}
