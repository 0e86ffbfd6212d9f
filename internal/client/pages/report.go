package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

const (
	PeriodDay   = "day"
	PeriodMonth = "month"
)

type ReportFilter struct {
	Period     string
	TeamLeadID string
}

type Report struct {
	List      *ListController[models.PerformanceRow, ReportFilter]
	TeamLeads *Lookup[[]models.User]
}

func NewReport(d Deps) *Report {
	fetch := func(ctx context.Context, f ReportFilter) ([]models.PerformanceRow, error) {
		return d.Services.Reports.Performance(ctx, f.Period, f.TeamLeadID)
	}
	rowName := func(r models.PerformanceRow) string { return r.Name }
	return &Report{
		List:      NewList(fetch, rowName, ReportFilter{Period: PeriodDay}),
		TeamLeads: teamLeads(d),
	}
}

func (p *Report) Load(ctx context.Context) error {
	return loadPage(ctx, p.List.Refresh, p.TeamLeads)
}
