package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type Dashboard struct {
	Summary *Lookup[models.DashboardSummary]
}

func NewDashboard(d Deps) *Dashboard {
	return &Dashboard{Summary: summary(d)}
}

func (p *Dashboard) Load(ctx context.Context) error {
	return p.Summary.Load(ctx)
}
