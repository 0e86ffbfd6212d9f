package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type TotalSales struct {
	List      *ListController[models.Sale, MonthTeamFilter]
	TeamLeads *Lookup[[]models.User]
}

func NewTotalSales(d Deps) *TotalSales {
	fetch := func(ctx context.Context, f MonthTeamFilter) ([]models.Sale, error) {
		return d.Services.Sales.List(ctx, f.Params())
	}
	return &TotalSales{
		List:      NewList(fetch, saleID, MonthTeamFilter{}),
		TeamLeads: teamLeads(d),
	}
}

func (p *TotalSales) Load(ctx context.Context) error {
	return loadPage(ctx, p.List.Refresh, p.TeamLeads)
}
