package pages

import (
	"context"
	"net/url"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// Deps is what every page controller is built from.
type Deps struct {
	Services *services.Set
	Confirm  Confirmer
	Log      logging.Logger
	// SuccessDelay is how long a success message stays before its modal
	// closes.
	SuccessDelay time.Duration
	Now          func() time.Time
}

func (d Deps) logger() logging.Logger {
	if d.Log == nil {
		return logging.Nop()
	}
	return d.Log
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// NoFilter is the filter type of lists that are always fetched whole.
type NoFilter struct{}

// MonthTeamFilter narrows sales and prospects to a month (YYYY-MM) and a
// team lead.
type MonthTeamFilter struct {
	Month      string
	TeamLeadID string
}

func (f MonthTeamFilter) Params() url.Values {
	return services.Params(map[string]string{"month": f.Month, "teamLeadId": f.TeamLeadID})
}

func userID(u models.User) string         { return u.ID }
func prospectID(p models.Prospect) string { return p.ID }
func saleID(s models.Sale) string         { return s.ID }
func teamID(t models.Team) string         { return t.ID }
func payoutID(p models.Payout) string     { return p.ID }
func callID(c models.CallLog) string      { return c.ID }

func teamLeads(d Deps) *Lookup[[]models.User] {
	return NewLookup("team leads", d.logger(), func(ctx context.Context) ([]models.User, error) {
		return d.Services.Users.List(ctx, services.ByRole(models.RoleTeamLead))
	})
}

func allUsers(d Deps) *Lookup[[]models.User] {
	return NewLookup("users", d.logger(), func(ctx context.Context) ([]models.User, error) {
		return d.Services.Users.List(ctx, nil)
	})
}

func summary(d Deps) *Lookup[models.DashboardSummary] {
	return NewLookup("summary", d.logger(), d.Services.Reports.DashboardSummary)
}
