package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

type Prospects struct {
	*Resource[models.Prospect]
}

func NewProspects(s Sender, log logging.Logger) *Prospects {
	return &Prospects{NewResource[models.Prospect](s, log, "/prospects", "prospect", "prospects")}
}

// Untouched lists prospects nobody has worked on yet.
func (p *Prospects) Untouched(ctx context.Context, filters url.Values) ([]models.Prospect, error) {
	return fetch[[]models.Prospect](ctx, p.api, p.log, http.MethodGet, p.path+"/untouched", nil, filters, p.many)
}

type Sales struct {
	*Resource[models.Sale]
}

func NewSales(s Sender, log logging.Logger) *Sales {
	return &Sales{NewResource[models.Sale](s, log, "/sales", "sale", "sales")}
}

type Users struct {
	*Resource[models.User]
}

func NewUsers(s Sender, log logging.Logger) *Users {
	return &Users{NewResource[models.User](s, log, "/users", "user", "users")}
}

// Me returns the signed-in user's own record.
func (u *Users) Me(ctx context.Context) (models.User, error) {
	return fetch[models.User](ctx, u.api, u.log, http.MethodGet, u.path+"/me", nil, nil, u.one)
}

func (u *Users) UpdateMe(ctx context.Context, patch any) (models.User, error) {
	return fetch[models.User](ctx, u.api, u.log, http.MethodPatch, u.path+"/updateMe", patch, nil, u.one)
}

// ByRole filters users by one or more roles. Several roles are sent as
// role[$in][], the shape the backend's query parser turns into $in.
func ByRole(roles ...models.Role) url.Values {
	out := url.Values{}
	switch len(roles) {
	case 0:
	case 1:
		out.Set("role", string(roles[0]))
	default:
		for _, r := range roles {
			out.Add("role[$in][]", string(r))
		}
	}
	return out
}

type Teams struct {
	*Resource[models.Team]
}

func NewTeams(s Sender, log logging.Logger) *Teams {
	return &Teams{NewResource[models.Team](s, log, "/teams", "team", "teams")}
}

// Payouts is the salary resource.
type Payouts struct {
	*Resource[models.Payout]
}

func NewPayouts(s Sender, log logging.Logger) *Payouts {
	return &Payouts{NewResource[models.Payout](s, log, "/salary", "payout", "payouts")}
}

type CallLogs struct {
	*Resource[models.CallLog]
}

func NewCallLogs(s Sender, log logging.Logger) *CallLogs {
	return &CallLogs{NewResource[models.CallLog](s, log, "/call-logs", "callLog", "callLogs")}
}
