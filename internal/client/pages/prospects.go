package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type TotalProspect struct {
	deps      Deps
	List      *ListController[models.Prospect, MonthTeamFilter]
	TeamLeads *Lookup[[]models.User]
	Update    Modal[models.Prospect]
}

func NewTotalProspect(d Deps) *TotalProspect {
	fetch := func(ctx context.Context, f MonthTeamFilter) ([]models.Prospect, error) {
		return d.Services.Prospects.List(ctx, f.Params())
	}
	return &TotalProspect{
		deps:      d,
		List:      NewList(fetch, prospectID, MonthTeamFilter{}),
		TeamLeads: teamLeads(d),
	}
}

func (p *TotalProspect) Load(ctx context.Context) error {
	return loadPage(ctx, p.List.Refresh, p.TeamLeads)
}

// OpenUpdate selects the prospect and returns its pre-filled form.
func (p *TotalProspect) OpenUpdate(id string) (forms.ProspectUpdateForm, error) {
	rec, ok := p.List.Find(id)
	if !ok {
		return forms.ProspectUpdateForm{}, ErrNoRecord
	}
	p.Update.Edit(rec)
	return forms.ProspectUpdateFrom(rec), nil
}

// SubmitUpdate saves the modal, patches the row in place and closes.
func (p *TotalProspect) SubmitUpdate(ctx context.Context, form forms.ProspectUpdateForm) error {
	sel, ok := p.Update.Selected()
	if !ok {
		return ErrNoSelection
	}
	if err := form.Validate(); err != nil {
		return p.Update.Fail(err, "")
	}
	updated, err := p.deps.Services.Prospects.Update(ctx, sel.ID, form.Payload())
	if err != nil {
		return p.Update.Fail(err, "Failed to update prospect.")
	}
	p.List.Patch(updated)
	p.Update.Close()
	return nil
}
