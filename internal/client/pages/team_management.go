package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type TeamManagement struct {
	deps   Deps
	Teams  *ListController[models.Team, NoFilter]
	Users  *Lookup[[]models.User]
	Editor Modal[models.Team]
	Page   Feedback
}

func NewTeamManagement(d Deps) *TeamManagement {
	fetch := func(ctx context.Context, _ NoFilter) ([]models.Team, error) {
		return d.Services.Teams.List(ctx, nil)
	}
	return &TeamManagement{
		deps:  d,
		Teams: NewList(fetch, teamID, NoFilter{}),
		Users: allUsers(d),
	}
}

func (p *TeamManagement) Load(ctx context.Context) error {
	return loadPage(ctx, p.Teams.Refresh, p.Users)
}

func (p *TeamManagement) OpenAdd() forms.TeamForm {
	p.Editor.OpenNew()
	return forms.TeamForm{}
}

func (p *TeamManagement) OpenEdit(id string) (forms.TeamForm, error) {
	rec, ok := p.Teams.Find(id)
	if !ok {
		return forms.TeamForm{}, ErrNoRecord
	}
	p.Editor.Edit(rec)
	return forms.TeamFrom(rec), nil
}

// Save creates the team or applies name, lead and membership changes to
// the selected one, then re-fetches.
func (p *TeamManagement) Save(ctx context.Context, form forms.TeamForm) error {
	if !p.Editor.IsOpen() {
		return ErrNoSelection
	}
	p.Editor.Reset()
	if err := form.Validate(); err != nil {
		return p.Editor.Fail(err, "")
	}
	msg := "Team added successfully!"
	var err error
	if sel, ok := p.Editor.Selected(); ok && p.Editor.Editing() {
		_, err = p.deps.Services.Teams.Update(ctx, sel.ID, form.Payload())
		msg = "Team updated successfully!"
	} else {
		_, err = p.deps.Services.Teams.Create(ctx, form.Payload())
	}
	if err != nil {
		return p.Editor.Fail(err, "Failed to save team.")
	}
	p.Editor.Succeed(msg)
	_ = p.Teams.Refresh(ctx)
	return nil
}

func (p *TeamManagement) Delete(ctx context.Context, id string) error {
	if err := confirm(ctx, p.deps.Confirm, "Are you sure you want to delete this team? This will also unassign its Team Lead and Sales Executives."); err != nil {
		return err
	}
	p.Page.Reset()
	if err := p.deps.Services.Teams.Delete(ctx, id); err != nil {
		return p.Page.Fail(err, "Failed to delete team.")
	}
	return p.Teams.Refresh(ctx)
}
