package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type TeamMember struct {
	deps    Deps
	Members *ListController[models.User, NoFilter]
	Teams   *Lookup[[]models.Team]
	// Add is the inline add-member form.
	Add    Feedback
	Member Modal[models.User]
}

func NewTeamMember(d Deps) *TeamMember {
	fetch := func(ctx context.Context, _ NoFilter) ([]models.User, error) {
		return d.Services.Users.List(ctx, nil)
	}
	return &TeamMember{
		deps:    d,
		Members: NewList(fetch, userID, NoFilter{}),
		Teams: NewLookup("teams", d.logger(), func(ctx context.Context) ([]models.Team, error) {
			return d.Services.Teams.List(ctx, nil)
		}),
	}
}

func (p *TeamMember) Load(ctx context.Context) error {
	return loadPage(ctx, p.Members.Refresh, p.Teams)
}

// NewMemberForm returns an empty add form dated today.
func (p *TeamMember) NewMemberForm() forms.NewMemberForm {
	return forms.NewNewMemberForm(p.deps.now())
}

// AddMember creates the user and re-fetches the member list.
func (p *TeamMember) AddMember(ctx context.Context, form forms.NewMemberForm) error {
	p.Add.Reset()
	if err := form.Validate(); err != nil {
		return p.Add.Fail(err, "")
	}
	if _, err := p.deps.Services.Users.Create(ctx, form.Payload()); err != nil {
		return p.Add.Fail(err, "Failed to add new user.")
	}
	p.Add.Succeed("New user added successfully!")
	return p.Members.Refresh(ctx)
}

// OpenMember shows a member, pre-filling the edit form when edit is set.
func (p *TeamMember) OpenMember(id string, edit bool) (forms.EditMemberForm, error) {
	rec, ok := p.Members.Find(id)
	if !ok {
		return forms.EditMemberForm{}, ErrNoRecord
	}
	if edit {
		p.Member.Edit(rec)
	} else {
		p.Member.Open(rec)
	}
	return forms.EditMemberFrom(rec), nil
}

func (p *TeamMember) SubmitEdit(ctx context.Context, form forms.EditMemberForm) error {
	sel, ok := p.Member.Selected()
	if !ok || !p.Member.Editing() {
		return ErrNoSelection
	}
	updated, err := p.deps.Services.Users.Update(ctx, sel.ID, form.Payload())
	if err != nil {
		return p.Member.Fail(err, "Failed to update user.")
	}
	p.Members.Patch(updated)
	p.Member.Succeed("User updated successfully!")
	settle(ctx, p.deps.SuccessDelay, p.Member.Close)
	return nil
}

// DeleteMember asks for confirmation, deletes the selected member and
// drops it from the list.
func (p *TeamMember) DeleteMember(ctx context.Context) error {
	sel, ok := p.Member.Selected()
	if !ok {
		return ErrNoSelection
	}
	name := sel.Name
	if name == "" {
		name = "this user"
	}
	prompt := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", name)
	if err := confirm(ctx, p.deps.Confirm, prompt); err != nil {
		return err
	}
	if err := p.deps.Services.Users.Delete(ctx, sel.ID); err != nil {
		return p.Member.Fail(err, "Failed to delete user.")
	}
	p.Members.Remove(sel.ID)
	p.Member.Succeed("User deleted successfully!")
	settle(ctx, p.deps.SuccessDelay, p.Member.Close)
	return nil
}
