package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
)

// Salary manages payout records of executives and team leads.
type Salary struct {
	deps    Deps
	Payouts *ListController[models.Payout, NoFilter]
	Users   *Lookup[[]models.User]
	Editor  Modal[models.Payout]
	// Page carries errors of actions taken outside the editor.
	Page Feedback
}

func NewSalary(d Deps) *Salary {
	fetch := func(ctx context.Context, _ NoFilter) ([]models.Payout, error) {
		return d.Services.Payouts.List(ctx, nil)
	}
	return &Salary{
		deps:    d,
		Payouts: NewList(fetch, payoutID, NoFilter{}),
		Users: NewLookup("payees", d.logger(), func(ctx context.Context) ([]models.User, error) {
			return d.Services.Users.List(ctx, services.ByRole(models.RoleSalesExecutive, models.RoleTeamLead))
		}),
	}
}

func (p *Salary) Load(ctx context.Context) error {
	return loadPage(ctx, p.Payouts.Refresh, p.Users)
}

func (p *Salary) OpenAdd() forms.PayoutForm {
	p.Editor.OpenNew()
	return forms.NewPayoutForm(p.deps.now())
}

func (p *Salary) OpenEdit(id string) (forms.PayoutForm, error) {
	rec, ok := p.Payouts.Find(id)
	if !ok {
		return forms.PayoutForm{}, ErrNoRecord
	}
	p.Editor.Edit(rec)
	return forms.PayoutFrom(rec), nil
}

// Save creates or updates the payout depending on how the editor was
// opened, then re-fetches the list. The editor stays open with the
// success message.
func (p *Salary) Save(ctx context.Context, form forms.PayoutForm) error {
	if !p.Editor.IsOpen() {
		return ErrNoSelection
	}
	p.Editor.Reset()
	if err := form.Validate(); err != nil {
		return p.Editor.Fail(err, "")
	}
	msg := "Payout added successfully!"
	var err error
	if sel, ok := p.Editor.Selected(); ok && p.Editor.Editing() {
		_, err = p.deps.Services.Payouts.Update(ctx, sel.ID, form.Payload())
		msg = "Payout updated successfully!"
	} else {
		_, err = p.deps.Services.Payouts.Create(ctx, form.Payload())
	}
	if err != nil {
		return p.Editor.Fail(err, "Failed to save payout.")
	}
	p.Editor.Succeed(msg)
	_ = p.Payouts.Refresh(ctx)
	return nil
}

func (p *Salary) Delete(ctx context.Context, id string) error {
	if err := confirm(ctx, p.deps.Confirm, "Are you sure you want to delete this payout record? This action cannot be undone."); err != nil {
		return err
	}
	p.Page.Reset()
	if err := p.deps.Services.Payouts.Delete(ctx, id); err != nil {
		return p.Page.Fail(err, "Failed to delete payout.")
	}
	return p.Payouts.Refresh(ctx)
}
