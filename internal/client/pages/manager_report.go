package pages

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
)

type CallFilter struct {
	Month       string
	TeamLeadID  string
	ExecutiveID string
	CompanyName string
	ContactNo   string
}

func (f CallFilter) Params() url.Values {
	return services.Params(map[string]string{
		"month":       f.Month,
		"teamLeadId":  f.TeamLeadID,
		"executiveId": f.ExecutiveID,
		"companyName": f.CompanyName,
		"contactNo":   f.ContactNo,
	})
}

// ManagerReport shows KPIs, the filtered call log and recent activity.
// Activity logs are best effort: when they fail the page just shows none.
type ManagerReport struct {
	deps       Deps
	Summary    *Lookup[models.DashboardSummary]
	TeamLeads  *Lookup[[]models.User]
	Executives *Lookup[[]models.User]
	Activity   *Lookup[[]models.ActivityLog]
	Calls      *ListController[models.CallLog, CallFilter]
	Call       Modal[models.CallLog]
}

func NewManagerReport(d Deps) *ManagerReport {
	fetch := func(ctx context.Context, f CallFilter) ([]models.CallLog, error) {
		return d.Services.Reports.ManagerCalls(ctx, f.Params())
	}
	return &ManagerReport{
		deps:      d,
		Summary:   summary(d),
		TeamLeads: teamLeads(d),
		Executives: NewLookup("executives", d.logger(), func(ctx context.Context) ([]models.User, error) {
			return d.Services.Users.List(ctx, services.ByRole(models.RoleSalesExecutive))
		}),
		Activity: NewLookup("activity logs", d.logger(), d.Services.Reports.ActivityLogs),
		Calls:    NewList(fetch, callID, CallFilter{}),
	}
}

func (p *ManagerReport) Load(ctx context.Context) error {
	return loadPage(ctx, p.Calls.Refresh, p.Summary, p.TeamLeads, p.Executives, p.Activity)
}

func (p *ManagerReport) OpenCall(id string) (forms.CallLogForm, error) {
	rec, ok := p.Calls.Find(id)
	if !ok {
		return forms.CallLogForm{}, ErrNoRecord
	}
	p.Call.Edit(rec)
	return forms.CallLogFrom(rec), nil
}

// SubmitCall saves the call update, patches the row and closes the modal
// after the success delay.
func (p *ManagerReport) SubmitCall(ctx context.Context, form forms.CallLogForm) error {
	sel, ok := p.Call.Selected()
	if !ok {
		return ErrNoSelection
	}
	if err := form.Validate(); err != nil {
		return p.Call.Fail(err, "")
	}
	updated, err := p.deps.Services.CallLogs.Update(ctx, sel.ID, form.Payload())
	if err != nil {
		return p.Call.Fail(err, "Failed to update call log.")
	}
	p.Calls.Patch(updated)
	p.Call.Succeed("Call log updated successfully!")
	settle(ctx, p.deps.SuccessDelay, p.Call.Close)
	return nil
}

// DeleteClientProfile marks the selected call's client as deleted. The
// backend updates the linked prospect.
func (p *ManagerReport) DeleteClientProfile(ctx context.Context) error {
	sel, ok := p.Call.Selected()
	if !ok {
		return ErrNoSelection
	}
	prompt := "Are you sure you want to mark this client's profile as deleted? This will update the associated prospect."
	if err := confirm(ctx, p.deps.Confirm, prompt); err != nil {
		return err
	}
	patch := map[string]string{"activity": models.ActivityDeleteProfile}
	if _, err := p.deps.Services.CallLogs.Update(ctx, sel.ID, patch); err != nil {
		return p.Call.Fail(err, "Failed to mark client's profile as deleted.")
	}
	sel.Activity = models.ActivityDeleteProfile
	p.Calls.Patch(sel)
	p.Call.Succeed("Client's profile marked as deleted!")
	settle(ctx, p.deps.SuccessDelay, p.Call.Close)
	return nil
}
