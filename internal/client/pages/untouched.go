package pages

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/importer"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
)

type UntouchedFilter struct {
	MemberID string
	Date     string
}

func (f UntouchedFilter) Params() url.Values {
	return services.Params(map[string]string{"memberId": f.MemberID, "date": f.Date})
}

// UntouchedData lists prospects nobody has worked on, lets the manager
// reassign one at a time and imports new ones from a spreadsheet.
type UntouchedData struct {
	deps     Deps
	KPIs     *Lookup[models.DashboardSummary]
	Members  *Lookup[[]models.User]
	List     *ListController[models.Prospect, UntouchedFilter]
	Transfer Modal[models.Prospect]
}

func NewUntouchedData(d Deps) *UntouchedData {
	fetch := func(ctx context.Context, f UntouchedFilter) ([]models.Prospect, error) {
		return d.Services.Prospects.Untouched(ctx, f.Params())
	}
	return &UntouchedData{
		deps:    d,
		KPIs:    summary(d),
		Members: allUsers(d),
		List:    NewList(fetch, prospectID, UntouchedFilter{}),
	}
}

func (p *UntouchedData) Load(ctx context.Context) error {
	return loadPage(ctx, p.List.Refresh, p.KPIs, p.Members)
}

func (p *UntouchedData) OpenTransfer(id string) error {
	rec, ok := p.List.Find(id)
	if !ok {
		return ErrNoRecord
	}
	p.Transfer.Edit(rec)
	return nil
}

// SubmitTransfer hands the selected prospect to targetID and drops it from
// the list.
func (p *UntouchedData) SubmitTransfer(ctx context.Context, targetID string) error {
	sel, ok := p.Transfer.Selected()
	if !ok {
		return ErrNoSelection
	}
	p.Transfer.Reset()
	if targetID == "" {
		msg := "Please select an executive to transfer to."
		return p.Transfer.Fail(&forms.ValidationError{Message: msg}, msg)
	}
	if models.RefID(sel.SalesExecutive) == targetID {
		msg := "Prospect is already assigned to the target executive."
		return p.Transfer.Fail(&forms.ValidationError{Message: msg}, msg)
	}
	err := p.deps.Services.Transfers.Internal(ctx, services.InternalTransfer{
		SourceUserID: models.RefID(sel.SalesExecutive),
		TargetUserID: targetID,
		DataIDs:      []string{sel.ID},
		DataType:     models.DataProspects,
	})
	if err != nil {
		return p.Transfer.Fail(err, "Failed to transfer prospect.")
	}
	p.List.Remove(sel.ID)
	p.Transfer.Succeed("Prospect transferred successfully!")
	p.Transfer.Close()
	return nil
}

// ImportReport summarises one spreadsheet import.
type ImportReport struct {
	Created int
	Failed  []importer.RowError
}

// Import reads the file and creates its prospects one by one. Rows the
// backend rejects are reported with its message; the list and KPIs are
// reloaded afterwards.
func (p *UntouchedData) Import(ctx context.Context, path string) (ImportReport, error) {
	res, err := importer.ReadFile(path)
	if err != nil {
		return ImportReport{}, err
	}
	rep := ImportReport{Failed: res.Errors}
	for i, form := range res.Prospects {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if _, err := p.deps.Services.Prospects.Create(ctx, form.Payload()); err != nil {
			rep.Failed = append(rep.Failed, importer.RowError{Row: res.Rows[i], Message: api.Message(err, "create failed")})
			continue
		}
		rep.Created++
	}
	p.deps.logger().Info(ctx, "prospects imported", "file", path, "created", rep.Created, "failed", len(rep.Failed))
	return rep, loadPage(ctx, p.List.Refresh, p.KPIs)
}
