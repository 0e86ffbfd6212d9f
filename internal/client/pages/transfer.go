package pages

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
)

// TransferData moves records between members and hands sales to finance.
type TransferData struct {
	deps            Deps
	Users           *Lookup[[]models.User]
	InternalHistory *Lookup[[]models.TransferLog]
	FinanceHistory  *Lookup[[]models.TransferLog]
	// Available are the sales not yet sent to finance.
	Available *Lookup[[]models.Sale]

	Internal Feedback
	Finance  Feedback
	selected []string
}

func NewTransferData(d Deps) *TransferData {
	return &TransferData{
		deps:            d,
		Users:           allUsers(d),
		InternalHistory: NewLookup("internal history", d.logger(), d.Services.Transfers.InternalHistory),
		FinanceHistory:  NewLookup("finance history", d.logger(), d.Services.Transfers.FinanceHistory),
		Available: NewLookup("available sales", d.logger(), func(ctx context.Context) ([]models.Sale, error) {
			all, err := d.Services.Sales.List(ctx, nil)
			if err != nil {
				return nil, err
			}
			out := make([]models.Sale, 0, len(all))
			for _, s := range all {
				if !s.IsTransferredToFinance {
					out = append(out, s)
				}
			}
			return out, nil
		}),
	}
}

// Load fetches everything the page shows; the first failure is the page
// error.
func (p *TransferData) Load(ctx context.Context) error {
	return loadAll(ctx, p.Users, p.InternalHistory, p.FinanceHistory, p.Available)
}

// InternalTransfer moves the first Count records of the source member to
// the target and refreshes the internal history.
func (p *TransferData) InternalTransfer(ctx context.Context, form forms.InternalTransferForm) error {
	p.Internal.Reset()
	if err := form.Validate(); err != nil {
		return p.Internal.Fail(err, "")
	}
	n := form.N()
	owner := url.Values{"salesExecutive": {form.SourceUserID}}

	var ids []string
	switch models.DataType(form.DataType) {
	case models.DataProspects:
		recs, err := p.deps.Services.Prospects.List(ctx, owner)
		if err != nil {
			return p.Internal.Fail(err, "Internal data transfer failed.")
		}
		for _, r := range recs[:min(n, len(recs))] {
			ids = append(ids, r.ID)
		}
	case models.DataSales:
		recs, err := p.deps.Services.Sales.List(ctx, owner)
		if err != nil {
			return p.Internal.Fail(err, "Internal data transfer failed.")
		}
		for _, r := range recs[:min(n, len(recs))] {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		msg := fmt.Sprintf("No %s found for the source member to transfer, or less than specified count.", form.DataType)
		return p.Internal.Fail(&forms.ValidationError{Message: msg}, msg)
	}

	err := p.deps.Services.Transfers.Internal(ctx, services.InternalTransfer{
		SourceUserID: form.SourceUserID,
		TargetUserID: form.TargetUserID,
		DataIDs:      ids,
		DataType:     models.DataType(form.DataType),
	})
	if err != nil {
		return p.Internal.Fail(err, "Internal data transfer failed.")
	}
	p.Internal.Succeed(fmt.Sprintf("%d %s transferred successfully!", len(ids), form.DataType))
	_ = p.InternalHistory.Load(ctx)
	return nil
}

// ToggleSale adds or removes a sale from the finance selection.
func (p *TransferData) ToggleSale(id string) {
	for i, s := range p.selected {
		if s == id {
			p.selected = append(p.selected[:i:i], p.selected[i+1:]...)
			return
		}
	}
	p.selected = append(p.selected, id)
}

func (p *TransferData) Selected() []string {
	return append([]string(nil), p.selected...)
}

func (p *TransferData) TransferToFinance(ctx context.Context) error {
	p.Finance.Reset()
	if len(p.selected) == 0 {
		msg := "Please select at least one sale to transfer to finance."
		return p.Finance.Fail(&forms.ValidationError{Message: msg}, msg)
	}
	if err := p.deps.Services.Transfers.ToFinance(ctx, p.selected); err != nil {
		return p.Finance.Fail(err, "Transfer to Finance failed.")
	}
	p.Finance.Succeed(fmt.Sprintf("%d sale(s) successfully transferred to Finance!", len(p.selected)))
	p.selected = nil
	_ = loadAll(ctx, p.Available, p.FinanceHistory)
	return nil
}
