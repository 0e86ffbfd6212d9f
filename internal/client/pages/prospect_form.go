package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/router"
)

type ProspectForm struct {
	deps Deps
	Feedback
}

func NewProspectForm(d Deps) *ProspectForm {
	return &ProspectForm{deps: d}
}

// Submit creates the prospect. On success it returns the path to go to
// once the success message has been shown.
func (p *ProspectForm) Submit(ctx context.Context, form forms.ProspectForm) (string, error) {
	p.Reset()
	if err := form.Validate(); err != nil {
		return "", p.Fail(err, "")
	}
	if _, err := p.deps.Services.Prospects.Create(ctx, form.Payload()); err != nil {
		return "", p.Fail(err, "Failed to add prospect. Please try again.")
	}
	p.Succeed("Prospect added successfully! Redirecting...")
	settle(ctx, p.deps.SuccessDelay, func() {})
	return router.PathTotalProspect, nil
}
