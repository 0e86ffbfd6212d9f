package pages

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

type MyProfile struct {
	deps    Deps
	Me      *Lookup[models.User]
	editing bool
	Feedback
}

func NewMyProfile(d Deps) *MyProfile {
	return &MyProfile{deps: d, Me: NewLookup("profile", d.logger(), d.Services.Users.Me)}
}

func (p *MyProfile) Load(ctx context.Context) error {
	return p.Me.Load(ctx)
}

func (p *MyProfile) Editing() bool { return p.editing }

// StartEdit switches to edit mode and returns the pre-filled form.
func (p *MyProfile) StartEdit() forms.ProfileForm {
	p.Reset()
	p.editing = true
	return forms.ProfileFrom(p.Me.Value())
}

func (p *MyProfile) CancelEdit() {
	p.editing = false
	p.Reset()
}

func (p *MyProfile) Save(ctx context.Context, form forms.ProfileForm) error {
	p.Reset()
	updated, err := p.deps.Services.Users.UpdateMe(ctx, form.Payload())
	if err != nil {
		return p.Fail(err, "Failed to update profile.")
	}
	p.Me.Set(updated)
	p.editing = false
	p.Succeed("Profile updated successfully!")
	return nil
}
