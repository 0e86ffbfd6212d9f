package forms

import (
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
)

type LoginForm struct {
	Email    string
	Password string
}

func LoginFields() []Field[LoginForm] {
	return []Field[LoginForm]{
		text("Email", "email", func(f *LoginForm) *string { return &f.Email }),
		text("Password", "password", func(f *LoginForm) *string { return &f.Password }),
	}
}

func (f *LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return invalid("Please enter email and password.")
	}
	return nil
}

type SignupForm struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Role            string
}

func NewSignupForm() SignupForm {
	return SignupForm{Role: string(models.RoleManager)}
}

func SignupFields() []Field[SignupForm] {
	return []Field[SignupForm]{
		text("Name", "name", func(f *SignupForm) *string { return &f.Name }),
		text("Email", "email", func(f *SignupForm) *string { return &f.Email }),
		text("Password", "password", func(f *SignupForm) *string { return &f.Password }),
		text("Confirm Password", "passwordConfirm", func(f *SignupForm) *string { return &f.PasswordConfirm }),
		text("Role", "role", func(f *SignupForm) *string { return &f.Role },
			string(models.RoleManager), string(models.RoleTeamLead), string(models.RoleSalesExecutive)),
	}
}

func (f *SignupForm) Validate() error {
	if f.Password != f.PasswordConfirm {
		return session.ErrPasswordMismatch
	}
	if f.Name == "" || f.Email == "" || f.Password == "" {
		return invalid("Please fill in name, email and password.")
	}
	return nil
}

func (f *SignupForm) Payload() services.SignupRequest {
	return services.SignupRequest{
		Name:            f.Name,
		Email:           f.Email,
		Password:        f.Password,
		PasswordConfirm: f.PasswordConfirm,
		Role:            models.Role(f.Role),
	}
}
