package forms

import (
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
)

var (
	roleOptions   = []string{string(models.RoleSalesExecutive), string(models.RoleTeamLead), string(models.RoleManager)}
	statusOptions = []string{string(models.StatusActive), string(models.StatusInactive), string(models.StatusOnLeave)}
)

// NewMemberForm adds a user from the Team Member page.
type NewMemberForm struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	RefID           string
	Role            string
	ContactNo       string
	Location        string
	JoiningDate     string
	Bank            models.BankDetails
	ManagerID       string
	TeamID          string
}

func NewNewMemberForm(now time.Time) NewMemberForm {
	return NewMemberForm{Role: string(models.RoleSalesExecutive), JoiningDate: now.Format(time.DateOnly)}
}

func NewMemberFields() []Field[NewMemberForm] {
	return []Field[NewMemberForm]{
		text("Name", "name", func(f *NewMemberForm) *string { return &f.Name }),
		text("Email", "email", func(f *NewMemberForm) *string { return &f.Email }),
		text("Password", "password", func(f *NewMemberForm) *string { return &f.Password }),
		text("Confirm Password", "passwordConfirm", func(f *NewMemberForm) *string { return &f.PasswordConfirm }),
		text("Ref ID", "refId", func(f *NewMemberForm) *string { return &f.RefID }),
		text("Role", "role", func(f *NewMemberForm) *string { return &f.Role }, roleOptions...),
		text("Contact No", "contactNo", func(f *NewMemberForm) *string { return &f.ContactNo }),
		text("Location", "location", func(f *NewMemberForm) *string { return &f.Location }),
		text("Joining Date", "joiningDate", func(f *NewMemberForm) *string { return &f.JoiningDate }),
		text("Bank Name", "bankDetails.bankName", func(f *NewMemberForm) *string { return &f.Bank.BankName }),
		text("Account No", "bankDetails.accountNo", func(f *NewMemberForm) *string { return &f.Bank.AccountNo }),
		text("IFSC Code", "bankDetails.ifscCode", func(f *NewMemberForm) *string { return &f.Bank.IfscCode }),
		text("UPI ID", "bankDetails.upiId", func(f *NewMemberForm) *string { return &f.Bank.UpiID }),
		text("Manager ID", "managerId", func(f *NewMemberForm) *string { return &f.ManagerID }),
		text("Team ID", "teamId", func(f *NewMemberForm) *string { return &f.TeamID }),
	}
}

func (f *NewMemberForm) Validate() error {
	if f.Name == "" || f.Email == "" || f.Password == "" {
		return invalid("Please fill in name, email and password.")
	}
	if f.Password != f.PasswordConfirm {
		return session.ErrPasswordMismatch
	}
	return nil
}

type NewMemberPayload struct {
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Password        string             `json:"password"`
	PasswordConfirm string             `json:"passwordConfirm"`
	RefID           string             `json:"refId"`
	Role            models.Role        `json:"role"`
	ContactNo       string             `json:"contactNo"`
	Location        string             `json:"location"`
	JoiningDate     string             `json:"joiningDate"`
	BankDetails     models.BankDetails `json:"bankDetails"`
	ManagerID       string             `json:"managerId"`
	TeamID          string             `json:"teamId"`
}

func (f *NewMemberForm) Payload() NewMemberPayload {
	return NewMemberPayload{
		Name:            f.Name,
		Email:           f.Email,
		Password:        f.Password,
		PasswordConfirm: f.PasswordConfirm,
		RefID:           f.RefID,
		Role:            models.Role(f.Role),
		ContactNo:       f.ContactNo,
		Location:        f.Location,
		JoiningDate:     f.JoiningDate,
		BankDetails:     f.Bank,
		ManagerID:       f.ManagerID,
		TeamID:          f.TeamID,
	}
}

// EditMemberForm edits an existing user from the member modal.
type EditMemberForm struct {
	Name      string
	Email     string
	ContactNo string
	Location  string
	Status    string
	Role      string
	RefID     string
	ManagerID string
	TeamID    string
	Bank      models.BankDetails
}

// EditMemberFrom pre-fills the form from u.
func EditMemberFrom(u models.User) EditMemberForm {
	f := EditMemberForm{
		Name:      u.Name,
		Email:     u.Email,
		ContactNo: u.ContactNo,
		Location:  u.Location,
		Status:    string(u.Status),
		Role:      string(u.Role),
		RefID:     u.RefID,
		ManagerID: models.RefID(u.Manager),
		TeamID:    models.RefID(u.Team),
	}
	if f.Status == "" {
		f.Status = string(models.StatusActive)
	}
	if f.Role == "" {
		f.Role = string(models.RoleSalesExecutive)
	}
	if u.BankDetails != nil {
		f.Bank = *u.BankDetails
	}
	return f
}

func EditMemberFields() []Field[EditMemberForm] {
	return []Field[EditMemberForm]{
		text("Name", "name", func(f *EditMemberForm) *string { return &f.Name }),
		text("Email", "email", func(f *EditMemberForm) *string { return &f.Email }),
		text("Contact No", "contactNo", func(f *EditMemberForm) *string { return &f.ContactNo }),
		text("Location", "location", func(f *EditMemberForm) *string { return &f.Location }),
		text("Status", "status", func(f *EditMemberForm) *string { return &f.Status }, statusOptions...),
		text("Role", "role", func(f *EditMemberForm) *string { return &f.Role }, roleOptions...),
		text("Ref ID", "refId", func(f *EditMemberForm) *string { return &f.RefID }),
		text("Manager ID", "managerId", func(f *EditMemberForm) *string { return &f.ManagerID }),
		text("Team ID", "teamId", func(f *EditMemberForm) *string { return &f.TeamID }),
		text("Bank Name", "bankDetails.bankName", func(f *EditMemberForm) *string { return &f.Bank.BankName }),
		text("Account No", "bankDetails.accountNo", func(f *EditMemberForm) *string { return &f.Bank.AccountNo }),
		text("IFSC Code", "bankDetails.ifscCode", func(f *EditMemberForm) *string { return &f.Bank.IfscCode }),
		text("UPI ID", "bankDetails.upiId", func(f *EditMemberForm) *string { return &f.Bank.UpiID }),
	}
}

type EditMemberPayload struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	ContactNo   string             `json:"contactNo"`
	Location    string             `json:"location"`
	Status      models.UserStatus  `json:"status"`
	Role        models.Role        `json:"role"`
	RefID       string             `json:"refId"`
	Manager     *string            `json:"manager"`
	Team        *string            `json:"team"`
	BankDetails models.BankDetails `json:"bankDetails"`
}

// Payload sends empty manager or team ids as null, which unassigns them.
func (f *EditMemberForm) Payload() EditMemberPayload {
	return EditMemberPayload{
		Name:        f.Name,
		Email:       f.Email,
		ContactNo:   f.ContactNo,
		Location:    f.Location,
		Status:      models.UserStatus(f.Status),
		Role:        models.Role(f.Role),
		RefID:       f.RefID,
		Manager:     nullable(f.ManagerID),
		Team:        nullable(f.TeamID),
		BankDetails: f.Bank,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ProfileForm edits the signed-in user's own record. Email is shown but
// never sent.
type ProfileForm struct {
	Name      string
	Email     string
	ContactNo string
	Location  string
}

func ProfileFrom(u models.User) ProfileForm {
	return ProfileForm{Name: u.Name, Email: u.Email, ContactNo: u.ContactNo, Location: u.Location}
}

func ProfileFields() []Field[ProfileForm] {
	return []Field[ProfileForm]{
		text("Name", "name", func(f *ProfileForm) *string { return &f.Name }),
		text("Contact No", "contactNo", func(f *ProfileForm) *string { return &f.ContactNo }),
		text("Location", "location", func(f *ProfileForm) *string { return &f.Location }),
	}
}

type ProfilePayload struct {
	Name      string `json:"name"`
	ContactNo string `json:"contactNo"`
	Location  string `json:"location"`
}

func (f *ProfileForm) Payload() ProfilePayload {
	return ProfilePayload{Name: f.Name, ContactNo: f.ContactNo, Location: f.Location}
}
