package models

import "strings"

type Role string

const (
	RoleManager        Role = "manager"
	RoleTeamLead       Role = "team_lead"
	RoleSalesExecutive Role = "sales_executive"
)

// Label renders "team_lead" as "Team Lead".
func (r Role) Label() string {
	words := strings.Fields(strings.ReplaceAll(string(r), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusOnLeave  UserStatus = "on_leave"
)

type BankDetails struct {
	BankName  string `json:"bankName"`
	AccountNo string `json:"accountNo"`
	IfscCode  string `json:"ifscCode"`
	UpiID     string `json:"upiId"`
}

// User is both the authenticated identity and a team member record.
type User struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	RefID       string       `json:"refId,omitempty"`
	ContactNo   string       `json:"contactNo,omitempty"`
	Location    string       `json:"location,omitempty"`
	Status      UserStatus   `json:"status,omitempty"`
	JoiningDate Time         `json:"joiningDate"`
	BankDetails *BankDetails `json:"bankDetails,omitempty"`
	Manager     *Ref         `json:"manager,omitempty"`
	Team        *Ref         `json:"team,omitempty"`
}

func (u User) GetID() string { return u.ID }
