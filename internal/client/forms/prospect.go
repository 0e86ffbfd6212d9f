package forms

import "github.com/dmitrijs2005/salesdesk/internal/client/models"

// ProspectForm creates a prospect, optionally assigned to an executive by
// email.
type ProspectForm struct {
	CompanyName              string `json:"companyName"`
	ClientName               string `json:"clientName"`
	EmailID                  string `json:"emailId"`
	ContactNo                string `json:"contactNo"`
	ReminderDate             string `json:"reminderDate,omitempty"`
	Comment                  string `json:"comment"`
	AssignedToExecutiveEmail string `json:"assignedToExecutiveEmail,omitempty"`
}

func ProspectFields() []Field[ProspectForm] {
	return []Field[ProspectForm]{
		text("Company Name", "companyName", func(f *ProspectForm) *string { return &f.CompanyName }),
		text("Client Name", "clientName", func(f *ProspectForm) *string { return &f.ClientName }),
		text("Email ID", "emailId", func(f *ProspectForm) *string { return &f.EmailID }),
		text("Contact No", "contactNo", func(f *ProspectForm) *string { return &f.ContactNo }),
		text("Reminder Date", "reminderDate", func(f *ProspectForm) *string { return &f.ReminderDate }),
		text("Comment", "comment", func(f *ProspectForm) *string { return &f.Comment }),
		text("Assign to Executive (email)", "assignedToExecutiveEmail", func(f *ProspectForm) *string { return &f.AssignedToExecutiveEmail }),
	}
}

func (f *ProspectForm) Validate() error {
	if f.CompanyName == "" || f.ClientName == "" {
		return invalid("Company name and client name are required.")
	}
	return nil
}

// Payload is the form itself; its json tags match the backend.
func (f *ProspectForm) Payload() ProspectForm { return *f }

// ProspectUpdateForm is the update modal on the prospect list.
type ProspectUpdateForm struct {
	Activity string `json:"activity"`
	Comment  string `json:"comment"`
}

func ProspectUpdateFrom(p models.Prospect) ProspectUpdateForm {
	return ProspectUpdateForm{Activity: p.Activity, Comment: p.Comment}
}

func ProspectUpdateFields() []Field[ProspectUpdateForm] {
	return []Field[ProspectUpdateForm]{
		text("Activity", "activity", func(f *ProspectUpdateForm) *string { return &f.Activity }, models.ProspectActivities...),
		text("Comment", "comment", func(f *ProspectUpdateForm) *string { return &f.Comment }),
	}
}

func (f *ProspectUpdateForm) Validate() error {
	if f.Activity == "" {
		return invalid("Please select an activity.")
	}
	return nil
}

func (f *ProspectUpdateForm) Payload() ProspectUpdateForm { return *f }

// CallLogForm is the update modal on the manager call report.
type CallLogForm struct {
	Activity string `json:"activity"`
	Comment  string `json:"comment"`
}

func CallLogFrom(c models.CallLog) CallLogForm {
	return CallLogForm{Activity: c.Activity, Comment: c.Comment}
}

func CallLogFields() []Field[CallLogForm] {
	return []Field[CallLogForm]{
		text("Activity", "activity", func(f *CallLogForm) *string { return &f.Activity }, models.CallActivities...),
		text("Comment", "comment", func(f *CallLogForm) *string { return &f.Comment }),
	}
}

func (f *CallLogForm) Validate() error {
	if f.Activity == "" {
		return invalid("Please select an activity.")
	}
	return nil
}

func (f *CallLogForm) Payload() CallLogForm { return *f }
