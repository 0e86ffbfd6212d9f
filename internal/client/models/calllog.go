package models

// Call activities offered by the call log update modal.
var CallActivities = []string{"Talked", "Not Talked", "Follow Up", ActivityDeleteProfile}

type CallLog struct {
	ID             string `json:"_id"`
	CompanyName    string `json:"companyName"`
	ClientName     string `json:"clientName"`
	EmailID        string `json:"emailId,omitempty"`
	ContactNo      string `json:"contactNo,omitempty"`
	Activity       string `json:"activity"`
	Comment        string `json:"comment,omitempty"`
	SalesExecutive *Ref   `json:"salesExecutive,omitempty"`
	Prospect       *Ref   `json:"prospect,omitempty"`
}

func (c CallLog) GetID() string { return c.ID }

type ActivityLog struct {
	ID          string `json:"_id"`
	Date        Time   `json:"date"`
	Description string `json:"description"`
	User        string `json:"user"`
}
