package models

// Prospect activities offered by the update modal.
const (
	ActivityNew           = "New"
	ActivityContacted     = "Contacted"
	ActivityFollowUp      = "Follow Up"
	ActivityConverted     = "Converted"
	ActivityNotInterested = "Not Interested"
	ActivityDeleteProfile = "Delete Client's Profile"
)

var ProspectActivities = []string{
	ActivityNew, ActivityContacted, ActivityFollowUp, ActivityConverted, ActivityNotInterested, ActivityDeleteProfile,
}

type Prospect struct {
	ID             string `json:"_id"`
	CompanyName    string `json:"companyName"`
	ClientName     string `json:"clientName"`
	EmailID        string `json:"emailId,omitempty"`
	ContactNo      string `json:"contactNo,omitempty"`
	ReminderDate   Time   `json:"reminderDate"`
	Comment        string `json:"comment,omitempty"`
	Activity       string `json:"activity,omitempty"`
	TeamLead       *Ref   `json:"teamLead,omitempty"`
	SalesExecutive *Ref   `json:"salesExecutive,omitempty"`
	LastUpdate     Time   `json:"lastUpdate"`
	CreatedAt      Time   `json:"createdAt"`
}

func (p Prospect) GetID() string { return p.ID }
