package models

type Team struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	TeamLead *Ref   `json:"teamLead,omitempty"`
	Members  []Ref  `json:"members,omitempty"`
}

func (t Team) GetID() string { return t.ID }
