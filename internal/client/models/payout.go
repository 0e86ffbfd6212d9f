package models

// Payout durations offered by the salary form.
var PayoutDurations = []string{"Full Month", "Half Month", "Bonus", "Other"}

type Payout struct {
	ID          string  `json:"_id"`
	User        *Ref    `json:"user,omitempty"`
	TeamLead    *Ref    `json:"teamLead,omitempty"`
	Month       string  `json:"month"`
	Amount      float64 `json:"amount"`
	Duration    string  `json:"duration"`
	Description string  `json:"description,omitempty"`
}

func (p Payout) GetID() string { return p.ID }
