package forms

import (
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// PayoutForm adds or edits a salary payout. Month is free text such as
// "May 2024".
type PayoutForm struct {
	User        string  `json:"user"`
	Month       string  `json:"month"`
	Amount      float64 `json:"amount"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}

func NewPayoutForm(now time.Time) PayoutForm {
	return PayoutForm{Month: now.Format("January 2006"), Duration: models.PayoutDurations[0]}
}

func PayoutFrom(p models.Payout) PayoutForm {
	return PayoutForm{
		User:        models.RefID(p.User),
		Month:       p.Month,
		Amount:      p.Amount,
		Duration:    p.Duration,
		Description: p.Description,
	}
}

func PayoutFields() []Field[PayoutForm] {
	return []Field[PayoutForm]{
		text("User ID", "user", func(f *PayoutForm) *string { return &f.User }),
		text("Month", "month", func(f *PayoutForm) *string { return &f.Month }),
		money("Amount", "amount", func(f *PayoutForm) *float64 { return &f.Amount }),
		text("Duration", "duration", func(f *PayoutForm) *string { return &f.Duration }, models.PayoutDurations...),
		text("Description", "description", func(f *PayoutForm) *string { return &f.Description }),
	}
}

func (f *PayoutForm) Validate() error {
	if f.User == "" || f.Month == "" {
		return invalid("Please select a user and a month.")
	}
	if f.Amount <= 0 {
		return invalid("Amount must be a positive number.")
	}
	return nil
}

func (f *PayoutForm) Payload() PayoutForm { return *f }
