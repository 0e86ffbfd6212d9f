package models

type Sale struct {
	ID                     string `json:"_id"`
	CompanyName            string `json:"companyName"`
	ClientName             string `json:"clientName"`
	EmailID                string `json:"emailId,omitempty"`
	ContactNo              string `json:"contactNo,omitempty"`
	Services               string `json:"services,omitempty"`
	Amount                 float64 `json:"amount"`
	Activity               string `json:"activity,omitempty"`
	SaleDate               Time   `json:"saleDate"`
	TeamLead               *Ref   `json:"teamLead,omitempty"`
	SalesExecutive         *Ref   `json:"salesExecutive,omitempty"`
	IsTransferredToFinance bool   `json:"isTransferredToFinance"`
}

func (s Sale) GetID() string { return s.ID }
