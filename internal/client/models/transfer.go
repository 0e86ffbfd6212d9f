package models

import "strings"

type DataType string

const (
	DataProspects DataType = "prospects"
	DataSales     DataType = "sales"
)

type TransferLog struct {
	ID              string  `json:"_id"`
	TransferDate    Time    `json:"transferDate"`
	TransferType    string  `json:"transferType"`
	TransferredFrom *Ref    `json:"transferredFrom,omitempty"`
	TransferredTo   *Ref    `json:"transferredTo,omitempty"`
	TransferredBy   *Ref    `json:"transferredBy,omitempty"`
	DataCount       int     `json:"dataCount"`
	Amount          float64 `json:"amount,omitempty"`
	CompanyName     string  `json:"companyName,omitempty"`
	ClientName      string  `json:"clientName,omitempty"`
}

// TypeLabel renders "internal_prospects" as "Internal Prospects".
func (l TransferLog) TypeLabel() string {
	return Role(strings.ToLower(l.TransferType)).Label()
}
