package forms

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// InternalTransferForm moves the first Count records of one member to
// another. Count stays text until validated.
type InternalTransferForm struct {
	SourceUserID string
	TargetUserID string
	DataType     string
	Count        string
}

func NewInternalTransferForm() InternalTransferForm {
	return InternalTransferForm{DataType: string(models.DataProspects)}
}

func InternalTransferFields() []Field[InternalTransferForm] {
	return []Field[InternalTransferForm]{
		text("Source Member", "sourceUserId", func(f *InternalTransferForm) *string { return &f.SourceUserID }),
		text("Target Member", "targetUserId", func(f *InternalTransferForm) *string { return &f.TargetUserID }),
		text("Data Type", "dataType", func(f *InternalTransferForm) *string { return &f.DataType },
			string(models.DataProspects), string(models.DataSales)),
		text("Count", "count", func(f *InternalTransferForm) *string { return &f.Count }),
	}
}

func (f *InternalTransferForm) Validate() error {
	if f.SourceUserID == "" || f.TargetUserID == "" || f.Count == "" || f.DataType == "" {
		return invalid("Please select source, target, data type, and count.")
	}
	if f.SourceUserID == f.TargetUserID {
		return invalid("Source and target members cannot be the same.")
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Count)); err != nil || n <= 0 {
		return invalid("Transfer count must be a positive number.")
	}
	return nil
}

// N is the validated count; call Validate first.
func (f *InternalTransferForm) N() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.Count))
	return n
}
