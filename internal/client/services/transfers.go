package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// InternalTransfer moves records from one member to another.
type InternalTransfer struct {
	SourceUserID string          `json:"sourceUserId"`
	TargetUserID string          `json:"targetUserId"`
	DataIDs      []string        `json:"dataIds"`
	DataType     models.DataType `json:"dataType"`
}

type Transfers struct {
	api Sender
	log logging.Logger
}

func NewTransfers(s Sender, log logging.Logger) *Transfers {
	if log == nil {
		log = logging.Nop()
	}
	return &Transfers{api: s, log: log.With("resource", "/transfers")}
}

func (t *Transfers) Internal(ctx context.Context, req InternalTransfer) error {
	return send(ctx, t.api, t.log, http.MethodPost, "/transfers/internal", req, nil)
}

// ToFinance hands the given sales over to the finance team.
func (t *Transfers) ToFinance(ctx context.Context, saleIDs []string) error {
	return send(ctx, t.api, t.log, http.MethodPost, "/transfers/finance", map[string][]string{"saleIds": saleIDs}, nil)
}

func (t *Transfers) InternalHistory(ctx context.Context) ([]models.TransferLog, error) {
	return fetch[[]models.TransferLog](ctx, t.api, t.log, http.MethodGet, "/transfers/internal/history", nil, nil, "transfers")
}

func (t *Transfers) FinanceHistory(ctx context.Context) ([]models.TransferLog, error) {
	return fetch[[]models.TransferLog](ctx, t.api, t.log, http.MethodGet, "/transfers/finance/history", nil, nil, "transfers")
}
