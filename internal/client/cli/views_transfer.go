package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
)

type transferView struct {
	*console
	page *pages.TransferData
}

func (v *transferView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *transferView) render(w io.Writer) {
	renderTitle(w, "Transfer Data")
	if users := v.page.Users.Value(); len(users) > 0 {
		rows := make([][]string, len(users))
		for i, u := range users {
			rows[i] = []string{u.Name, u.Role.Label(), u.ID}
		}
		renderTable(w, []string{"Member", "Role", "ID"}, rows)
	}

	fmt.Fprintln(w, titleStyle.Render("Sales available for Finance"))
	sales := v.page.Available.Value()
	if len(sales) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No sales available to transfer."))
	} else {
		selected := v.page.Selected()
		rows := make([][]string, len(sales))
		for i, s := range sales {
			mark := ""
			if slices.Contains(selected, s.ID) {
				mark = "x"
			}
			rows[i] = []string{mark, s.CompanyName, s.ClientName, money(s.Amount), s.SaleDate.Date(), models.RefName(s.SalesExecutive)}
		}
		renderTable(w, []string{"Sel", "Company", "Client", "Amount", "Date", "Executive"}, rows)
	}
}

func (v *transferView) handle(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "transfer":
		form := forms.NewInternalTransferForm()
		if err := fillForm(v.reader, v.out, &form, forms.InternalTransferFields(), args); err != nil {
			return err
		}
		return reported(v.out, v.page.Internal, v.page.InternalTransfer(ctx, form))
	case "select":
		sales := v.page.Available.Value()
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil || n < 1 || n > len(sales) {
				return fmt.Errorf("no sale %q", a)
			}
			v.page.ToggleSale(sales[n-1].ID)
		}
		fmt.Fprintf(v.out, "%d sale(s) selected\n", len(v.page.Selected()))
		return nil
	case "finance":
		return reported(v.out, v.page.Finance, v.page.TransferToFinance(ctx))
	case "history":
		renderHistory(v.out, "Internal Transfer History", v.page.InternalHistory)
		renderHistory(v.out, "Finance Transfer History", v.page.FinanceHistory)
		return nil
	case "refresh":
		return v.Load(ctx)
	}
	return errUnknownCommand
}

func (v *transferView) usage() string {
	return "transfer [sourceUserId=.. targetUserId=.. dataType=prospects|sales count=..] | select <n>... | finance | history | refresh"
}

func renderHistory(w io.Writer, title string, l *pages.Lookup[[]models.TransferLog]) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if err := l.Err(); err != nil {
		renderError(w, err)
		return
	}
	logs := l.Value()
	if len(logs) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No transfers yet."))
		return
	}
	rows := make([][]string, len(logs))
	for i, t := range logs {
		rows[i] = []string{t.TransferDate.Date(), t.TypeLabel(), models.RefName(t.TransferredFrom),
			models.RefName(t.TransferredTo), strconv.Itoa(t.DataCount), models.RefName(t.TransferredBy)}
	}
	renderTable(w, []string{"Date", "Type", "From", "To", "Count", "By"}, rows)
}
