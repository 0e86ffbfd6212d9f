package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
)

func prospectRow(p models.Prospect) []string {
	return []string{p.CreatedAt.Date(), p.CompanyName, p.ClientName, p.ContactNo, p.Activity,
		p.ReminderDate.Date(), models.RefName(p.SalesExecutive), models.RefName(p.TeamLead)}
}

var prospectHeaders = []string{"Created", "Company", "Client", "Contact", "Activity", "Reminder", "Executive", "Team Lead"}

func prospectID(p models.Prospect) string { return p.ID }

type prospectsView struct {
	*console
	page *pages.TotalProspect
}

func (v *prospectsView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *prospectsView) render(w io.Writer) {
	renderTitle(w, "Total Prospects")
	teamLeadOptions(w, v.page.TeamLeads)
	renderList(w, v.page.List, "No prospects found for the selected filters.", prospectHeaders, prospectRow)
}

func (v *prospectsView) handle(ctx context.Context, cmd string, args []string) error {
	if cmd != "update" {
		return listCommand(ctx, v.page.List, monthTeamSetters, cmd, args)
	}
	id, err := pick(v.page.List, prospectID, args)
	if err != nil {
		return err
	}
	form, err := v.page.OpenUpdate(id)
	if err != nil {
		return err
	}
	if err := fillForm(v.reader, v.out, &form, forms.ProspectUpdateFields(), args[1:]); err != nil {
		v.page.Update.Close()
		return err
	}
	return reported(v.out, v.page.Update.Feedback, v.page.SubmitUpdate(ctx, form))
}

func (v *prospectsView) usage() string {
	return filterUsage(monthTeamSetters) + " | update <n> [activity=.. comment=..]"
}

var untouchedSetters = map[string]func(f *pages.UntouchedFilter, v string){
	"memberId": func(f *pages.UntouchedFilter, v string) { f.MemberID = v },
	"date":     func(f *pages.UntouchedFilter, v string) { f.Date = v },
}

type untouchedView struct {
	*console
	page *pages.UntouchedData
}

func (v *untouchedView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *untouchedView) render(w io.Writer) {
	renderTitle(w, "Untouched Data")
	if v.page.KPIs.Err() == nil {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Untouched: %d", v.page.KPIs.Value().TotalUntouchedData)))
	}
	renderList(w, v.page.List, "No untouched prospects.", prospectHeaders, prospectRow)
}

func (v *untouchedView) handle(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "transfer":
		id, err := pick(v.page.List, prospectID, args)
		if err != nil {
			return err
		}
		if err := v.page.OpenTransfer(id); err != nil {
			return err
		}
		target := ""
		if len(args) > 1 {
			target = args[1]
		} else {
			for i, u := range v.page.Members.Value() {
				fmt.Fprintf(v.out, "%d. %s (%s) %s\n", i+1, u.Name, u.Role.Label(), u.ID)
			}
			if target, err = getSimpleText(v.reader, "Transfer to (user id)", v.out); err != nil {
				v.page.Transfer.Close()
				return err
			}
		}
		err = v.page.SubmitTransfer(ctx, target)
		v.page.Transfer.Close()
		return reported(v.out, v.page.Transfer.Feedback, err)
	case "import":
		if len(args) == 0 {
			return fmt.Errorf("%w: import <file.xlsx|file.csv>", errUsage)
		}
		rep, err := v.page.Import(ctx, args[0])
		printImportReport(v.out, rep)
		return err
	}
	return listCommand(ctx, v.page.List, untouchedSetters, cmd, args)
}

func (v *untouchedView) usage() string {
	return filterUsage(untouchedSetters) + " | transfer <n> [userId] | import <file>"
}

func printImportReport(w io.Writer, rep pages.ImportReport) {
	if rep.Created > 0 {
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("%d prospect(s) imported.", rep.Created)))
	}
	for _, e := range rep.Failed {
		fmt.Fprintln(w, errorStyle.Render(e.Error()))
	}
}

type prospectFormView struct {
	*console
	page *pages.ProspectForm
}

func (v *prospectFormView) Load(context.Context) error { return nil }

func (v *prospectFormView) render(w io.Writer) {
	renderTitle(w, "Add New Prospect")
	fmt.Fprintln(w, mutedStyle.Render("Type 'add' to fill the form, or 'add companyName=.. clientName=..'."))
}

func (v *prospectFormView) handle(ctx context.Context, cmd string, args []string) error {
	if cmd != "add" {
		return errUnknownCommand
	}
	var form forms.ProspectForm
	if err := fillForm(v.reader, v.out, &form, forms.ProspectFields(), args); err != nil {
		return err
	}
	next, err := v.page.Submit(ctx, form)
	if err := reported(v.out, v.page.Feedback, err); err != nil || next == "" {
		return err
	}
	return v.navigate(ctx, next)
}

func (v *prospectFormView) usage() string { return "add [field=value ...]" }
