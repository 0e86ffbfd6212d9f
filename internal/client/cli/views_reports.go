package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
)

var monthTeamSetters = map[string]func(f *pages.MonthTeamFilter, v string){
	"month":      func(f *pages.MonthTeamFilter, v string) { f.Month = v },
	"teamLeadId": func(f *pages.MonthTeamFilter, v string) { f.TeamLeadID = v },
}

func summaryPairs(s models.DashboardSummary) [][2]string {
	n := strconv.Itoa
	return [][2]string{
		{"Total Sales", money(s.TotalSales)},
		{"Last Month Sales", money(s.LastMonthSales)},
		{"This Month Sales", money(s.ThisMonthSales)},
		{"Today Sales", money(s.TodaySales)},
		{"Total Transfer Data", n(s.TotalTransferData)},
		{"Total Employees", n(s.TotalEmployees)},
		{"Total TLs", n(s.TotalTLs)},
		{"Total Prospects", n(s.TotalProspectOverall)},
		{"Today Prospects", n(s.TodayProspect)},
		{"Monthly Income", money(s.MonthlyIncome)},
		{"Last Month Income", money(s.LastMonthIncome)},
		{"Total Income", money(s.TotalIncome)},
		{"Total Import Data", n(s.TotalImportData)},
		{"Total Data (Finance)", n(s.TotalDataFinance)},
		{"Last Month Income (Finance)", money(s.LastMonthIncomeFinance)},
		{"Total Income (Finance)", money(s.TotalIncomeFinance)},
		{"Total Import Data (Finance)", n(s.TotalImportDataFinance)},
	}
}

func teamLeadOptions(w io.Writer, l *pages.Lookup[[]models.User]) {
	if l.Err() != nil || len(l.Value()) == 0 {
		return
	}
	opts := make([]string, 0, len(l.Value()))
	for _, u := range l.Value() {
		opts = append(opts, u.Name+"="+u.ID)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Team leads: %v", opts)))
}

type dashboardView struct {
	page *pages.Dashboard
}

func (v *dashboardView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *dashboardView) render(w io.Writer) {
	renderTitle(w, "Manager Dashboard")
	if err := v.page.Summary.Err(); err != nil {
		renderError(w, err)
		return
	}
	renderPairs(w, summaryPairs(v.page.Summary.Value()))
}

func (v *dashboardView) handle(ctx context.Context, cmd string, _ []string) error {
	if cmd == "refresh" {
		return v.Load(ctx)
	}
	return errUnknownCommand
}

func (v *dashboardView) usage() string { return "refresh" }

type salesView struct {
	page *pages.TotalSales
}

func (v *salesView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *salesView) render(w io.Writer) {
	renderTitle(w, "Total Sales")
	teamLeadOptions(w, v.page.TeamLeads)
	renderList(w, v.page.List, "No sales found for the selected filters.",
		[]string{"Date", "Company", "Client", "Services", "Amount", "Executive", "Team Lead"},
		func(s models.Sale) []string {
			return []string{s.SaleDate.Date(), s.CompanyName, s.ClientName, s.Services, money(s.Amount),
				models.RefName(s.SalesExecutive), models.RefName(s.TeamLead)}
		})
}

func (v *salesView) handle(ctx context.Context, cmd string, args []string) error {
	return listCommand(ctx, v.page.List, monthTeamSetters, cmd, args)
}

func (v *salesView) usage() string { return filterUsage(monthTeamSetters) }

var reportSetters = map[string]func(f *pages.ReportFilter, v string){
	"period":     func(f *pages.ReportFilter, v string) { f.Period = v },
	"teamLeadId": func(f *pages.ReportFilter, v string) { f.TeamLeadID = v },
}

type reportView struct {
	page *pages.Report
}

func (v *reportView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *reportView) render(w io.Writer) {
	renderTitle(w, "Performance Report")
	teamLeadOptions(w, v.page.TeamLeads)
	renderList(w, v.page.List, "No report data for the selected period.",
		[]string{"Name", "Role", "Calls", "Prospects", "Untouched", "Monthly Sales", "Sales Count"},
		func(r models.PerformanceRow) []string {
			return []string{r.Name, r.Role.Label(), strconv.Itoa(r.TotalCalls), strconv.Itoa(r.TotalProspects),
				strconv.Itoa(r.UntouchedData), money(r.MonthlySales), strconv.Itoa(r.TotalSalesCount)}
		})
}

func (v *reportView) handle(ctx context.Context, cmd string, args []string) error {
	if cmd == "clear" {
		v.page.List.Edit(func(f *pages.ReportFilter) { *f = pages.ReportFilter{Period: pages.PeriodDay} })
		return nil
	}
	return listCommand(ctx, v.page.List, reportSetters, cmd, args)
}

func (v *reportView) usage() string { return filterUsage(reportSetters) + " (period=day|month)" }

var callSetters = map[string]func(f *pages.CallFilter, v string){
	"month":       func(f *pages.CallFilter, v string) { f.Month = v },
	"teamLeadId":  func(f *pages.CallFilter, v string) { f.TeamLeadID = v },
	"executiveId": func(f *pages.CallFilter, v string) { f.ExecutiveID = v },
	"companyName": func(f *pages.CallFilter, v string) { f.CompanyName = v },
	"contactNo":   func(f *pages.CallFilter, v string) { f.ContactNo = v },
}

type managerReportView struct {
	*console
	page *pages.ManagerReport
}

func (v *managerReportView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *managerReportView) render(w io.Writer) {
	renderTitle(w, "Manager Report")
	if err := v.page.Summary.Err(); err == nil {
		s := v.page.Summary.Value()
		renderPairs(w, [][2]string{
			{"Clients Spoken", strconv.Itoa(s.TotalClientsSpoken)},
			{"Total Calls", strconv.Itoa(s.TotalCalls)},
			{"Last Month Prospects", strconv.Itoa(s.LastMonthProspect)},
			{"Untouched Data", strconv.Itoa(s.TotalUntouchedData)},
		})
	}
	teamLeadOptions(w, v.page.TeamLeads)
	renderList(w, v.page.Calls, "No call logs found.",
		[]string{"Company", "Client", "Contact", "Activity", "Comment", "Executive"},
		func(c models.CallLog) []string {
			return []string{c.CompanyName, c.ClientName, c.ContactNo, c.Activity, c.Comment, models.RefName(c.SalesExecutive)}
		})
}

func (v *managerReportView) handle(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "logs":
		logs := v.page.Activity.Value()
		if len(logs) == 0 {
			fmt.Fprintln(v.out, mutedStyle.Render("No recent activity."))
			return nil
		}
		rows := make([][]string, len(logs))
		for i, l := range logs {
			rows[i] = []string{l.Date.Date(), l.Date.Clock(), l.User, l.Description}
		}
		renderTable(v.out, []string{"Date", "Time", "User", "Activity"}, rows)
		return nil
	case "update":
		id, err := pick(v.page.Calls, func(c models.CallLog) string { return c.ID }, args)
		if err != nil {
			return err
		}
		form, err := v.page.OpenCall(id)
		if err != nil {
			return err
		}
		if err := fillForm(v.reader, v.out, &form, forms.CallLogFields(), args[1:]); err != nil {
			v.page.Call.Close()
			return err
		}
		return reported(v.out, v.page.Call.Feedback, v.page.SubmitCall(ctx, form))
	case "delete-profile":
		id, err := pick(v.page.Calls, func(c models.CallLog) string { return c.ID }, args)
		if err != nil {
			return err
		}
		if _, err := v.page.OpenCall(id); err != nil {
			return err
		}
		err = v.page.DeleteClientProfile(ctx)
		v.page.Call.Close()
		return reported(v.out, v.page.Call.Feedback, err)
	}
	return listCommand(ctx, v.page.Calls, callSetters, cmd, args)
}

func (v *managerReportView) usage() string {
	return filterUsage(callSetters) + " | update <n> [activity=.. comment=..] | delete-profile <n> | logs"
}
