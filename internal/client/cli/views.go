package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
	"github.com/dmitrijs2005/salesdesk/internal/client/router"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

// view is the REPL face of one page controller.
type view interface {
	Load(ctx context.Context) error
	render(w io.Writer)
	// handle runs a page command and returns errUnknownCommand when the
	// page has none by that name.
	handle(ctx context.Context, cmd string, args []string) error
	usage() string
}

// console is what views need from the App to talk to the user.
type console struct {
	reader *bufio.Reader
	out    io.Writer
	// navigate is called when a page finishes with a redirect.
	navigate func(ctx context.Context, path string) error
}

func newViews(d pages.Deps, t *console) map[string]view {
	return map[string]view{
		router.PathDashboard:      &dashboardView{page: pages.NewDashboard(d)},
		router.PathTotalSales:     &salesView{page: pages.NewTotalSales(d)},
		router.PathTotalProspect:  &prospectsView{console: t, page: pages.NewTotalProspect(d)},
		router.PathReport:         &reportView{page: pages.NewReport(d)},
		router.PathManagerReport:  &managerReportView{console: t, page: pages.NewManagerReport(d)},
		router.PathTeamMember:     &teamMemberView{console: t, page: pages.NewTeamMember(d)},
		router.PathTransferData:   &transferView{console: t, page: pages.NewTransferData(d)},
		router.PathUntouchedData:  &untouchedView{console: t, page: pages.NewUntouchedData(d)},
		router.PathProspectForm:   &prospectFormView{console: t, page: pages.NewProspectForm(d)},
		router.PathSalary:         &salaryView{console: t, page: pages.NewSalary(d)},
		router.PathTeamManagement: &teamManagementView{console: t, page: pages.NewTeamManagement(d)},
		router.PathMyProfile:      &profileView{console: t, page: pages.NewMyProfile(d)},
	}
}

// pick resolves a row reference: a 1-based row number from the last
// rendered table or a record id.
func pick[T, F any](l *pages.ListController[T, F], id func(T) string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: expected a row number or id", errUsage)
	}
	ref := args[0]
	if n, err := strconv.Atoi(ref); err == nil {
		items := l.Items()
		if n < 1 || n > len(items) {
			return "", fmt.Errorf("no row %d", n)
		}
		return id(items[n-1]), nil
	}
	if _, ok := l.Find(ref); !ok {
		return "", pages.ErrNoRecord
	}
	return ref, nil
}

// setFilters edits the draft filters of l from key=value args. Nothing is
// fetched until "search".
func setFilters[T, F any](l *pages.ListController[T, F], setters map[string]func(f *F, v string), args []string) error {
	pairs, err := parseAssignments(args)
	if err != nil {
		return err
	}
	for _, kv := range pairs {
		if _, ok := setters[kv[0]]; !ok {
			return fmt.Errorf("unknown filter %q, expected one of: %s", kv[0], strings.Join(filterKeys(setters), ", "))
		}
	}
	l.Edit(func(f *F) {
		for _, kv := range pairs {
			setters[kv[0]](f, kv[1])
		}
	})
	return nil
}

// listCommand covers the commands every filtered list shares.
func listCommand[T, F any](ctx context.Context, l *pages.ListController[T, F], setters map[string]func(f *F, v string), cmd string, args []string) error {
	switch cmd {
	case "filter":
		return setFilters(l, setters, args)
	case "search":
		return l.Submit(ctx)
	case "refresh":
		return l.Refresh(ctx)
	case "clear":
		var zero F
		l.Edit(func(f *F) { *f = zero })
		return nil
	}
	return errUnknownCommand
}

func filterKeys[F any](setters map[string]func(f *F, v string)) []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func filterUsage[F any](setters map[string]func(f *F, v string)) string {
	return "filter " + strings.Join(filterKeys(setters), "=.. ") + "=.. | search | clear | refresh"
}
