package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).MarginBottom(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#dce0e5"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func renderTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

// renderTable prints rows numbered from 1; the numbers are what page
// commands such as "update 3" refer to.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	numbered := make([][]string, len(rows))
	for i, r := range rows {
		numbered[i] = append([]string{strconv.Itoa(i + 1)}, r...)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(append([]string{"#"}, headers...)...).
		Rows(numbered...)
	fmt.Fprintln(w, t.Render())
}

func renderPairs(w io.Writer, pairs [][2]string) {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func renderFeedback(w io.Writer, f pages.Feedback) {
	if f.Err != "" {
		fmt.Fprintln(w, errorStyle.Render(f.Err))
	}
	if f.Success != "" {
		fmt.Fprintln(w, successStyle.Render(f.Success))
	}
}

// reported prints f and drops err when f already shows its message.
func reported(w io.Writer, f pages.Feedback, err error) error {
	renderFeedback(w, f)
	if err != nil && f.Err != "" {
		return nil
	}
	return err
}

func renderError(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
	}
}

// renderList prints the list in the shape its state calls for: a table,
// an empty message or the fetch error.
func renderList[T, F any](w io.Writer, l *pages.ListController[T, F], empty string, headers []string, row func(T) []string) {
	switch l.State() {
	case pages.StateFetching:
		fmt.Fprintln(w, mutedStyle.Render("Loading..."))
	case pages.StateErrored:
		renderError(w, l.Err())
	case pages.StateEmpty:
		fmt.Fprintln(w, mutedStyle.Render(empty))
	case pages.StatePopulated:
		items := l.Items()
		rows := make([][]string, len(items))
		for i, it := range items {
			rows[i] = row(it)
		}
		renderTable(w, headers, rows)
	}
}

func money(v float64) string {
	return "Rs. " + strconv.FormatFloat(v, 'f', 2, 64)
}
