// Package router maps user-facing paths to pages and gates the protected
// ones behind the session.
package router

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("page not found")

const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathDashboard      = "/dashboard"
	PathTotalSales     = "/total-sales"
	PathTotalProspect  = "/total-prospect"
	PathReport         = "/report"
	PathManagerReport  = "/manager-report"
	PathTeamMember     = "/team-member"
	PathTransferData   = "/transfer-data"
	PathUntouchedData  = "/untouched-data"
	PathProspectForm   = "/prospect-form"
	PathSalary         = "/salary"
	PathTeamManagement = "/team-management"
	PathMyProfile      = "/my-profile"
)

type Route struct {
	Path      string
	Title     string
	Protected bool
	// Sidebar routes are listed in navigation.
	Sidebar bool
}

var routes = []Route{
	{Path: PathLogin, Title: "Login"},
	{Path: PathDashboard, Title: "Dashboard", Protected: true, Sidebar: true},
	{Path: PathTotalSales, Title: "Total Sales", Protected: true, Sidebar: true},
	{Path: PathTotalProspect, Title: "Total Prospect", Protected: true, Sidebar: true},
	{Path: PathReport, Title: "Report", Protected: true, Sidebar: true},
	{Path: PathManagerReport, Title: "Manager Report", Protected: true, Sidebar: true},
	{Path: PathTeamMember, Title: "Team Member", Protected: true, Sidebar: true},
	{Path: PathTransferData, Title: "Transfer Data", Protected: true, Sidebar: true},
	{Path: PathUntouchedData, Title: "Untouched Data", Protected: true, Sidebar: true},
	{Path: PathProspectForm, Title: "Prospect Form", Protected: true, Sidebar: true},
	{Path: PathSalary, Title: "Salary", Protected: true, Sidebar: true},
	{Path: PathTeamManagement, Title: "Team Management", Protected: true, Sidebar: true},
	{Path: PathMyProfile, Title: "My Profile", Protected: true},
}

// Routes returns the route table in navigation order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Sidebar returns the navigation entries.
func Sidebar() []Route {
	var out []Route
	for _, r := range routes {
		if r.Sidebar {
			out = append(out, r)
		}
	}
	return out
}

// Normalize accepts "total-sales", "/total-sales/" and "/" forms.
func Normalize(path string) string {
	p := strings.TrimSpace(strings.ToLower(path))
	p = "/" + strings.Trim(p, "/")
	return p
}

func Lookup(path string) (Route, error) {
	p := Normalize(path)
	if p == PathRoot {
		p = PathDashboard
	}
	for _, r := range routes {
		if r.Path == p {
			return r, nil
		}
	}
	return Route{}, ErrNotFound
}
