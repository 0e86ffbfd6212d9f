package forms

import "github.com/dmitrijs2005/salesdesk/internal/client/models"

// TeamForm creates a team or edits its lead and membership. AddMembers and
// RemoveMembers are user ids.
type TeamForm struct {
	Name          string   `json:"name"`
	TeamLeadID    string   `json:"teamLeadId"`
	AddMembers    []string `json:"addMembers"`
	RemoveMembers []string `json:"removeMembers"`
}

func TeamFrom(t models.Team) TeamForm {
	return TeamForm{Name: t.Name, TeamLeadID: models.RefID(t.TeamLead), AddMembers: []string{}, RemoveMembers: []string{}}
}

func TeamFields() []Field[TeamForm] {
	return []Field[TeamForm]{
		text("Team Name", "name", func(f *TeamForm) *string { return &f.Name }),
		text("Team Lead ID", "teamLeadId", func(f *TeamForm) *string { return &f.TeamLeadID }),
		list("Add Members", "addMembers", func(f *TeamForm) *[]string { return &f.AddMembers }),
		list("Remove Members", "removeMembers", func(f *TeamForm) *[]string { return &f.RemoveMembers }),
	}
}

func (f *TeamForm) Validate() error {
	if f.Name == "" || f.TeamLeadID == "" {
		return invalid("Team name and team lead are required.")
	}
	return nil
}

func (f *TeamForm) Payload() TeamForm {
	out := *f
	if out.AddMembers == nil {
		out.AddMembers = []string{}
	}
	if out.RemoveMembers == nil {
		out.RemoveMembers = []string{}
	}
	return out
}
