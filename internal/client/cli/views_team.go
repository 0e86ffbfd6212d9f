package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/pages"
)

func userID(u models.User) string { return u.ID }

type teamMemberView struct {
	*console
	page *pages.TeamMember
}

func (v *teamMemberView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *teamMemberView) render(w io.Writer) {
	renderTitle(w, "Team Members")
	renderList(w, v.page.Members, "No team members yet.",
		[]string{"Name", "Email", "Role", "Status", "Team", "Manager", "Joined"},
		func(u models.User) []string {
			return []string{u.Name, u.Email, u.Role.Label(), string(u.Status), models.RefName(u.Team),
				models.RefName(u.Manager), u.JoiningDate.Date()}
		})
}

func (v *teamMemberView) handle(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "add":
		form := v.page.NewMemberForm()
		if err := fillForm(v.reader, v.out, &form, forms.NewMemberFields(), args); err != nil {
			return err
		}
		return reported(v.out, v.page.Add, v.page.AddMember(ctx, form))
	case "show", "edit", "delete":
		id, err := pick(v.page.Members, userID, args)
		if err != nil {
			return err
		}
		form, err := v.page.OpenMember(id, cmd == "edit")
		if err != nil {
			return err
		}
		defer v.page.Member.Close()
		switch cmd {
		case "show":
			sel, _ := v.page.Member.Selected()
			renderPairs(v.out, memberPairs(sel))
			return nil
		case "edit":
			if err := fillForm(v.reader, v.out, &form, forms.EditMemberFields(), args[1:]); err != nil {
				return err
			}
			return reported(v.out, v.page.Member.Feedback, v.page.SubmitEdit(ctx, form))
		default:
			return reported(v.out, v.page.Member.Feedback, v.page.DeleteMember(ctx))
		}
	case "refresh":
		return v.page.Members.Refresh(ctx)
	}
	return errUnknownCommand
}

func (v *teamMemberView) usage() string {
	return "add [field=value ...] | show <n> | edit <n> [field=value ...] | delete <n> | refresh"
}

func memberPairs(u models.User) [][2]string {
	out := [][2]string{
		{"Name", u.Name},
		{"Email", u.Email},
		{"Ref ID", u.RefID},
		{"Role", u.Role.Label()},
		{"Status", string(u.Status)},
		{"Contact No", u.ContactNo},
		{"Location", u.Location},
		{"Joining Date", u.JoiningDate.Date()},
		{"Manager", models.RefName(u.Manager)},
		{"Team", models.RefName(u.Team)},
	}
	if b := u.BankDetails; b != nil {
		out = append(out,
			[2]string{"Bank Name", b.BankName},
			[2]string{"Account No", b.AccountNo},
			[2]string{"IFSC Code", b.IfscCode},
			[2]string{"UPI ID", b.UpiID},
		)
	}
	return out
}

type teamManagementView struct {
	*console
	page *pages.TeamManagement
}

func (v *teamManagementView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *teamManagementView) render(w io.Writer) {
	renderTitle(w, "Team Management")
	renderList(w, v.page.Teams, "No teams yet.",
		[]string{"Team", "Team Lead", "Members"},
		func(t models.Team) []string {
			names := make([]string, 0, len(t.Members))
			for _, m := range t.Members {
				names = append(names, m.Name)
			}
			return []string{t.Name, models.RefName(t.TeamLead), strings.Join(names, ", ")}
		})
}

func (v *teamManagementView) handle(ctx context.Context, cmd string, args []string) error {
	var form forms.TeamForm
	switch cmd {
	case "add":
		form = v.page.OpenAdd()
	case "edit":
		id, err := pick(v.page.Teams, func(t models.Team) string { return t.ID }, args)
		if err != nil {
			return err
		}
		if form, err = v.page.OpenEdit(id); err != nil {
			return err
		}
		args = args[1:]
	case "delete":
		id, err := pick(v.page.Teams, func(t models.Team) string { return t.ID }, args)
		if err != nil {
			return err
		}
		return reported(v.out, v.page.Page, v.page.Delete(ctx, id))
	case "refresh":
		return v.page.Teams.Refresh(ctx)
	default:
		return errUnknownCommand
	}
	defer v.page.Editor.Close()
	if err := fillForm(v.reader, v.out, &form, forms.TeamFields(), args); err != nil {
		return err
	}
	return reported(v.out, v.page.Editor.Feedback, v.page.Save(ctx, form))
}

func (v *teamManagementView) usage() string {
	return "add [name=.. teamLeadId=..] | edit <n> [addMembers=id,id removeMembers=id] | delete <n> | refresh"
}

type salaryView struct {
	*console
	page *pages.Salary
}

func (v *salaryView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *salaryView) render(w io.Writer) {
	renderTitle(w, "Salary")
	renderList(w, v.page.Payouts, "No payout records yet.",
		[]string{"User", "Team Lead", "Month", "Amount", "Duration", "Description"},
		func(p models.Payout) []string {
			return []string{models.RefName(p.User), models.RefName(p.TeamLead), p.Month, money(p.Amount), p.Duration, p.Description}
		})
	if users := v.page.Users.Value(); len(users) > 0 {
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, fmt.Sprintf("%s=%s", u.Name, u.ID))
		}
		fmt.Fprintln(w, mutedStyle.Render("Payees: "+strings.Join(ids, ", ")))
	}
}

func (v *salaryView) handle(ctx context.Context, cmd string, args []string) error {
	payoutID := func(p models.Payout) string { return p.ID }
	var form forms.PayoutForm
	switch cmd {
	case "add":
		form = v.page.OpenAdd()
	case "edit":
		id, err := pick(v.page.Payouts, payoutID, args)
		if err != nil {
			return err
		}
		if form, err = v.page.OpenEdit(id); err != nil {
			return err
		}
		args = args[1:]
	case "delete":
		id, err := pick(v.page.Payouts, payoutID, args)
		if err != nil {
			return err
		}
		return reported(v.out, v.page.Page, v.page.Delete(ctx, id))
	case "refresh":
		return v.page.Payouts.Refresh(ctx)
	default:
		return errUnknownCommand
	}
	defer v.page.Editor.Close()
	if err := fillForm(v.reader, v.out, &form, forms.PayoutFields(), args); err != nil {
		return err
	}
	return reported(v.out, v.page.Editor.Feedback, v.page.Save(ctx, form))
}

func (v *salaryView) usage() string {
	return "add [user=.. amount=.. month=..] | edit <n> [field=value ...] | delete <n> | refresh"
}

type profileView struct {
	*console
	page *pages.MyProfile
}

func (v *profileView) Load(ctx context.Context) error { return v.page.Load(ctx) }

func (v *profileView) render(w io.Writer) {
	renderTitle(w, "My Profile")
	if err := v.page.Me.Err(); err != nil {
		renderError(w, err)
		return
	}
	renderPairs(w, memberPairs(v.page.Me.Value()))
}

func (v *profileView) handle(ctx context.Context, cmd string, args []string) error {
	if cmd != "edit" {
		return errUnknownCommand
	}
	form := v.page.StartEdit()
	if err := fillForm(v.reader, v.out, &form, forms.ProfileFields(), args); err != nil {
		v.page.CancelEdit()
		return err
	}
	if err := reported(v.out, v.page.Feedback, v.page.Save(ctx, form)); err != nil {
		return err
	}
	if !v.page.Editing() {
		v.render(v.out)
	}
	return nil
}

func (v *profileView) usage() string { return "edit [name=.. contactNo=.. location=..]" }
