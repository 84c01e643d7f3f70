package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
)

func (a *App) runProfile(ctx context.Context, state usecase.State) (quit bool) {
	color.Cyan("\n== Profile ==")
	if state.User == nil {
		a.workflow.NavigateTo(domain.ViewLogin)
		return false
	}
	user := *state.User
	color.White("Name:    %s", user.Name)
	color.White("Email:   %s", user.Email)
	color.White("Company: %s", user.Company)
	color.White("Role:    %s", user.Role)
	color.White("Joined:  %s", user.JoinedDate.Format("January 2006"))

	line, ok := a.readLine("> ")
	if !ok {
		return true
	}

	switch line {
	case "help", "?":
		color.White("Commands: edit, back, quit")
	case "quit", "exit":
		return true
	case "back", "":
		a.workflow.NavigateTo(domain.ViewDashboard)
	case "edit":
		return a.doEditProfile(ctx, user)
	default:
		a.errorFn("Unknown command %q. Type 'help'.\n", line)
	}
	return false
}

// doEditProfile prompts for each editable field; empty input keeps the
// current value. Email and id are backend-owned and not editable here.
func (a *App) doEditProfile(_ context.Context, user domain.User) (quit bool) {
	name, ok := a.readLine("Name [" + user.Name + "]: ")
	if !ok {
		return true
	}
	company, ok := a.readLine("Company [" + user.Company + "]: ")
	if !ok {
		return true
	}
	role, ok := a.readLine("Role [" + user.Role + "]: ")
	if !ok {
		return true
	}

	if name != "" {
		user.Name = name
	}
	if company != "" {
		user.Company = company
	}
	if role != "" {
		user.Role = role
	}

	if err := a.workflow.UpdateProfile(user); err != nil {
		a.showError(err)
		return false
	}
	color.Green("✓ Profile saved")
	return false
}
