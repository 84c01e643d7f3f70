package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
)

func (a *App) runAuth(ctx context.Context, state usecase.State) (quit bool) {
	if state.View == domain.ViewSignup {
		color.Cyan("\n== Create account ==")
	} else {
		color.Cyan("\n== Log in ==")
	}

	line, ok := a.readLine("> ")
	if !ok {
		return true
	}

	switch line {
	case "help", "?":
		color.White("Commands: login, signup, quit")
		return false
	case "quit", "exit":
		return true
	case "signup":
		if state.View == domain.ViewSignup {
			return a.doSignup(ctx)
		}
		a.workflow.NavigateTo(domain.ViewSignup)
		return false
	case "login":
		if state.View == domain.ViewLogin {
			return a.doLogin(ctx)
		}
		a.workflow.NavigateTo(domain.ViewLogin)
		return false
	case "":
		if state.View == domain.ViewSignup {
			return a.doSignup(ctx)
		}
		return a.doLogin(ctx)
	default:
		a.errorFn("Unknown command %q. Type 'help'.\n", line)
		return false
	}
}

func (a *App) doLogin(ctx context.Context) (quit bool) {
	email, ok := a.readLine("Email: ")
	if !ok {
		return true
	}
	password, ok := a.readLine("Password: ")
	if !ok {
		return true
	}

	spinner := getSpinner(" Signing in...")
	err := a.workflow.Login(ctx, email, password)
	_ = spinner.Finish()
	if err != nil {
		a.showError(err)
		return false
	}
	color.Green("✓ Welcome back")
	return false
}

func (a *App) doSignup(ctx context.Context) (quit bool) {
	name, ok := a.readLine("Name: ")
	if !ok {
		return true
	}
	email, ok := a.readLine("Email: ")
	if !ok {
		return true
	}
	password, ok := a.readLine("Password: ")
	if !ok {
		return true
	}

	spinner := getSpinner(" Creating account...")
	err := a.workflow.Signup(ctx, name, email, password)
	_ = spinner.Finish()
	if err != nil {
		a.showError(err)
		return false
	}
	color.Green("✓ Account created")
	return false
}
