// Package cli renders the workflow state on a terminal and translates typed
// commands into controller intents. It holds no workflow state of its own.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
)

type App struct {
	workflow *usecase.Workflow
	scanner  *bufio.Scanner
	log      *slog.Logger

	promptFn func(format string, a ...interface{})
	errorFn  func(format string, a ...interface{})
}

func NewApp(workflow *usecase.Workflow, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		workflow: workflow,
		scanner:  bufio.NewScanner(os.Stdin),
		log:      log,
		promptFn: color.New(color.FgGreen).PrintfFunc(),
		errorFn:  color.New(color.FgRed).PrintfFunc(),
	}
}

// Run drives the view loop until the user quits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	color.Cyan("Lexi - document review assistant (type 'help' on any screen)")

	spinner := getSpinner(" Restoring session...")
	err := a.workflow.Start(ctx)
	_ = spinner.Finish()
	fmt.Println()
	if err != nil {
		a.log.Debug("session_restore", "error", err)
		color.Yellow("No active session. Please log in.")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		state := a.workflow.State()
		var quit bool
		switch state.View {
		case domain.ViewLogin, domain.ViewSignup:
			quit = a.runAuth(ctx, state)
		case domain.ViewDashboard:
			quit = a.runDashboard(ctx, state)
		case domain.ViewProfile:
			quit = a.runProfile(ctx, state)
		case domain.ViewAnalyzer:
			quit = a.runAnalyzer(ctx, state)
		default:
			a.errorFn("unknown view %q\n", state.View)
			quit = true
		}
		if quit {
			return nil
		}
	}
}

// readLine prompts and returns the next input line; ok is false when stdin
// is exhausted.
func (a *App) readLine(prompt string) (string, bool) {
	a.promptFn("%s", prompt)
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

// confirm gates destructive actions behind an explicit yes.
func (a *App) confirm(question string) bool {
	answer, ok := a.readLine(question + " [y/N]: ")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (a *App) showError(err error) {
	switch {
	case domain.IsKind(err, domain.ErrInvalidCredentials):
		a.errorFn("Invalid email or password.\n")
	case domain.IsKind(err, domain.ErrRegistration):
		a.errorFn("Registration failed. The email may already be in use.\n")
	case domain.IsKind(err, domain.ErrUnauthenticated):
		a.errorFn("Your session has expired. Please log in again.\n")
	case domain.IsKind(err, domain.ErrInvalidInput):
		a.errorFn("%v\n", err)
	case domain.IsKind(err, domain.ErrDocumentNotFound):
		a.errorFn("That document no longer exists.\n")
	default:
		a.errorFn("Something went wrong: %v\n", err)
	}
	a.log.Warn("user_visible_error", "error", err)
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}
