package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
)

func (a *App) runAnalyzer(ctx context.Context, state usecase.State) (quit bool) {
	color.Cyan("\n== Analyzer ==")
	if state.File != nil {
		mode := "live"
		if state.HistoryView {
			mode = "history"
		}
		color.White("Document: %s (%s)", state.File.Name, mode)
	}
	color.White("Tab: %s", state.ActiveTab)

	a.renderTab(state)

	line, ok := a.readLine("> ")
	if !ok {
		return true
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help", "?":
		color.White("Commands: analyze, tab <summary|clauses|risks|chat>, say <message>,")
		color.White("          clear-chat, back, quit")
	case "quit", "exit":
		return true
	case "back", "":
		a.workflow.NavigateTo(domain.ViewDashboard)
	case "analyze":
		spinner := getSpinner(" Analyzing document...")
		err := a.workflow.Analyze(ctx)
		_ = spinner.Finish()
		if err != nil {
			a.showError(err)
		}
	case "tab":
		tab, ok := parseTab(arg)
		if !ok {
			a.errorFn("Unknown tab %q. Tabs: summary, clauses, risks, chat.\n", arg)
			break
		}
		a.workflow.ChangeTab(tab)
	case "say":
		if arg == "" {
			a.errorFn("Usage: say <message>\n")
			break
		}
		a.workflow.SetChatInput(arg)
		spinner := getSpinner(" Thinking...")
		a.workflow.SendChatMessage(ctx, arg)
		_ = spinner.Finish()
		a.workflow.ChangeTab(domain.TabChat)
	case "clear-chat":
		if a.confirm("Clear the conversation?") {
			a.workflow.ClearChat()
		}
	default:
		a.errorFn("Unknown command %q. Type 'help'.\n", cmd)
	}
	return false
}

func (a *App) renderTab(state usecase.State) {
	if state.Analysis == nil {
		color.Yellow("No analysis yet. Run 'analyze' to extract summary, clauses and risks.")
		return
	}
	analysis := *state.Analysis

	switch state.ActiveTab {
	case domain.TabClauses:
		color.White("Key clauses:")
		printClauses(analysis.KeyClauses)
	case domain.TabRisks:
		color.White("Risks:")
		printList(analysis.Risks)
		color.White("Deadlines:")
		printList(analysis.Deadlines)
	case domain.TabChat:
		a.renderChat(state.Chat)
	default:
		color.White("%s (%s)", analysis.DocumentType, analysis.Category)
		color.White("Summary:")
		printList(analysis.Summary)
		color.White("Obligations:")
		printList(analysis.Obligations)
	}
}

func (a *App) renderChat(chat []domain.ChatMessage) {
	if len(chat) == 0 {
		color.Yellow("No messages yet. Use 'say <message>' to ask about the document.")
		return
	}
	userPrompt := color.New(color.FgGreen).PrintfFunc()
	assistantPrompt := color.New(color.FgCyan).PrintfFunc()
	for _, msg := range chat {
		switch {
		case msg.Role == domain.RoleUser:
			userPrompt("You: %s\n", msg.Text)
		case msg.IsError:
			a.errorFn("Assistant: %s\n", msg.Text)
		default:
			assistantPrompt("Assistant: %s\n", msg.Text)
		}
	}
}

func printList(items []string) {
	if len(items) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

func printClauses(clauses []domain.Clause) {
	if len(clauses) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, clause := range clauses {
		fmt.Printf("  • %s [%s]\n    %s\n", clause.Title, clause.Category, clause.Text)
	}
}

func parseTab(name string) (domain.Tab, bool) {
	switch strings.ToLower(name) {
	case "summary":
		return domain.TabSummary, true
	case "clauses":
		return domain.TabClauses, true
	case "risks":
		return domain.TabRisks, true
	case "chat":
		return domain.TabChat, true
	default:
		return "", false
	}
}
