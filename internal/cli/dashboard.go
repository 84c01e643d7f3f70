package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/usecase"
)

func (a *App) runDashboard(ctx context.Context, state usecase.State) (quit bool) {
	color.Cyan("\n== Dashboard ==")
	if state.User != nil {
		color.White("Signed in as %s <%s>", state.User.Name, state.User.Email)
	}
	color.White("Filter: %s | Sort: %s", state.Filter, state.SortKey)

	if len(state.Documents) == 0 {
		color.Yellow("No documents yet. Use 'upload <path>' to add one.")
	}
	for i, doc := range state.Documents {
		fmt.Printf("  %2d. %-30s %-10s %-18s %s\n",
			i+1, doc.Name, doc.Analysis.Category, doc.Analysis.DocumentType,
			doc.UploadDate.Format("2006-01-02"))
	}

	line, ok := a.readLine("> ")
	if !ok {
		return true
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help", "?":
		color.White("Commands: upload <path>, open <n>, delete <n>, filter <Contract|Policy|Other|All>,")
		color.White("          sort <Newest|Oldest|Name|Type>, refresh, profile, logout, quit")
	case "quit", "exit":
		return true
	case "upload":
		a.doUpload(ctx, arg)
	case "open":
		if doc, ok := a.pickDocument(state, arg); ok {
			a.workflow.OpenArchived(doc)
		}
	case "delete":
		a.doDelete(ctx, state, arg)
	case "filter":
		if arg == "" {
			a.errorFn("Usage: filter <Contract|Policy|Other|All>\n")
			break
		}
		a.workflow.SetFilter(arg)
	case "sort":
		if arg == "" {
			a.errorFn("Usage: sort <Newest|Oldest|Name|Type>\n")
			break
		}
		a.workflow.SetSort(domain.SortKey(arg))
	case "refresh":
		if err := a.workflow.RefreshDocuments(ctx); err != nil {
			a.showError(err)
		}
	case "profile":
		a.workflow.NavigateTo(domain.ViewProfile)
	case "logout":
		if err := a.workflow.Logout(ctx); err != nil {
			a.log.Warn("logout", "error", err)
		}
		color.Green("✓ Logged out")
	case "":
	default:
		a.errorFn("Unknown command %q. Type 'help'.\n", cmd)
	}
	return false
}

func (a *App) doUpload(ctx context.Context, path string) {
	if path == "" {
		a.errorFn("Usage: upload <path>\n")
		return
	}
	mimeType := DetectMimeType(path)
	if !domain.IsAcceptedMimeType(mimeType) {
		a.errorFn("Unsupported file type %q. Accepted: PDF, DOCX, text, JPEG, PNG.\n", mimeType)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		a.errorFn("Cannot open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	spinner := getSpinner(" Uploading...")
	err = a.workflow.Upload(ctx, domain.FileRef{
		Name:     filepath.Base(path),
		MimeType: mimeType,
	}, f)
	_ = spinner.Finish()
	if err != nil {
		a.showError(err)
		return
	}
	color.Green("✓ Uploaded %s", filepath.Base(path))
}

func (a *App) doDelete(ctx context.Context, state usecase.State, arg string) {
	doc, ok := a.pickDocument(state, arg)
	if !ok {
		return
	}
	if !a.confirm(fmt.Sprintf("Delete %q? This cannot be undone.", doc.Name)) {
		return
	}
	if err := a.workflow.DeleteDocument(ctx, doc.ID); err != nil {
		a.showError(err)
		return
	}
	color.Green("✓ Deleted %s", doc.Name)
}

func (a *App) pickDocument(state usecase.State, arg string) (domain.StoredDocument, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(state.Documents) {
		a.errorFn("Pick a document number between 1 and %d.\n", len(state.Documents))
		return domain.StoredDocument{}, false
	}
	return state.Documents[n-1], true
}
