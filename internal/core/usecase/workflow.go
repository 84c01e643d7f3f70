package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/ports"
)

// chatErrorText is the fixed transcript entry for an absorbed chat failure.
const chatErrorText = "I encountered an error trying to answer that. Please try again."

// TransitionObserver receives one observation per top-level view change.
type TransitionObserver interface {
	ObserveViewTransition(view string)
}

// State is the immutable snapshot handed to the presentation layer.
// Documents is already filtered and sorted.
type State struct {
	User        *domain.User
	View        domain.View
	DocumentID  string
	File        *domain.FileRef
	Analysis    *domain.Analysis
	ActiveTab   domain.Tab
	HistoryView bool
	Chat        []domain.ChatMessage
	ChatInput   string
	Documents   []domain.StoredDocument
	Filter      string
	SortKey     domain.SortKey
	Uploading   bool
	Analyzing   bool
	Sending     bool
}

// Workflow is the single owned aggregate holding all transient view state.
// Every mutation goes through its methods under one mutex; network calls run
// with the lock released and re-apply their effects only when the document
// epoch they started under is still current.
type Workflow struct {
	mu sync.Mutex

	session     *SessionUseCase
	registry    *Registry
	documents   ports.DocumentAPI
	ai          ports.AnalysisAPI
	annotations ports.AnnotationStore
	log         *slog.Logger
	observer    TransitionObserver
	newID       func() string
	now         func() time.Time

	user        *domain.User
	view        domain.View
	documentID  string
	file        *domain.FileRef
	analysis    *domain.Analysis
	activeTab   domain.Tab
	historyView bool
	chat        []domain.ChatMessage
	chatInput   string
	listing     []domain.StoredDocument
	filter      string
	sortKey     domain.SortKey
	uploading   bool
	analyzing   bool
	sending     bool
	epoch       uint64
}

type WorkflowOption func(*Workflow)

func WithTransitionObserver(obs TransitionObserver) WorkflowOption {
	return func(w *Workflow) { w.observer = obs }
}

func NewWorkflow(
	session *SessionUseCase,
	registry *Registry,
	documents ports.DocumentAPI,
	ai ports.AnalysisAPI,
	annotations ports.AnnotationStore,
	log *slog.Logger,
	opts ...WorkflowOption,
) *Workflow {
	if log == nil {
		log = slog.Default()
	}
	w := &Workflow{
		session:     session,
		registry:    registry,
		documents:   documents,
		ai:          ai,
		annotations: annotations,
		log:         log,
		newID:       uuid.NewString,
		now:         time.Now,
		view:        domain.ViewLogin,
		activeTab:   domain.TabSummary,
		filter:      domain.FilterAll,
		sortKey:     domain.SortNewest,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start resolves the stored session. Success lands on the dashboard with a
// fresh listing; failure lands on Login.
func (w *Workflow) Start(ctx context.Context) error {
	user, err := w.session.Resolve(ctx)
	if err != nil {
		w.mu.Lock()
		w.setView(domain.ViewLogin)
		w.mu.Unlock()
		return err
	}
	w.mu.Lock()
	w.user = user
	w.setView(domain.ViewDashboard)
	w.mu.Unlock()
	return w.RefreshDocuments(ctx)
}

func (w *Workflow) Login(ctx context.Context, email, password string) error {
	user, err := w.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.user = user
	w.setView(domain.ViewDashboard)
	w.mu.Unlock()
	return w.RefreshDocuments(ctx)
}

func (w *Workflow) Signup(ctx context.Context, name, email, password string) error {
	user, err := w.session.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.user = user
	w.setView(domain.ViewDashboard)
	w.mu.Unlock()
	return w.RefreshDocuments(ctx)
}

// Logout clears local state regardless of the backend call's outcome.
func (w *Workflow) Logout(ctx context.Context) error {
	err := w.session.Logout(ctx)

	w.mu.Lock()
	w.user = nil
	w.documentID = ""
	w.file = nil
	w.analysis = nil
	w.activeTab = domain.TabSummary
	w.historyView = false
	w.chat = nil
	w.chatInput = ""
	w.listing = nil
	w.filter = domain.FilterAll
	w.sortKey = domain.SortNewest
	w.epoch++
	w.setView(domain.ViewLogin)
	w.mu.Unlock()
	return err
}

func (w *Workflow) UpdateProfile(user domain.User) error {
	updated, err := w.session.UpdateProfile(user)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.user = updated
	w.mu.Unlock()
	return nil
}

// Upload validates the file type before any network call, then creates the
// backend record and opens the analyzer on it.
func (w *Workflow) Upload(ctx context.Context, file domain.FileRef, body io.Reader) error {
	if !domain.IsAcceptedMimeType(file.MimeType) {
		return domain.WrapError(domain.ErrInvalidInput, "upload",
			fmt.Errorf("unsupported file type %q", file.MimeType))
	}

	w.mu.Lock()
	w.uploading = true
	w.analysis = nil
	w.chat = nil
	w.chatInput = ""
	w.historyView = false
	w.documentID = ""
	w.file = &domain.FileRef{Name: file.Name, MimeType: file.MimeType}
	w.epoch++
	epoch := w.epoch
	w.mu.Unlock()

	meta, err := w.documents.Create(ctx, file.Name, file.MimeType, body)

	w.mu.Lock()
	w.uploading = false
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if w.epoch != epoch {
		w.mu.Unlock()
		return nil
	}
	w.documentID = meta.ID
	w.activeTab = domain.TabSummary
	w.setView(domain.ViewAnalyzer)
	w.mu.Unlock()

	if err := w.RefreshDocuments(ctx); err != nil {
		w.log.Warn("refresh_after_upload", "error", err)
	}
	return nil
}

// Analyze runs AI analysis on the current document. The result is cached by
// document id even if the user has since moved on; the view state only
// changes when the run's epoch is still current.
func (w *Workflow) Analyze(ctx context.Context) error {
	w.mu.Lock()
	if w.documentID == "" {
		w.mu.Unlock()
		return domain.WrapError(domain.ErrInvalidInput, "analyze",
			fmt.Errorf("no document selected"))
	}
	w.analyzing = true
	docID := w.documentID
	epoch := w.epoch
	w.mu.Unlock()

	analysis, err := w.ai.Analyze(ctx, docID)

	w.mu.Lock()
	w.analyzing = false
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if saveErr := w.annotations.SaveAnalysis(docID, analysis); saveErr != nil {
		w.log.Warn("save_analysis", "document_id", docID, "error", saveErr)
	}
	if w.epoch != epoch {
		w.mu.Unlock()
		return nil
	}
	w.analysis = &analysis
	w.chat = []domain.ChatMessage{{
		ID:        w.newID(),
		Role:      domain.RoleAssistant,
		Text:      fmt.Sprintf("Analysis completed. This appears to be a %s. Ask me anything about it.", analysis.DocumentType),
		Timestamp: w.now(),
	}}
	w.mu.Unlock()
	return nil
}

// OpenArchived loads a registered document's cached annotation without any
// network call and enters history mode.
func (w *Workflow) OpenArchived(doc domain.StoredDocument) {
	w.mu.Lock()
	defer w.mu.Unlock()

	analysis := doc.Analysis
	w.documentID = doc.ID
	w.file = &domain.FileRef{Name: doc.Name, MimeType: doc.MimeType}
	w.analysis = &analysis
	w.activeTab = doc.LastTab
	if w.activeTab == "" {
		w.activeTab = domain.TabSummary
	}
	w.historyView = true
	w.chat = nil
	w.chatInput = ""
	w.epoch++
	w.setView(domain.ViewAnalyzer)
}

// ChangeTab updates the active tab and persists it fire-and-forget.
func (w *Workflow) ChangeTab(tab domain.Tab) {
	w.mu.Lock()
	w.activeTab = tab
	docID := w.documentID
	w.mu.Unlock()

	if docID == "" {
		return
	}
	go func() {
		if err := w.annotations.SaveLastTab(docID, tab); err != nil {
			w.log.Warn("save_last_tab", "document_id", docID, "error", err)
		}
	}()
}

// SendChatMessage appends the user turn optimistically and asks the backend
// for a reply. Failures are absorbed into the transcript as a flagged
// assistant message so the conversation can continue.
func (w *Workflow) SendChatMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	w.mu.Lock()
	if w.analysis == nil && w.documentID == "" {
		w.mu.Unlock()
		return
	}

	history := make([]domain.ChatTurn, 0, len(w.chat))
	for _, msg := range w.chat {
		history = append(history, domain.ChatTurn{Role: msg.Role, Text: msg.Text})
	}

	var analysisContext string
	if w.analysis != nil {
		if raw, err := json.Marshal(w.analysis); err == nil {
			analysisContext = string(raw)
		}
	}

	w.chat = append(w.chat, domain.ChatMessage{
		ID:        w.newID(),
		Role:      domain.RoleUser,
		Text:      text,
		Timestamp: w.now(),
	})
	w.chatInput = ""
	w.sending = true
	docID := w.documentID
	epoch := w.epoch
	w.mu.Unlock()

	reply, err := w.ai.Chat(ctx, domain.ChatRequest{
		DocumentID:      docID,
		Message:         text,
		History:         history,
		AnalysisContext: analysisContext,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.sending = false
	if w.epoch != epoch {
		return
	}
	if err != nil {
		w.log.Warn("chat_call", "document_id", docID, "error", err)
		w.chat = append(w.chat, domain.ChatMessage{
			ID:        w.newID(),
			Role:      domain.RoleAssistant,
			Text:      chatErrorText,
			Timestamp: w.now(),
			IsError:   true,
		})
		return
	}
	w.chat = append(w.chat, domain.ChatMessage{
		ID:        w.newID(),
		Role:      domain.RoleAssistant,
		Text:      reply,
		Timestamp: w.now(),
	})
}

// DeleteDocument removes the backend record and, only after that succeeds,
// the local annotation. A backend failure keeps the annotation and surfaces
// the error.
func (w *Workflow) DeleteDocument(ctx context.Context, id string) error {
	if err := w.documents.Delete(ctx, id); err != nil {
		return err
	}
	if err := w.annotations.Remove(id); err != nil {
		w.log.Warn("remove_annotation", "document_id", id, "error", err)
	}

	w.mu.Lock()
	if w.documentID == id {
		w.documentID = ""
		w.file = nil
		w.analysis = nil
		w.chat = nil
		w.historyView = false
		w.epoch++
	}
	w.mu.Unlock()

	return w.RefreshDocuments(ctx)
}

// RefreshDocuments re-lists from the backend and replaces the merged listing.
func (w *Workflow) RefreshDocuments(ctx context.Context) error {
	w.mu.Lock()
	user := w.user
	w.mu.Unlock()
	if user == nil {
		return domain.WrapError(domain.ErrUnauthenticated, "refresh documents",
			fmt.Errorf("no active session"))
	}

	docs, err := w.registry.List(ctx, user.ID)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.listing = docs
	w.mu.Unlock()
	return nil
}

func (w *Workflow) SetFilter(category string) {
	w.mu.Lock()
	w.filter = category
	w.mu.Unlock()
}

func (w *Workflow) SetSort(key domain.SortKey) {
	w.mu.Lock()
	w.sortKey = key
	w.mu.Unlock()
}

func (w *Workflow) SetChatInput(text string) {
	w.mu.Lock()
	w.chatInput = text
	w.mu.Unlock()
}

// ClearChat resets the transcript. The caller gates this behind an
// interactive confirmation.
func (w *Workflow) ClearChat() {
	w.mu.Lock()
	w.chat = nil
	w.mu.Unlock()
}

func (w *Workflow) NavigateTo(view domain.View) {
	w.mu.Lock()
	w.setView(view)
	w.mu.Unlock()
}

// State returns a copy of the current state with the listing filtered and
// sorted for display.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	chat := make([]domain.ChatMessage, len(w.chat))
	copy(chat, w.chat)

	var user *domain.User
	if w.user != nil {
		u := *w.user
		user = &u
	}
	var file *domain.FileRef
	if w.file != nil {
		f := *w.file
		file = &f
	}
	var analysis *domain.Analysis
	if w.analysis != nil {
		a := *w.analysis
		analysis = &a
	}

	return State{
		User:        user,
		View:        w.view,
		DocumentID:  w.documentID,
		File:        file,
		Analysis:    analysis,
		ActiveTab:   w.activeTab,
		HistoryView: w.historyView,
		Chat:        chat,
		ChatInput:   w.chatInput,
		Documents:   Sort(Filter(w.listing, w.filter), w.sortKey),
		Filter:      w.filter,
		SortKey:     w.sortKey,
		Uploading:   w.uploading,
		Analyzing:   w.analyzing,
		Sending:     w.sending,
	}
}

// setView requires w.mu held.
func (w *Workflow) setView(view domain.View) {
	if w.view == view {
		return
	}
	w.view = view
	if w.observer != nil {
		w.observer.ObserveViewTransition(string(view))
	}
}
