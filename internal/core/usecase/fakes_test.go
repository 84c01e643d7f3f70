package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuth struct {
	identity    domain.Identity
	loginErr    error
	registerErr error
	currentErr  error
	logoutErr   error
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (domain.Identity, error) {
	if f.loginErr != nil {
		return domain.Identity{}, f.loginErr
	}
	return f.identity, nil
}

func (f *fakeAuth) Register(_ context.Context, _, _ string) (domain.Identity, error) {
	if f.registerErr != nil {
		return domain.Identity{}, f.registerErr
	}
	return f.identity, nil
}

func (f *fakeAuth) CurrentIdentity(_ context.Context) (domain.Identity, error) {
	if f.currentErr != nil {
		return domain.Identity{}, f.currentErr
	}
	return f.identity, nil
}

func (f *fakeAuth) Logout(_ context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeDocs struct {
	metas       []domain.DocumentMeta
	listErr     error
	listCalls   int
	created     domain.DocumentMeta
	createErr   error
	createdName string
	createdMime string
	deleteErr   error
	deleted     []string
}

func (f *fakeDocs) List(_ context.Context) ([]domain.DocumentMeta, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.DocumentMeta, len(f.metas))
	copy(out, f.metas)
	return out, nil
}

func (f *fakeDocs) Create(_ context.Context, filename, mimeType string, _ io.Reader) (domain.DocumentMeta, error) {
	f.createdName = filename
	f.createdMime = mimeType
	if f.createErr != nil {
		return domain.DocumentMeta{}, f.createErr
	}
	f.metas = append(f.metas, f.created)
	return f.created, nil
}

func (f *fakeDocs) Get(_ context.Context, id string) (domain.DocumentMeta, error) {
	for _, meta := range f.metas {
		if meta.ID == id {
			return meta, nil
		}
	}
	return domain.DocumentMeta{}, domain.ErrDocumentNotFound
}

func (f *fakeDocs) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.metas[:0]
	for _, meta := range f.metas {
		if meta.ID != id {
			kept = append(kept, meta)
		}
	}
	f.metas = kept
	return nil
}

type fakeAI struct {
	analysis     domain.Analysis
	analyzeErr   error
	analyzeCalls int
	analyzeHook  func()
	reply        string
	chatErr      error
	chatCalls    int
	requests     []domain.ChatRequest
}

func (f *fakeAI) Analyze(_ context.Context, _ string) (domain.Analysis, error) {
	f.analyzeCalls++
	if f.analyzeHook != nil {
		f.analyzeHook()
	}
	if f.analyzeErr != nil {
		return domain.Analysis{}, f.analyzeErr
	}
	return f.analysis, nil
}

func (f *fakeAI) Chat(_ context.Context, req domain.ChatRequest) (string, error) {
	f.chatCalls++
	f.requests = append(f.requests, req)
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.reply, nil
}

type memSessions struct {
	user    *domain.User
	cleared int
}

func (s *memSessions) ReadSession() (*domain.User, error) {
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *memSessions) WriteSession(user *domain.User) error {
	u := *user
	s.user = &u
	return nil
}

func (s *memSessions) ClearSession() error {
	s.cleared++
	s.user = nil
	return nil
}

type memProfiles struct {
	m map[string]domain.ProfileOverlay
}

func newMemProfiles() *memProfiles {
	return &memProfiles{m: map[string]domain.ProfileOverlay{}}
}

func (s *memProfiles) Profile(userID string) (domain.ProfileOverlay, error) {
	return s.m[userID], nil
}

func (s *memProfiles) SetProfile(userID string, overlay domain.ProfileOverlay) error {
	s.m[userID] = overlay
	return nil
}

type memAnnotations struct {
	m map[string]domain.Annotation
}

func newMemAnnotations() *memAnnotations {
	return &memAnnotations{m: map[string]domain.Annotation{}}
}

func (s *memAnnotations) Annotation(docID string) (domain.Annotation, bool, error) {
	entry, ok := s.m[docID]
	return entry, ok, nil
}

func (s *memAnnotations) SaveAnalysis(docID string, analysis domain.Analysis) error {
	entry := s.m[docID]
	entry.Analysis = &analysis
	s.m[docID] = entry
	return nil
}

func (s *memAnnotations) SaveLastTab(docID string, tab domain.Tab) error {
	entry := s.m[docID]
	entry.LastTab = tab
	s.m[docID] = entry
	return nil
}

func (s *memAnnotations) Remove(docID string) error {
	delete(s.m, docID)
	return nil
}
