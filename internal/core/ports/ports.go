package ports

import (
	"context"
	"io"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

// AuthAPI is the backend auth resource group. Session credentials travel in
// an ambient cookie managed by the gateway, never in application state.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Register(ctx context.Context, email, password string) (domain.Identity, error)
	CurrentIdentity(ctx context.Context) (domain.Identity, error)
	Logout(ctx context.Context) error
}

// DocumentAPI is the backend document resource group.
type DocumentAPI interface {
	List(ctx context.Context) ([]domain.DocumentMeta, error)
	Create(ctx context.Context, filename, mimeType string, body io.Reader) (domain.DocumentMeta, error)
	Get(ctx context.Context, id string) (domain.DocumentMeta, error)
	Delete(ctx context.Context, id string) error
}

// AnalysisAPI is the backend AI resource group. All calls are single-attempt;
// failures surface once to the caller.
type AnalysisAPI interface {
	Analyze(ctx context.Context, documentID string) (domain.Analysis, error)
	Chat(ctx context.Context, req domain.ChatRequest) (string, error)
}

// SessionStore persists the merged user snapshot locally. Reads return
// (nil, nil) when no snapshot exists.
type SessionStore interface {
	ReadSession() (*domain.User, error)
	WriteSession(user *domain.User) error
	ClearSession() error
}

// ProfileStore persists per-user profile overlays, last-write-wins.
type ProfileStore interface {
	Profile(userID string) (domain.ProfileOverlay, error)
	SetProfile(userID string, overlay domain.ProfileOverlay) error
}

// AnnotationStore persists per-document display annotations,
// last-write-wins, no versioning.
type AnnotationStore interface {
	Annotation(docID string) (domain.Annotation, bool, error)
	SaveAnalysis(docID string, analysis domain.Analysis) error
	SaveLastTab(docID string, tab domain.Tab) error
	Remove(docID string) error
}
