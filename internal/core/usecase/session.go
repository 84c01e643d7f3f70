package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/ports"
)

// SessionUseCase resolves and maintains the merged user snapshot: canonical
// identity from the backend, display overlay from the local profile store.
// The overlay never shadows id or email.
type SessionUseCase struct {
	auth     ports.AuthAPI
	sessions ports.SessionStore
	profiles ports.ProfileStore
	log      *slog.Logger
	now      func() time.Time
}

func NewSessionUseCase(
	auth ports.AuthAPI,
	sessions ports.SessionStore,
	profiles ports.ProfileStore,
	log *slog.Logger,
) *SessionUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &SessionUseCase{
		auth:     auth,
		sessions: sessions,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}
}

// Resolve confirms an active backend session and returns the merged user.
// Any backend failure clears the cached snapshot and reports unauthenticated;
// the caller routes to Login.
func (uc *SessionUseCase) Resolve(ctx context.Context) (*domain.User, error) {
	identity, err := uc.auth.CurrentIdentity(ctx)
	if err != nil {
		if clearErr := uc.sessions.ClearSession(); clearErr != nil {
			uc.log.Warn("clear_session", "error", clearErr)
		}
		return nil, domain.WrapError(domain.ErrUnauthenticated, "resolve session", err)
	}
	return uc.assemble(identity)
}

func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	identity, err := uc.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return uc.assemble(identity)
}

// Signup registers the account and seeds the local overlay with the chosen
// display name. The backend stores only id and email.
func (uc *SessionUseCase) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	identity, err := uc.auth.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if name != "" {
		if err := uc.profiles.SetProfile(identity.ID, domain.ProfileOverlay{Name: name}); err != nil {
			return nil, fmt.Errorf("seed profile overlay: %w", err)
		}
	}
	return uc.assemble(identity)
}

// UpdateProfile writes the full overlay locally and refreshes the cached
// snapshot. Profile fields are not backend-persisted.
func (uc *SessionUseCase) UpdateProfile(user domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "update profile", fmt.Errorf("missing user id"))
	}
	if err := uc.profiles.SetProfile(user.ID, user.Overlay()); err != nil {
		return nil, fmt.Errorf("write profile overlay: %w", err)
	}
	return uc.assemble(domain.Identity{ID: user.ID, Email: user.Email})
}

// Logout tells the backend first, then clears local state unconditionally.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	if err := uc.auth.Logout(ctx); err != nil {
		uc.log.Warn("logout_call", "error", err)
	}
	return uc.sessions.ClearSession()
}

// assemble merges overlay onto identity, preferring overlay then the cached
// snapshot then a name derived from the email local-part, and persists the
// result as the new snapshot. JoinedDate survives from the prior snapshot.
func (uc *SessionUseCase) assemble(identity domain.Identity) (*domain.User, error) {
	overlay, err := uc.profiles.Profile(identity.ID)
	if err != nil {
		return nil, fmt.Errorf("read profile overlay: %w", err)
	}
	cached, err := uc.sessions.ReadSession()
	if err != nil {
		return nil, fmt.Errorf("read session snapshot: %w", err)
	}
	if cached != nil && cached.ID != identity.ID {
		cached = nil
	}

	user := domain.User{
		ID:      identity.ID,
		Email:   identity.Email,
		Name:    overlay.Name,
		Company: overlay.Company,
		Role:    overlay.Role,
	}
	if user.Name == "" && cached != nil {
		user.Name = cached.Name
	}
	if user.Name == "" {
		user.Name = domain.InferNameFromEmail(identity.Email)
	}
	if user.Company == "" && cached != nil {
		user.Company = cached.Company
	}
	if user.Role == "" && cached != nil {
		user.Role = cached.Role
	}
	if cached != nil && !cached.JoinedDate.IsZero() {
		user.JoinedDate = cached.JoinedDate
	} else {
		user.JoinedDate = uc.now()
	}

	if err := uc.sessions.WriteSession(&user); err != nil {
		return nil, fmt.Errorf("write session snapshot: %w", err)
	}
	return &user, nil
}
