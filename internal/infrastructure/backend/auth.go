package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

// userPayload covers both shapes the backend emits: login/register return
// {id,email}, /auth/me returns {userId,email}. Anything else is rejected.
type userPayload struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type userEnvelope struct {
	User userPayload `json:"user"`
}

func (p userPayload) normalize() (domain.Identity, error) {
	id := p.UserID
	if id == "" {
		id = p.ID
	}
	if id == "" || p.Email == "" {
		return domain.Identity{}, fmt.Errorf("user payload missing id or email")
	}
	return domain.Identity{ID: id, Email: p.Email}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (identity domain.Identity, err error) {
	defer func(start time.Time) { c.finish("auth.login", start, err) }(time.Now())

	var envelope userEnvelope
	err = c.doJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &envelope, "login")
	if err != nil {
		err = wrapCall("login", err, map[int]error{
			http.StatusBadRequest:   domain.ErrInvalidCredentials,
			http.StatusUnauthorized: domain.ErrInvalidCredentials,
		}, domain.ErrServer)
		return domain.Identity{}, err
	}

	identity, normErr := envelope.User.normalize()
	if normErr != nil {
		err = domain.WrapError(domain.ErrBadPayload, "login", normErr)
		return domain.Identity{}, err
	}
	return identity, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (identity domain.Identity, err error) {
	defer func(start time.Time) { c.finish("auth.register", start, err) }(time.Now())

	var envelope userEnvelope
	err = c.doJSON(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, &envelope, "register")
	if err != nil {
		err = wrapCall("register", err, map[int]error{
			http.StatusBadRequest: domain.ErrRegistration,
			http.StatusConflict:   domain.ErrRegistration,
		}, domain.ErrServer)
		return domain.Identity{}, err
	}

	identity, normErr := envelope.User.normalize()
	if normErr != nil {
		err = domain.WrapError(domain.ErrBadPayload, "register", normErr)
		return domain.Identity{}, err
	}
	return identity, nil
}

func (c *Client) CurrentIdentity(ctx context.Context) (identity domain.Identity, err error) {
	defer func(start time.Time) { c.finish("auth.me", start, err) }(time.Now())

	var envelope userEnvelope
	err = c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &envelope, "current identity")
	if err != nil {
		err = wrapCall("current identity", err, map[int]error{
			http.StatusUnauthorized: domain.ErrUnauthenticated,
			http.StatusForbidden:    domain.ErrUnauthenticated,
		}, domain.ErrServer)
		return domain.Identity{}, err
	}

	identity, normErr := envelope.User.normalize()
	if normErr != nil {
		err = domain.WrapError(domain.ErrBadPayload, "current identity", normErr)
		return domain.Identity{}, err
	}
	return identity, nil
}

func (c *Client) Logout(ctx context.Context) (err error) {
	defer func(start time.Time) { c.finish("auth.logout", start, err) }(time.Now())

	err = c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, "logout")
	if err != nil {
		err = wrapCall("logout", err, nil, domain.ErrServer)
	}
	return err
}
