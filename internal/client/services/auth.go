// Package services contains the typed, stateless facades over the Joana REST
// API. Each service wraps one area of the API; request/response shaping lives
// here, input validation lives in the caller.
package services

import (
	"context"
	"fmt"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/joanaapp/joana-cli/internal/client/session"
)

// RegisterRequest is the payload for account creation. All fields are
// required; the caller validates before invoking the service.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Birthday string `json:"birthday"`
}

// AuthService handles account creation and session lifecycle.
type AuthService interface {
	// Register creates an account and establishes the returned session.
	Register(ctx context.Context, req RegisterRequest) (*models.Session, error)

	// Login authenticates and establishes the returned session.
	Login(ctx context.Context, email string, password string) (*models.Session, error)

	// Logout clears the local session only. The API exposes no invalidation
	// endpoint, so the server-side token remains valid until it expires;
	// TokenExpiry on the session manager tells the user how long that is.
	Logout(ctx context.Context) error
}

type authService struct {
	api      api.Requester
	sessions *session.Manager
}

// NewAuthService constructs an AuthService bound to the given pipeline and
// session manager.
func NewAuthService(requester api.Requester, sessions *session.Manager) AuthService {
	return &authService{api: requester, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *authService) Register(ctx context.Context, req RegisterRequest) (*models.Session, error) {
	var sess models.Session
	if err := a.api.PostJSON(ctx, "/auth/register", req, &sess); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return a.establish(ctx, &sess)
}

func (a *authService) Login(ctx context.Context, email string, password string) (*models.Session, error) {
	var sess models.Session
	if err := a.api.PostJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &sess); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return a.establish(ctx, &sess)
}

func (a *authService) establish(ctx context.Context, sess *models.Session) (*models.Session, error) {
	if !sess.Valid() {
		return nil, fmt.Errorf("server returned an incomplete session")
	}
	if err := a.sessions.Establish(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}
