package services

import (
	"context"
	"fmt"
	"io"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/joanaapp/joana-cli/internal/client/session"
)

// UpdateRequest carries the profile fields to change. Nil fields are omitted
// from the request and left unchanged server-side.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
}

// UserService wraps the profile endpoints.
type UserService interface {
	Me(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, req UpdateRequest) (*models.User, error)

	// UploadAvatar sends the file as multipart form data under the "avatar"
	// field and returns the updated user record.
	UploadAvatar(ctx context.Context, r io.Reader, fileName string, mimeType string) (*models.User, error)
}

type userService struct {
	api      api.Requester
	sessions *session.Manager
}

func NewUserService(requester api.Requester, sessions *session.Manager) UserService {
	return &userService{api: requester, sessions: sessions}
}

// userResponse is the {"user": ...} envelope all profile endpoints use.
type userResponse struct {
	User models.User `json:"user"`
}

func (u *userService) Me(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := u.api.GetJSON(ctx, "/users/me", &resp); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return u.cache(ctx, &resp.User)
}

func (u *userService) Update(ctx context.Context, req UpdateRequest) (*models.User, error) {
	var resp userResponse
	if err := u.api.PutJSON(ctx, "/users/me", req, &resp); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u.cache(ctx, &resp.User)
}

func (u *userService) UploadAvatar(ctx context.Context, r io.Reader, fileName string, mimeType string) (*models.User, error) {
	var resp userResponse
	if err := u.api.PostMultipart(ctx, "/users/me/avatar", "avatar", fileName, mimeType, r, &resp); err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}
	return u.cache(ctx, &resp.User)
}

// cache re-persists the fresh user record so the stored copy tracks the
// server. A persistence failure does not discard the fetched record.
func (u *userService) cache(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("server returned an incomplete user record")
	}
	if err := u.sessions.SetUser(ctx, user); err != nil {
		return user, err
	}
	return user, nil
}
