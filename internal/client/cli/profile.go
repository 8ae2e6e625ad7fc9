package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/joanaapp/joana-cli/internal/client/services"
	"github.com/joanaapp/joana-cli/internal/common"
)

// Profile fetches and prints the current profile from the server.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.users.Me(ctx)
	if err != nil {
		return opError("profile", err)
	}

	a.printf("Name:     %s\n", user.Name)
	a.printf("Email:    %s\n", user.Email)
	if user.Birthday != nil {
		a.printf("Birthday: %s\n", *user.Birthday)
	}
	if user.AvatarURL != nil {
		a.printf("Avatar:   %s\n", *user.AvatarURL)
	}
	return nil
}

// UpdateProfile prompts for the editable fields; an empty answer keeps the
// current value. Fields left empty are omitted from the request so the
// server leaves them unchanged.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	birthday, err := getSimpleText(a.reader, "New birthday YYYY-MM-DD (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var req services.UpdateRequest
	if name != "" {
		req.Name = &name
	}
	if email != "" {
		if !looksLikeEmail(email) {
			return fmt.Errorf("%w: invalid email address", common.ErrValidation)
		}
		req.Email = &email
	}
	if birthday != "" {
		req.Birthday = &birthday
	}
	if req.Name == nil && req.Email == nil && req.Birthday == nil {
		a.printf("Nothing to update.\n")
		return nil
	}

	user, err := a.users.Update(ctx, req)
	if err != nil {
		return opError("update", err)
	}
	a.printf("Profile updated for %s.\n", user.Email)
	return nil
}

// UploadAvatar prompts for a local image file and sends it as the new avatar.
func (a *App) UploadAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to image file", a.out)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	name := filepath.Base(path)
	user, err := a.users.UploadAvatar(ctx, file, name, mimeTypeOf(name))
	if err != nil {
		return opError("avatar", err)
	}

	a.printf("Avatar updated.\n")
	if user.AvatarURL != nil {
		a.printf("%s\n", *user.AvatarURL)
	}
	return nil
}

func mimeTypeOf(fileName string) string {
	if t := mime.TypeByExtension(filepath.Ext(fileName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
