// Package session holds the local authenticated identity: persistence of the
// (token, user) pair and the process-wide authentication state derived from it.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/joanaapp/joana-cli/internal/client/storage"
	"github.com/joanaapp/joana-cli/internal/common"
	"github.com/joanaapp/joana-cli/internal/dbx"
	"github.com/joanaapp/joana-cli/internal/logging"
)

// Storage keys for the two session entries.
const (
	tokenKey = "auth_token"
	userKey  = "user"
)

// Store persists the session pair in the local key/value database.
//
// Reads fail open: any storage error on Token/User is logged and reported as
// "absent", so an unreadable local state degrades to logged-out rather than
// blocking the client. Write and clear failures propagate to the caller.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// SaveToken stores the raw bearer token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := storage.NewSQLiteRepository(s.db).Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("%w: save token: %w", common.ErrStorage, err)
	}
	return nil
}

// Token returns the stored bearer token, or ok=false when absent or unreadable.
func (s *Store) Token(ctx context.Context) (string, bool) {
	value, err := storage.NewSQLiteRepository(s.db).Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token, treating as absent", "error", err)
		return "", false
	}
	if len(value) == 0 {
		return "", false
	}
	return string(value), true
}

// SaveUser stores the user record as JSON.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode user: %w", common.ErrStorage, err)
	}
	if err := storage.NewSQLiteRepository(s.db).Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("%w: save user: %w", common.ErrStorage, err)
	}
	return nil
}

// User returns the stored user record, or ok=false when absent, unreadable,
// or malformed. Persisted records are validated at this boundary: anything
// that does not decode into a User with a non-empty id is rejected.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	value, err := storage.NewSQLiteRepository(s.db).Get(ctx, userKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored user, treating as absent", "error", err)
		return nil, false
	}
	if len(value) == 0 {
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "stored user record is malformed, treating as absent", "error", err)
		return nil, false
	}
	if user.ID == "" {
		s.log.Warn(ctx, "stored user record has no id, treating as absent")
		return nil, false
	}
	return &user, true
}

// SaveSession persists the token and user in a single transaction, so a
// partially written pair is never observed after a successful login.
func (s *Store) SaveSession(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("%w: encode user: %w", common.ErrStorage, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, data)
	})
	if err != nil {
		return fmt.Errorf("%w: save session: %w", common.ErrStorage, err)
	}
	return nil
}

// Clear removes both session entries in a single transaction.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, userKey)
	})
	if err != nil {
		return fmt.Errorf("%w: clear session: %w", common.ErrStorage, err)
	}
	return nil
}
