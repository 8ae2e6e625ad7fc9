package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/joanaapp/joana-cli/internal/client/session"
	"github.com/joanaapp/joana-cli/internal/client/storage"
	"github.com/joanaapp/joana-cli/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// fakeRequester implements api.Requester for unit tests. Canned JSON bodies
// are decoded into out; the last call's arguments are recorded for assertions.
type fakeRequester struct {
	GetBody       string
	PostBody      string
	PutBody       string
	MultipartBody string

	GetErr       error
	PostErr      error
	PutErr       error
	DeleteErr    error
	MultipartErr error

	LastMethod   string
	LastPath     string
	LastIn       any
	LastField    string
	LastFileName string
	LastMime     string
	LastContent  []byte
}

func (f *fakeRequester) GetJSON(ctx context.Context, path string, out any) error {
	f.LastMethod, f.LastPath = "GET", path
	if f.GetErr != nil {
		return f.GetErr
	}
	return fill(f.GetBody, out)
}

func (f *fakeRequester) PostJSON(ctx context.Context, path string, in any, out any) error {
	f.LastMethod, f.LastPath, f.LastIn = "POST", path, in
	if f.PostErr != nil {
		return f.PostErr
	}
	return fill(f.PostBody, out)
}

func (f *fakeRequester) PutJSON(ctx context.Context, path string, in any, out any) error {
	f.LastMethod, f.LastPath, f.LastIn = "PUT", path, in
	if f.PutErr != nil {
		return f.PutErr
	}
	return fill(f.PutBody, out)
}

func (f *fakeRequester) Delete(ctx context.Context, path string) error {
	f.LastMethod, f.LastPath = "DELETE", path
	return f.DeleteErr
}

func (f *fakeRequester) PostMultipart(ctx context.Context, path string, field string, fileName string, mimeType string, r io.Reader, out any) error {
	f.LastMethod, f.LastPath = "POST", path
	f.LastField, f.LastFileName, f.LastMime = field, fileName, mimeType
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.LastContent = content
	if f.MultipartErr != nil {
		return f.MultipartErr
	}
	return fill(f.MultipartBody, out)
}

func fill(body string, out any) error {
	if body == "" || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestManager builds a session manager over a throwaway sqlite database.
func newTestManager(t *testing.T) (*session.Manager, *session.Store) {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db, testLogger())
	m := session.NewManager(store, testLogger())
	m.Init(context.Background())
	return m, store
}
