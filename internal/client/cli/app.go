package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/client/config"
	"github.com/joanaapp/joana-cli/internal/client/services"
	"github.com/joanaapp/joana-cli/internal/client/session"
	"github.com/joanaapp/joana-cli/internal/client/storage"
	"github.com/joanaapp/joana-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session manager and domain services behind the REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Manager
	auth     services.AuthService
	users    services.UserService
	media    services.MediaService
	logs     services.LogsService
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, filepath.Join(cfg.DataDir, "session.db"))
	if err != nil {
		return nil, fmt.Errorf("init session storage: %w", err)
	}

	store := session.NewStore(db, log)
	sessions := session.NewManager(store, log)

	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, store, sessions, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		sessions: sessions,
		auth:     services.NewAuthService(apiClient, sessions),
		users:    services.NewUserService(apiClient, sessions),
		media:    services.NewMediaService(apiClient),
		logs:     services.NewLogsService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run initializes the authentication state and drives the REPL until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.sessions.Init(ctx)

	// a rejected session (401 mid-command) drops the user back to the
	// unauthenticated prompt with an explanation
	unsubscribe := a.sessions.Subscribe(a.sessionNotice)
	defer unsubscribe()

	if s := a.sessions.State(); s.Authenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
	return nil
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// sessionNotice tells the user when the server stopped honoring the session.
// A voluntary logout prints its own confirmation and stays silent here.
func (a *App) sessionNotice(s session.State) {
	if s.Revoked {
		fmt.Fprintln(a.out, "Session is no longer valid, please log in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State().Authenticated
}

func (a *App) status() string {
	s := a.sessions.State()
	if s.Authenticated {
		return s.User.Email
	}
	return "not logged in"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
