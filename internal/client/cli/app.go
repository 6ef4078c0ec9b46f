package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/palace/internal/client/client"
	"github.com/dmitrijs2005/palace/internal/client/config"
	"github.com/dmitrijs2005/palace/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/palace/internal/client/services"
	"github.com/dmitrijs2005/palace/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	store   *metadata.SessionStore
	session *services.SessionManager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := metadata.NewSessionStore(db)

	return &App{
		config:  c,
		db:      db,
		store:   store,
		session: services.NewSessionManager(apiClient, store, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.IsAuthenticated() && snap.User != nil {
		return snap.User.Email
	}
	return snap.State.String()
}

// announce prints session transitions as they happen.
func (a *App) announce(s services.Snapshot) {
	switch s.State {
	case services.StateAuthenticated:
		if s.User != nil {
			a.println("Signed in as", s.User.Email)
		}
	case services.StateUnauthenticated:
		a.println("Signed out")
	}
}

// restore resumes the saved session, telling the user when the server could
// not be reached.
func (a *App) restore(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.println("Could not restore session:", err.Error())
		if u, cerr := a.store.CachedUser(ctx); cerr == nil && u != nil {
			a.println("Last signed in as", u.Email, "- try 'login' again later")
		}
	}
}

// Run restores the session and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.println("Welcome to palace CLI (type 'help' for commands)")

	a.restore(ctx)
	unsubscribe := a.session.Subscribe(a.announce)
	defer unsubscribe()

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) Close() error {
	err := a.session.Close()
	if dbErr := a.db.Close(); err == nil {
		err = dbErr
	}
	return err
}
