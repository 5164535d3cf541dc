package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/odontofast/internal/client/bootstrap"
	"github.com/dmitrijs2005/odontofast/internal/client/client"
	"github.com/dmitrijs2005/odontofast/internal/client/config"
	"github.com/dmitrijs2005/odontofast/internal/client/repositories/session"
	"github.com/dmitrijs2005/odontofast/internal/client/services"
	"github.com/dmitrijs2005/odontofast/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It doubles as the bootstrap consumer: the
// gate tells it when loading is over and which screen to open.
type App struct {
	config  *config.Config
	session services.SessionService
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer

	mu       sync.Mutex
	msgs     Catalog
	userName string
}

// NewApp opens the session store and wires the HTTP client and session
// service. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, db, err := openStore(ctx, c, log)
	if err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	svc := services.NewSessionService(apiClient, store, log)

	a := newApp(c, svc, log, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

// openStore returns the sqlite-backed store, or a MemoryStore and a nil DB
// in ephemeral mode.
func openStore(ctx context.Context, c *config.Config, log logging.Logger) (session.Store, *sql.DB, error) {
	if c.Ephemeral {
		log.Info(ctx, "ephemeral mode, session kept in memory")
		return session.NewMemoryStore(), nil, nil
	}

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, nil, err
	}
	return session.NewSQLiteStore(db), db, nil
}

func newApp(c *config.Config, svc services.SessionService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		session: svc,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// loadResources is the "resources" bootstrap prerequisite.
func (a *App) loadResources(ctx context.Context) error {
	c, err := LoadCatalog(DefaultLocale)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.msgs = c
	a.mu.Unlock()
	return nil
}

// HideLoading has nothing to tear down: the loading line is not redrawn.
func (a *App) HideLoading() {
	a.log.Debug(context.Background(), "startup prerequisites done")
}

func (a *App) ShowRoute(d bootstrap.Decision) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if d.Route == bootstrap.RouteAuthenticated {
		a.userName = d.DisplayName
	} else {
		a.userName = ""
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) t(key string, args ...any) string {
	a.mu.Lock()
	msgs := a.msgs
	a.mu.Unlock()
	return msgs.T(key, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
