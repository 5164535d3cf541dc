package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/odontofast/internal/client/bootstrap"
)

// PrereqResources names the catalog loading prerequisite.
const PrereqResources = "resources"

// shown before the catalog is available
const loadingText = "Carregando..."

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Start runs the bootstrap gate and renders the screen it picks.
func (a *App) Start(ctx context.Context) bootstrap.Decision {
	a.println(loadingText)

	b := bootstrap.New(a.session, a.log, bootstrap.WithTimeout(a.config.BootstrapTimeout))
	d := b.Run(ctx, a, bootstrap.Prerequisite{Name: PrereqResources, Load: a.loadResources})

	a.println(a.t("welcome"))
	if d.Route == bootstrap.RouteAuthenticated {
		a.println(a.t("greeting", d.DisplayName))
	}
	return d
}

// Root starts the client and blocks in the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Run is the entry point used by cmd/client.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}()
	a.Root(ctx)
}

var _ bootstrap.Consumer = (*App)(nil)
