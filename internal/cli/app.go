package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mcorbu/shelterdesk/internal/adoption"
	"github.com/mcorbu/shelterdesk/internal/catalog"
	"github.com/mcorbu/shelterdesk/internal/credstore"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/session"
)

// App wires the interactive shell to the core services. It owns no state of
// its own beyond the input reader; session state lives in the Manager.
type App struct {
	sessions *session.Manager
	creds    *credstore.Service
	catalog  *catalog.Service
	adoption *adoption.Service
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(sessions *session.Manager, creds *credstore.Service, cat *catalog.Service, adopt *adoption.Service, log logging.Logger) *App {
	return &App{
		sessions: sessions,
		creds:    creds,
		catalog:  cat,
		adoption: adopt,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Active()
}
