package main

import (
	"context"
	"log"

	"github.com/mcorbu/shelterdesk/internal/adoption"
	"github.com/mcorbu/shelterdesk/internal/catalog"
	"github.com/mcorbu/shelterdesk/internal/cli"
	"github.com/mcorbu/shelterdesk/internal/config"
	"github.com/mcorbu/shelterdesk/internal/credstore"
	"github.com/mcorbu/shelterdesk/internal/document"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/session"
	"github.com/mcorbu/shelterdesk/internal/store"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat)

	st, err := store.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer st.Close()

	creds := credstore.NewService(st.Credentials(), logger)
	sessions := session.NewManager(creds, cfg.SessionFile, logger)
	cat := catalog.NewService(st.Animals())
	requests := adoption.NewService(st.Requests(), document.NewTextRenderer(), cfg.DocumentsDir, logger)

	// Revive a previous session, if the persisted record still verifies.
	sessions.Restore(ctx)

	app := cli.NewApp(sessions, creds, cat, requests, logger)
	app.Run(ctx)
}
