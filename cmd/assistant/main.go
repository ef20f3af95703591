package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/logger"
	"gitlab.com/dirk.krummacker/assistant/internal/storage"
)

// Usage example on the command line:
// > go run main.go
// > ASSISTANT_STORAGE_DRIVER=mysql DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
// > go run main.go -config=assistant.yaml
func main() {
	configFile := flag.String("config", "", "the configuration file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, logging and storage and runs the session until it ends.
func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer log.Close()

	repo, err := storage.Open(cfg.Storage)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	contacts, err := repo.LoadContacts(ctx)
	if err != nil {
		return err
	}
	notes, err := repo.LoadNotes(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Str("driver", cfg.Storage.Driver).
		Int("contacts", contacts.Len()).
		Int("notes", notes.Len()).
		Msg("collections loaded")

	a := assistant.New(contacts, notes, repo, assistant.Options{
		Prompt:              cfg.UI.Prompt,
		SuggestionThreshold: cfg.UI.SuggestionThreshold,
		NoColor:             !cfg.UI.Color,
		Logger:              &log.Logger,
	})
	return a.Run(ctx, os.Stdin, os.Stdout)
}
