package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/devserver"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

func main() {
	log := logger.NewLogger("devserver")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	srv := devserver.New(devserver.Config{
		Project: cfg.Devserver.Project,
		APIKey:  cfg.Devserver.APIKey,
		Logger:  log,
	})

	if cfg.Devserver.EntriesFile != "" {
		entries, err := loadEntries(cfg.Devserver.EntriesFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Devserver.EntriesFile).Msg("failed to load entries file")
		}
		srv.SetEntries(entries)
	}

	log.Info().
		Str("address", cfg.Devserver.Address).
		Str("project", cfg.Devserver.Project).
		Msg("devserver listening")

	if err = http.ListenAndServe(cfg.Devserver.Address, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
	}
}

// loadEntries reads a JSON file shaped namespace → key → value.
func loadEntries(path string) (models.RemoteEntries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries models.RemoteEntries
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
