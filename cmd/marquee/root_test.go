package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marquee/internal/config"
	"marquee/internal/screening"
)

// writeTestConfig lays down a config file rooted in a temp directory and
// returns its path alongside the loaded config.
func writeTestConfig(t *testing.T) (string, *config.Config) {
	t.Helper()

	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.toml")
	body := fmt.Sprintf("[paths]\ndata_dir = %q\nlog_dir = %q\n",
		filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return cfgPath, cfg
}

func seedCatalog(t *testing.T, cfg *config.Config, items []screening.Screening) {
	t.Helper()
	if err := screening.Save(cfg.CatalogPath(), items, time.Now()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func futureScreening(id, title, venue string) screening.Screening {
	return screening.Screening{
		ID:           id,
		Title:        title,
		DateTime:     time.Now().Add(48 * time.Hour).Truncate(time.Second),
		Venue:        screening.Venue{ID: "v-" + id, Name: venue, ShortName: venue},
		Availability: screening.AvailabilityGood,
		Sales:        screening.SalesOnSale,
	}
}
