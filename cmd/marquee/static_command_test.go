package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/screening"
)

func TestStaticCommandGeneratesPage(t *testing.T) {
	cfgPath, cfg := writeTestConfig(t)
	seedCatalog(t, cfg, []screening.Screening{futureScreening("1", "Stalker", "NFT1")})

	target := filepath.Join(t.TempDir(), "site", "calendar.html")
	out, err := runCommand(t, "static", "--config", cfgPath, "--output", target)
	if err != nil {
		t.Fatalf("static failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 screenings") {
		t.Fatalf("summary missing:\n%s", out)
	}

	page, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(page), "Stalker") {
		t.Fatal("generated page missing screening")
	}
	if !strings.Contains(string(page), "<!doctype html>") {
		t.Fatal("generated page is not the calendar template")
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "marquee", "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}

	body, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	if !strings.Contains(string(body), "[site]") {
		t.Fatal("sample config missing site section")
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
