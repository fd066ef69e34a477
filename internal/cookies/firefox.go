package cookies

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// profileBaseDir returns the platform directory Firefox keeps profiles in.
func profileBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "linux":
		return filepath.Join(home, ".mozilla", "firefox"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("%w: APPDATA is not set", ErrProfileNotFound)
		}
		return filepath.Join(appData, "Mozilla", "Firefox", "Profiles"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// DefaultProfileDir locates the default Firefox profile for the current user.
// Profiles named *.default-release are preferred; otherwise the first
// directory containing "default" wins.
func DefaultProfileDir(logger *slog.Logger) (string, error) {
	base, err := profileBaseDir()
	if err != nil {
		return "", err
	}
	return findProfileDir(base, logger)
}

func findProfileDir(base string, logger *slog.Logger) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not readable", ErrProfileNotFound, base)
	}

	var profiles []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Name()), "default") {
			profiles = append(profiles, entry.Name())
		}
	}
	sort.Strings(profiles)

	for _, name := range profiles {
		if strings.Contains(name, ".default-release") {
			logger.Debug("selected firefox profile", "profile", name)
			return filepath.Join(base, name), nil
		}
	}
	if len(profiles) > 0 {
		logger.Debug("selected firefox profile", "profile", profiles[0])
		return filepath.Join(base, profiles[0]), nil
	}

	return "", fmt.Errorf("%w: no profile directories under %s", ErrProfileNotFound, base)
}
