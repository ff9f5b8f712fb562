package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-berzerk/internal/core"
)

const screenshotStamp = "20060102_150405"

// defaultScreenshotDir is ~/.berzerk/screenshots.
func defaultScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}
	return filepath.Join(home, ".berzerk", "screenshots"), nil
}

// writeScreenshot stores the plain text of s as <id>_<timestamp>.txt in
// dir and returns the file path.
func writeScreenshot(dir, id string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	path := filepath.Join(dir, id+"_"+at.Format(screenshotStamp)+".txt")
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}
