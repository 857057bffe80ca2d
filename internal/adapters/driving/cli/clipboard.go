package cli

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/permalink-cli/permalink/internal/logger"
)

// copyToClipboard writes s to the system clipboard.
func copyToClipboard(s string) error {
	err := clipboard.WriteAll(s)
	if err == nil {
		return nil
	}
	logger.Warn("clipboard write failed: %v", err)

	// fallback for Wayland
	if runtime.GOOS == "linux" {
		if err := exec.Command("wl-copy", s).Run(); err == nil {
			return nil
		}
	}
	return errors.New("clipboard unavailable")
}
