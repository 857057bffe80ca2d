package cli

import (
	"errors"
	"os/exec"
	"runtime"
)

// openInBrowser launches the default browser on url.
func openInBrowser(url string) error {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"open"}
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		candidates = []string{"xdg-open", "sensible-browser", "x-www-browser"}
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return exec.Command(c, url).Start()
		}
	}
	return errors.New("no browser opener found")
}
