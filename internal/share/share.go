// Package share is the app's one fallible boundary: handing content to the
// platform. A terminal has no share sheet, so sharing places the message on
// the system clipboard; opening a source link delegates to the OS browser.
package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Sharer hands a message to the platform share capability. Implementations
// report failure; callers log it and move on, no retry.
type Sharer interface {
	Share(message, title string) error
}

// Clipboard shares by copying the message to the system clipboard.
type Clipboard struct{}

func (Clipboard) Share(message, _ string) error {
	if err := clipboard.WriteAll(message); err != nil {
		return fmt.Errorf("copying share message: %w", err)
	}
	return nil
}

// Message builds the share text from the configured template and an article
// title. The template carries a single %s.
func Message(template, title string) string {
	return fmt.Sprintf(template, title)
}

// OpenURL opens an article source in the default browser. Only http and
// https schemes are allowed.
func OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// rundll32 avoids shell interpretation of the URL
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
