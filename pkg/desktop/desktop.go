// Package desktop hands text and links over to the user's desktop: the
// system clipboard and the default web browser.
package desktop

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/cli/browser"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Browser opens a URL for the user.
type Browser interface {
	OpenURL(url string) error
}

// SystemClipboard writes to the OS clipboard (pbcopy, xclip/xsel,
// wl-copy or the Windows API, whichever is available).
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard tool found (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// SystemBrowser opens URLs in the default browser. Output from the
// launcher is discarded so it cannot corrupt a running TUI.
type SystemBrowser struct{}

// OpenURL opens url in the default browser.
func (SystemBrowser) OpenURL(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Target names what was handed off, for acknowledgement messages.
type Target string

const (
	TargetSecret Target = "Secret"
	TargetLink   Target = "Deploy link"
)

// CopiedMessage returns the acknowledgement shown after a copy attempt.
func CopiedMessage(what Target, err error) string {
	if err != nil {
		return fmt.Sprintf("Copy failed: %v", err)
	}
	switch what {
	case TargetSecret:
		return "Secret copied. Paste it into PAYLOAD_SECRET on the provider."
	case TargetLink:
		return "Link copied!"
	default:
		return string(what) + " copied to clipboard"
	}
}
