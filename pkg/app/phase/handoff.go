package phase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
)

// Action is a desktop hand-off action.
type Action int

const (
	ActionCopy Action = iota
	ActionOpen
)

// HandoffMsg reports the result of a clipboard write or browser launch.
type HandoffMsg struct {
	Action Action
	Target desktop.Target
	Err    error
}

// Text returns the acknowledgement for the status line.
func (m HandoffMsg) Text() string {
	if m.Action == ActionOpen {
		if m.Err != nil {
			return "Could not open browser: " + m.Err.Error()
		}
		return "Opened the deployment page in your browser"
	}
	return desktop.CopiedMessage(m.Target, m.Err)
}

// Copy returns a command that writes text to the clipboard off the update loop.
func Copy(cb desktop.Clipboard, target desktop.Target, text string) tea.Cmd {
	return func() tea.Msg {
		return HandoffMsg{Action: ActionCopy, Target: target, Err: cb.WriteAll(text)}
	}
}

// Open returns a command that opens url in the browser.
func Open(br desktop.Browser, url string) tea.Cmd {
	return func() tea.Msg {
		return HandoffMsg{Action: ActionOpen, Target: desktop.TargetLink, Err: br.OpenURL(url)}
	}
}
