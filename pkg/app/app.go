// Package app provides the full-screen TUI for the deployment wizard.
// It follows the Bubble Tea architecture with one phase handler per step.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phases"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// messageTTL is how long a copy/open acknowledgement stays on screen.
const messageTTL = 3 * time.Second

// clearMessageMsg clears the status line if no newer message replaced it.
type clearMessageMsg struct {
	seq int
}

// Options configures a Model.
type Options struct {
	State     *wizard.State
	Template  config.Template
	Clipboard desktop.Clipboard
	Browser   desktop.Browser
}

// Model is the main application model.
type Model struct {
	ctx      *phase.Context
	registry *phases.Registry
	current  wizard.Step

	width    int
	height   int
	quitting bool

	// messageSeq identifies the latest transient message
	messageSeq int
}

// New creates a new application model.
func New(opts Options) Model {
	if opts.State == nil {
		opts.State = wizard.NewState(opts.Template.DefaultProjectName)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = desktop.SystemClipboard{}
	}
	if opts.Browser == nil {
		opts.Browser = desktop.SystemBrowser{}
	}

	return Model{
		ctx:      phase.NewContext(opts.State, opts.Template, opts.Clipboard, opts.Browser),
		registry: phases.NewRegistry(),
		current:  opts.State.Step,
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) (*wizard.State, error) {
	m := New(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return nil, err
	}
	return m.ctx.State, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if h := m.handler(); h != nil {
		return h.Init(m.ctx)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctx.Width = msg.Width
		return m, nil

	case phase.HandoffMsg:
		if msg.Err != nil {
			m.ctx.SetError(msg.Text())
		} else {
			m.ctx.SetMessage(msg.Text())
		}
		m.messageSeq++
		seq := m.messageSeq
		return m, tea.Tick(messageTTL, func(time.Time) tea.Msg {
			return clearMessageMsg{seq: seq}
		})

	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.ctx.ClearMessage()
		}
		return m, nil
	}

	// Forward everything else (cursor blink etc.) to the step's inputs
	var cmds []tea.Cmd
	for name, ti := range m.ctx.Inputs {
		var cmd tea.Cmd
		ti, cmd = ti.Update(msg)
		m.ctx.Inputs[name] = ti
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes key events.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit
	if key.Matches(msg, keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	h := m.handler()
	if h == nil {
		return m, nil
	}

	// When text input is focused, leave printable keys to the input
	if !h.HasFocusedInput() && key.Matches(msg, keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	cmd := h.Update(m.ctx, msg)
	return m.syncStep(cmd)
}

// syncStep initializes the new handler after a step transition.
func (m Model) syncStep(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.ctx.State.Step == m.current {
		return m, cmd
	}

	m.current = m.ctx.State.Step
	m.ctx.Inputs = make(map[string]textinput.Model)
	if h := m.handler(); h != nil {
		return m, tea.Batch(cmd, h.Init(m.ctx))
	}
	return m, cmd
}

// handler returns the handler for the current step.
func (m Model) handler() phase.Handler {
	return m.registry.Get(m.current)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	header := renderHeader(m.ctx.State, m.width)
	content := m.renderContent()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderContent renders the active step's content and status line.
func (m Model) renderContent() string {
	h := m.handler()
	if h == nil {
		return ""
	}

	content := h.View(m.ctx)
	if status := phase.RenderStatus(m.ctx); status != "" {
		content += "\n" + status
	}

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	return contentStyle.
		Height(contentHeight).
		Width(m.width).
		Render(content)
}

// renderFooter renders the footer with keybindings.
func (m Model) renderFooter() string {
	h := m.handler()
	if h == nil {
		return renderFooter(nil, GlobalBindings(false), m.width)
	}
	return renderFooter(h.KeyBindings(), GlobalBindings(h.HasFocusedInput()), m.width)
}

// State returns the wizard state driven by the model.
func (m Model) State() *wizard.State {
	return m.ctx.State
}

// Step returns the step currently on screen.
func (m Model) Step() wizard.Step {
	return m.current
}

// Message returns the current status line text.
func (m Model) Message() string {
	return m.ctx.Message
}
