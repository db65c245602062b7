// Package phase provides the building blocks shared by the TUI's step
// screens: the Handler interface, the Context passed to every handler,
// field rendering and styles.
package phase

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Handler represents one wizard step that handles its own input and rendering.
type Handler interface {
	// Step returns the wizard step this handler renders
	Step() wizard.Step

	// Init prepares input state when the step is entered.
	Init(ctx *Context) tea.Cmd

	// Update handles keyboard input. Step transitions go through ctx.State.
	Update(ctx *Context, msg tea.KeyMsg) tea.Cmd

	// View renders the step content
	View(ctx *Context) string

	// KeyBindings returns the context-sensitive key bindings for the footer.
	KeyBindings() []string

	// HasFocusedInput returns true while a text input owns the keyboard.
	// The model then leaves printable keys (like "q") to the handler.
	HasFocusedInput() bool
}

// Context provides dependencies and shared state to handlers.
// This decouples handlers from the Model and makes them independently testable.
type Context struct {
	// State is the wizard state machine
	State *wizard.State

	// Template describes what is being deployed
	Template config.Template

	// Clipboard and Browser are the desktop hand-off targets
	Clipboard desktop.Clipboard
	Browser   desktop.Browser

	// Text inputs owned by the current step
	Inputs map[string]textinput.Model

	// Status line shown under the step content
	Message      string
	MessageIsErr bool

	// Width available for content
	Width int
}

// NewContext creates a Context for state.
func NewContext(state *wizard.State, tpl config.Template, cb desktop.Clipboard, br desktop.Browser) *Context {
	return &Context{
		State:     state,
		Template:  tpl,
		Clipboard: cb,
		Browser:   br,
		Inputs:    make(map[string]textinput.Model),
	}
}

// SetMessage sets an informational status message.
func (c *Context) SetMessage(msg string) {
	c.Message = msg
	c.MessageIsErr = false
}

// SetError sets an error status message.
func (c *Context) SetError(msg string) {
	c.Message = msg
	c.MessageIsErr = true
}

// ClearMessage removes the status message.
func (c *Context) ClearMessage() {
	c.Message = ""
	c.MessageIsErr = false
}

// BaseHandler provides common functionality for handlers.
// Embed this in handler implementations to get default behaviors.
type BaseHandler struct {
	step wizard.Step
}

// NewBaseHandler creates a new BaseHandler for step.
func NewBaseHandler(step wizard.Step) BaseHandler {
	return BaseHandler{step: step}
}

// Step returns the wizard step.
func (h *BaseHandler) Step() wizard.Step {
	return h.step
}

// HasFocusedInput returns false by default (no text input focused).
func (h *BaseHandler) HasFocusedInput() bool {
	return false
}

// HandleTextInput updates the named text input with the key message.
func HandleTextInput(ctx *Context, inputName string, msg tea.KeyMsg) tea.Cmd {
	if ti, ok := ctx.Inputs[inputName]; ok {
		var cmd tea.Cmd
		ti, cmd = ti.Update(msg)
		ctx.Inputs[inputName] = ti
		return cmd
	}
	return nil
}

// InputValue gets the value of a text input
func InputValue(ctx *Context, inputName string) string {
	if ti, ok := ctx.Inputs[inputName]; ok {
		return ti.Value()
	}
	return ""
}

// SetInputValue sets the value of a text input
func SetInputValue(ctx *Context, inputName, value string) {
	if ti, ok := ctx.Inputs[inputName]; ok {
		ti.SetValue(value)
		ctx.Inputs[inputName] = ti
	}
}
