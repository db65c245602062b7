package app

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

const testSecret = "0123456789abcdefghijklmnop"

func newTestModel(t *testing.T) (Model, *desktop.Recorder) {
	t.Helper()
	rec := &desktop.Recorder{}
	m := New(Options{
		State:     wizard.NewStateWithSecret(config.DefaultProjectName, testSecret),
		Template:  config.Default(),
		Clipboard: rec,
		Browser:   rec,
	})
	m.Init()
	return m, rec
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, wizard.StepName, m.Step())
	assert.Equal(t, config.DefaultProjectName, m.State().ProjectName)
	assert.Equal(t, testSecret, m.State().Secret)
	assert.False(t, m.quitting)
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{Template: config.Default()})

	require.NotNil(t, m.State())
	assert.Equal(t, wizard.StepName, m.State().Step)
	assert.Equal(t, config.DefaultProjectName, m.State().ProjectName)
	assert.Len(t, m.State().Secret, wizard.SecretLength)
}

func TestModel_Init(t *testing.T) {
	m, _ := newTestModel(t)

	// Name step owns a focused text input
	_, ok := m.ctx.Inputs["project_name"]
	assert.True(t, ok)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.ctx.Width)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ForceQuitFollowsKeyMap(t *testing.T) {
	saved := keys
	t.Cleanup(func() { keys = saved })
	keys.ForceQuit = key.NewBinding(key.WithKeys("ctrl+d"))

	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, m.quitting)

	m, _ = newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, m.quitting)
}

func TestModel_QTypesIntoFocusedInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("q"))

	assert.False(t, m.quitting)
	assert.Equal(t, config.DefaultProjectName+"q", m.State().ProjectName)
}

func TestModel_QQuitsWithoutFocusedInput(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, wizard.StepDatabase, m.Step())

	m, _ = update(t, m, keyRunes("q"))

	assert.True(t, m.quitting)
}

func TestModel_FullFlow(t *testing.T) {
	m, rec := newTestModel(t)

	// Step 1 -> 2
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, wizard.StepDatabase, m.Step())

	// Copy secret
	m, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, testSecret, rec.LastCopied())
	assert.Contains(t, m.Message(), "copied")

	// Step 2 -> 3
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, wizard.StepDeploy, m.Step())

	// Copy link
	m, cmd = update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, deploylink.Build(m.State(), config.Default()), rec.LastCopied())

	// Restart keeps name and secret
	m, _ = update(t, m, keyRunes("r"))
	assert.Equal(t, wizard.StepName, m.Step())
	assert.Equal(t, config.DefaultProjectName, m.State().ProjectName)
	assert.Equal(t, testSecret, m.State().Secret)
}

func TestModel_ShortNameBlocksAdvance(t *testing.T) {
	m, _ := newTestModel(t)
	m.ctx.State.SetProjectName("ab")
	phase.SetInputValue(m.ctx, "project_name", "ab")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, wizard.StepName, m.Step())
	assert.True(t, m.ctx.MessageIsErr)
}

func TestModel_Retreat(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, wizard.StepDatabase, m.Step())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, wizard.StepName, m.Step())
	assert.Equal(t, config.DefaultProjectName, phase.InputValue(m.ctx, "project_name"))
}

func TestModel_HandoffMessageClears(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, phase.HandoffMsg{Action: phase.ActionCopy, Target: desktop.TargetSecret})
	require.NotNil(t, cmd)
	assert.NotEmpty(t, m.Message())
	assert.Equal(t, 1, m.messageSeq)

	// A stale clear does nothing
	m, _ = update(t, m, phase.HandoffMsg{Action: phase.ActionCopy, Target: desktop.TargetLink})
	m, _ = update(t, m, clearMessageMsg{seq: 1})
	assert.NotEmpty(t, m.Message())

	m, _ = update(t, m, clearMessageMsg{seq: 2})
	assert.Empty(t, m.Message())
}

func TestModel_HandoffError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, phase.HandoffMsg{Action: phase.ActionOpen, Err: errors.New("no display")})

	assert.True(t, m.ctx.MessageIsErr)
	assert.Contains(t, m.Message(), "no display")
}

func TestModel_View(t *testing.T) {
	t.Run("loading before size", func(t *testing.T) {
		m, _ := newTestModel(t)
		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("renders header and footer", func(t *testing.T) {
		m, _ := newTestModel(t)
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

		view := m.View()
		assert.Contains(t, view, "paydeploy")
		assert.Contains(t, view, "step 1/3")
		assert.Contains(t, view, "Ctrl+C")
	})

	t.Run("empty when quitting", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.quitting = true
		assert.Empty(t, m.View())
	})
}
