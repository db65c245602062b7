package phases

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

func newTestContext(name string) (*phase.Context, *desktop.Recorder) {
	rec := &desktop.Recorder{}
	state := wizard.NewStateWithSecret(name, "testsecret")
	return phase.NewContext(state, config.Default(), rec, rec), rec
}

// Helper to create a key message
func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(s),
	}
}

func specialKeyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// run executes cmd and feeds nothing back; returns the produced message.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestNamePhase_Init(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("My-Payload-Blog")

	p.Init(ctx)

	assert.Contains(t, ctx.Inputs, InputProjectName)
	assert.Equal(t, "My-Payload-Blog", ctx.Inputs[InputProjectName].Value())
	assert.True(t, ctx.Inputs[InputProjectName].Focused())
	assert.True(t, p.HasFocusedInput())
	assert.Equal(t, wizard.StepName, p.Step())
}

func TestNamePhase_Update_TypingSanitizes(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("")
	p.Init(ctx)

	p.Update(ctx, keyMsg("My"))
	p.Update(ctx, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	p.Update(ctx, keyMsg("Blog!!"))

	assert.Equal(t, "My-Blog--", phase.InputValue(ctx, InputProjectName))
	assert.Equal(t, "My-Blog--", ctx.State.ProjectName)
}

func TestNamePhase_Update_EnterTooShort(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("")
	p.Init(ctx)
	p.Update(ctx, keyMsg("ab"))

	p.Update(ctx, specialKeyMsg(tea.KeyEnter))

	assert.Equal(t, wizard.StepName, ctx.State.Step)
	assert.True(t, ctx.MessageIsErr)
	assert.Contains(t, ctx.Message, "at least 3 characters")
}

func TestNamePhase_Update_ErrorClearsOnceValid(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("")
	p.Init(ctx)
	p.Update(ctx, keyMsg("ab"))
	p.Update(ctx, specialKeyMsg(tea.KeyEnter))
	require.True(t, ctx.MessageIsErr)

	p.Update(ctx, keyMsg("c"))

	assert.Empty(t, ctx.Message)
}

func TestNamePhase_Update_EnterAdvances(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("")
	p.Init(ctx)
	p.Update(ctx, keyMsg("my-blog"))

	p.Update(ctx, specialKeyMsg(tea.KeyEnter))

	assert.Equal(t, wizard.StepDatabase, ctx.State.Step)
	assert.Equal(t, "my-blog", ctx.State.ProjectName)
	assert.Empty(t, ctx.Message)
}

func TestNamePhase_Update_QuitKeyIsTyped(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("")
	p.Init(ctx)

	p.Update(ctx, keyMsg("q"))

	assert.Equal(t, "q", ctx.State.ProjectName)
}

func TestNamePhase_View(t *testing.T) {
	p := NewNamePhase()
	ctx, _ := newTestContext("My-Payload-Blog")
	p.Init(ctx)

	view := p.View(ctx)

	assert.Contains(t, view, "Template & Name")
	assert.Contains(t, view, config.DefaultRepositoryURL)
	assert.Contains(t, view, "Project name")
	assert.Contains(t, view, "▸")
}

func TestDatabasePhase_CopySecret(t *testing.T) {
	p := NewDatabasePhase()
	ctx, rec := newTestContext("blog")
	ctx.State.Step = wizard.StepDatabase

	msg := run(p.Update(ctx, keyMsg("c")))

	handoff, ok := msg.(phase.HandoffMsg)
	require.True(t, ok)
	assert.NoError(t, handoff.Err)
	assert.Equal(t, desktop.TargetSecret, handoff.Target)
	assert.Equal(t, "testsecret", rec.LastCopied())
	assert.Equal(t, wizard.StepDatabase, ctx.State.Step)
}

func TestDatabasePhase_CopyFailureIsReported(t *testing.T) {
	p := NewDatabasePhase()
	ctx, rec := newTestContext("blog")
	rec.Err = errors.New("no clipboard")
	ctx.State.Step = wizard.StepDatabase

	msg := run(p.Update(ctx, keyMsg("c")))

	handoff, ok := msg.(phase.HandoffMsg)
	require.True(t, ok)
	assert.Error(t, handoff.Err)
	assert.Equal(t, wizard.StepDatabase, ctx.State.Step)
}

func TestDatabasePhase_Advance(t *testing.T) {
	p := NewDatabasePhase()
	ctx, _ := newTestContext("blog")
	ctx.State.Step = wizard.StepDatabase

	p.Update(ctx, specialKeyMsg(tea.KeyEnter))

	assert.Equal(t, wizard.StepDeploy, ctx.State.Step)
}

func TestDatabasePhase_Back(t *testing.T) {
	p := NewDatabasePhase()
	ctx, _ := newTestContext("blog")
	ctx.State.Step = wizard.StepDatabase

	p.Update(ctx, specialKeyMsg(tea.KeyEsc))

	assert.Equal(t, wizard.StepName, ctx.State.Step)
}

func TestDatabasePhase_View(t *testing.T) {
	p := NewDatabasePhase()
	ctx, _ := newTestContext("blog")
	ctx.State.Step = wizard.StepDatabase

	view := p.View(ctx)

	assert.Contains(t, view, "Database setup guide")
	assert.Contains(t, view, "MongoDB Atlas")
	assert.Contains(t, view, "PAYLOAD_SECRET")
	assert.Contains(t, view, "testsecret")
}

func TestDeployPhase_CopyLink(t *testing.T) {
	p := NewDeployPhase()
	ctx, rec := newTestContext("my-blog")
	ctx.State.Step = wizard.StepDeploy

	msg := run(p.Update(ctx, keyMsg("c")))

	_, ok := msg.(phase.HandoffMsg)
	require.True(t, ok)
	assert.Equal(t, deploylink.Build(ctx.State, ctx.Template), rec.LastCopied())
}

func TestDeployPhase_Open(t *testing.T) {
	p := NewDeployPhase()
	ctx, rec := newTestContext("my-blog")
	ctx.State.Step = wizard.StepDeploy

	msg := run(p.Update(ctx, keyMsg("o")))

	handoff, ok := msg.(phase.HandoffMsg)
	require.True(t, ok)
	assert.Equal(t, phase.ActionOpen, handoff.Action)
	require.Len(t, rec.Opened, 1)
	assert.Equal(t, deploylink.Build(ctx.State, ctx.Template), rec.Opened[0])
}

func TestDeployPhase_Restart(t *testing.T) {
	p := NewDeployPhase()
	ctx, _ := newTestContext("my-blog")
	ctx.State.Step = wizard.StepDeploy

	p.Update(ctx, keyMsg("r"))

	assert.Equal(t, wizard.StepName, ctx.State.Step)
	assert.Equal(t, "my-blog", ctx.State.ProjectName)
	assert.Equal(t, "testsecret", ctx.State.Secret)
}

func TestDeployPhase_BackKeyIsIgnored(t *testing.T) {
	p := NewDeployPhase()
	ctx, _ := newTestContext("my-blog")
	ctx.State.Step = wizard.StepDeploy

	cmd := p.Update(ctx, specialKeyMsg(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.Equal(t, wizard.StepDeploy, ctx.State.Step)
}

func TestDeployPhase_View(t *testing.T) {
	p := NewDeployPhase()
	ctx, _ := newTestContext("My-Blog")
	ctx.State.Step = wizard.StepDeploy
	ctx.Width = 400

	view := p.View(ctx)

	assert.Contains(t, view, "Deployment plan ready!")
	assert.Contains(t, view, "PAYLOAD_SECRET and DATABASE_URL")
	assert.Contains(t, view, "my-blog")
	assert.Contains(t, view, "https://vercel.com/new/clone?")
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, step := range wizard.Steps() {
		h := r.Get(step)
		require.NotNil(t, h, "step %s", step)
		assert.Equal(t, step, h.Step())
		assert.NotEmpty(t, h.KeyBindings())
	}
	assert.Nil(t, r.Get(wizard.Step(0)))
}
