package deploylink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(name string) *wizard.State {
	return wizard.NewStateWithSecret(name, "secret")
}

func TestRepositoryName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My-Blog--", "my-blog--"},
		{"My Payload Blog", "my-payload-blog"},
		{"My   Blog", "my-blog"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{" leading", "-leading"},
		{"already-lower", "already-lower"},
		{"", ""},
		{"a\u3000b", "a-b"},
		{"a\vb", "a-b"},
		{"a\u00a0b", "a-b"},
		{"a\u2028\u2029b", "a-b"},
		{"a\ufeffb", "a-b"},
		{"a\u0085b", "a-b"},
		{"Mixed \u3000\t Run", "mixed-run"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, RepositoryName(tt.input))
		})
	}
}

func TestRepositoryName_AfterSanitize(t *testing.T) {
	// Sanitizing first turns spaces into hyphens one-for-one, so the
	// whitespace collapse has nothing left to do.
	raw := "My Blog!!"
	sanitized := wizard.SanitizeProjectName(raw)

	assert.Equal(t, "My-Blog--", sanitized)
	assert.Equal(t, "my-blog--", RepositoryName(sanitized))

	// Applied to the raw input the collapse rule does apply
	assert.Equal(t, "my-blog!!", RepositoryName(raw))
}

func TestNewSpec(t *testing.T) {
	state := newState("My Blog!!")
	spec := NewSpec(state, config.Default())

	assert.Equal(t, "https://vercel.com/new/clone", spec.BaseURL)
	assert.Equal(t, config.DefaultRepositoryURL, spec.RepositoryURL)
	assert.Equal(t, []string{"PAYLOAD_SECRET", "DATABASE_URL"}, spec.EnvVarNames)
	assert.Equal(t, "PAYLOAD_SECRET,DATABASE_URL", spec.Env)
	assert.Equal(t, "My-Blog--", spec.ProjectName)
	assert.Equal(t, "my-blog--", spec.RepositoryName)
	assert.Equal(t, "My-Blog--", spec.DemoTitle)
	assert.Equal(t, config.Default().DemoDescription, spec.DemoDescription)
}

func TestSpec_Params_Order(t *testing.T) {
	spec := NewSpec(newState("blog"), config.Default())

	var keys []string
	for _, p := range spec.Params() {
		keys = append(keys, p.Key)
	}

	assert.Equal(t, []string{
		"repository-url",
		"env",
		"envDescription",
		"project-name",
		"repository-name",
		"demo-title",
		"demo-description",
	}, keys)
}

func TestBuild(t *testing.T) {
	link := Build(newState("My-Payload-Blog"), config.Default())

	require.True(t, strings.HasPrefix(link, "https://vercel.com/new/clone?repository-url="))
	assert.Contains(t, link, "repository-url=https%3A%2F%2Fgithub.com%2F980567039%2Fblog-template.git")
	assert.Contains(t, link, "&env=PAYLOAD_SECRET%2CDATABASE_URL&")
	assert.Contains(t, link, "&project-name=My-Payload-Blog&")
	assert.Contains(t, link, "&repository-name=my-payload-blog&")
	assert.Contains(t, link, "&demo-title=My-Payload-Blog&")
	assert.Contains(t, link, "&demo-description=A+modern+blog+built+on+Payload+CMS")
}

func TestBuild_ParsesBack(t *testing.T) {
	tpl := config.Default()
	link := Build(newState("Team-Site"), tpl)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "vercel.com", u.Host)
	assert.Equal(t, "/new/clone", u.Path)

	q := u.Query()
	assert.Equal(t, tpl.RepositoryURL, q.Get("repository-url"))
	assert.Equal(t, "PAYLOAD_SECRET,DATABASE_URL", q.Get("env"))
	assert.Equal(t, tpl.EnvDescription, q.Get("envDescription"))
	assert.Equal(t, "Team-Site", q.Get("project-name"))
	assert.Equal(t, "team-site", q.Get("repository-name"))
	assert.Equal(t, "Team-Site", q.Get("demo-title"))
	assert.Equal(t, tpl.DemoDescription, q.Get("demo-description"))
}

func TestBuild_Deterministic(t *testing.T) {
	tpl := config.Default()

	for _, name := range []string{"abc", "My Blog!!", "x-y-z", "Payload2026"} {
		state := newState(name)
		assert.Equal(t, Build(state, tpl), Build(state, tpl), "name %q", name)
	}
}

func TestBuild_IgnoresStepAndSecret(t *testing.T) {
	tpl := config.Default()
	a := wizard.NewStateWithSecret("blog", "zzsecretaa")
	b := wizard.NewStateWithSecret("blog", "qqsecretbb")
	b.Step = wizard.StepDeploy

	assert.Equal(t, Build(a, tpl), Build(b, tpl))
	assert.NotContains(t, Build(a, tpl), "zzsecretaa")
}

func TestBuild_CustomTemplate(t *testing.T) {
	tpl := config.Default()
	tpl.ProviderURL = "https://example.com/deploy"
	tpl.EnvVars = []string{"ONLY_ONE"}
	tpl.EnvDescription = "Needs ONLY_ONE & nothing else"

	link := Build(newState("site"), tpl)

	assert.True(t, strings.HasPrefix(link, "https://example.com/deploy?"))
	assert.Contains(t, link, "&env=ONLY_ONE&")
	assert.Contains(t, link, "envDescription=Needs+ONLY_ONE+%26+nothing+else")
}
