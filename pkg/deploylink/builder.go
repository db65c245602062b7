// Package deploylink builds the deployment provider's clone URL from the
// wizard state. Nothing here touches the network: the link is only a string
// the user opens or copies.
package deploylink

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Query parameter names understood by the provider's clone flow.
const (
	ParamRepositoryURL   = "repository-url"
	ParamEnv             = "env"
	ParamEnvDescription  = "envDescription"
	ParamProjectName     = "project-name"
	ParamRepositoryName  = "repository-name"
	ParamDemoTitle       = "demo-title"
	ParamDemoDescription = "demo-description"
)

// whitespaceRun matches runs of Unicode whitespace. RE2's \s is ASCII only.
var whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Spec is the derived description of a deploy link. It is computed on
// demand and never stored.
type Spec struct {
	BaseURL         string
	RepositoryURL   string
	EnvVarNames     []string
	Env             string
	EnvDescription  string
	ProjectName     string
	RepositoryName  string
	DemoTitle       string
	DemoDescription string
}

// Param is a single query parameter. Params keep insertion order.
type Param struct {
	Key   string
	Value string
}

// NewSpec derives the link spec for a wizard state and template.
func NewSpec(state *wizard.State, tpl config.Template) Spec {
	return Spec{
		BaseURL:         tpl.ProviderURL,
		RepositoryURL:   tpl.RepositoryURL,
		EnvVarNames:     tpl.EnvVars,
		Env:             tpl.EnvList(),
		EnvDescription:  tpl.EnvDescription,
		ProjectName:     state.ProjectName,
		RepositoryName:  RepositoryName(state.ProjectName),
		DemoTitle:       state.ProjectName,
		DemoDescription: tpl.DemoDescription,
	}
}

// RepositoryName lowercases name and collapses each run of whitespace into
// a single hyphen.
func RepositoryName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// Params returns the query parameters in the order the provider documents them.
func (s Spec) Params() []Param {
	return []Param{
		{ParamRepositoryURL, s.RepositoryURL},
		{ParamEnv, s.Env},
		{ParamEnvDescription, s.EnvDescription},
		{ParamProjectName, s.ProjectName},
		{ParamRepositoryName, s.RepositoryName},
		{ParamDemoTitle, s.DemoTitle},
		{ParamDemoDescription, s.DemoDescription},
	}
}

// URL renders the spec as a form-encoded URL. url.Values is not used because
// its Encode sorts keys.
func (s Spec) URL() string {
	var b strings.Builder
	b.WriteString(s.BaseURL)
	b.WriteByte('?')
	for i, p := range s.Params() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Build returns the deploy URL for the given state and template.
func Build(state *wizard.State, tpl config.Template) string {
	return NewSpec(state, tpl).URL()
}
