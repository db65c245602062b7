package phases

import (
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/app/phase"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// Registry maps each wizard step to its handler.
type Registry struct {
	handlers map[wizard.Step]phase.Handler
}

// NewRegistry creates a registry with the handlers for all steps.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[wizard.Step]phase.Handler)}
	r.Register(NewNamePhase())
	r.Register(NewDatabasePhase())
	r.Register(NewDeployPhase())
	return r
}

// Register adds or replaces the handler for h.Step().
func (r *Registry) Register(h phase.Handler) {
	r.handlers[h.Step()] = h
}

// Get returns the handler for step, or nil.
func (r *Registry) Get(step wizard.Step) phase.Handler {
	return r.handlers[step]
}
