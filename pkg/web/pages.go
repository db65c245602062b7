package web

//go:generate go tool templ generate

import (
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// PageData is everything a wizard page renders from.
type PageData struct {
	State    wizard.State
	Template config.Template

	// Message is an inline notice, shown as an error when IsError is set
	Message string
	IsError bool
}

func noticeClass(isError bool) string {
	if isError {
		return "notice error"
	}
	return "notice"
}

// stepClass is "active" for the current step, "done" for completed ones
// and "pending" otherwise.
func stepClass(st wizard.State, step wizard.Step) string {
	switch {
	case step == st.Step:
		return "active"
	case st.IsCompleted(step):
		return "done"
	}
	return "pending"
}
