package tui

import (
	"io"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// DatabaseChoice is the action picked on the database step.
type DatabaseChoice string

const (
	DatabaseCopySecret DatabaseChoice = "copy"
	DatabaseNext       DatabaseChoice = "next"
	DatabaseBack       DatabaseChoice = "back"
)

// DeployChoice is the action picked on the deploy step.
type DeployChoice string

const (
	DeployCopyLink DeployChoice = "copy"
	DeployOpen     DeployChoice = "open"
	DeployRestart  DeployChoice = "restart"
	DeployDone     DeployChoice = "done"
)

// Options configures a prompt session.
type Options struct {
	State     *wizard.State
	Template  config.Template
	Clipboard desktop.Clipboard
	Browser   desktop.Browser

	// Out receives the text printed between forms
	Out io.Writer
}

// Result is what a finished prompt session produced.
type Result struct {
	State *wizard.State
	Link  string
}
