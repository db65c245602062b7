// Package wizard holds the deployment wizard's state machine.
//
// A State is owned by whichever front-end drives it (TUI, prompt, or a web
// session) and mutated only through Advance, Retreat, Restart and
// SetProjectName. Nothing here performs I/O.
package wizard

// Step represents the current step in the deployment wizard
type Step int

const (
	// StepName - Confirm template and choose a project name
	StepName Step = iota + 1
	// StepDatabase - Prepare the database connection string and secret
	StepDatabase
	// StepDeploy - Hand off to the deployment provider
	StepDeploy
)

// String returns the display name of the step
func (s Step) String() string {
	switch s {
	case StepName:
		return "Template & Name"
	case StepDatabase:
		return "Database"
	case StepDeploy:
		return "Deploy"
	default:
		return "Unknown"
	}
}

// Description returns the one-line summary shown next to the step title.
func (s Step) Description() string {
	switch s {
	case StepName:
		return "Check the source template and name your project"
	case StepDatabase:
		return "Collect the environment variables the deployment needs"
	case StepDeploy:
		return "Finish the deployment on the provider"
	default:
		return ""
	}
}

// Steps returns all steps in order.
func Steps() []Step {
	return []Step{StepName, StepDatabase, StepDeploy}
}

// TotalSteps returns the total number of steps for progress display
func TotalSteps() int {
	return int(StepDeploy)
}
