package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrProjectNameTooShort is returned by Advance from StepName when the
	// project name has fewer than MinProjectNameLength characters.
	ErrProjectNameTooShort = fmt.Errorf("project name must be at least %d characters", MinProjectNameLength)

	// ErrNoTransition is returned when the requested move is not defined
	// for the current step. The state is left unchanged.
	ErrNoTransition = errors.New("no transition from current step")
)

// State holds the current state of the wizard
type State struct {
	// Current step
	Step Step

	// Project name, always sanitized when set through SetProjectName
	ProjectName string

	// Secret suggested for PAYLOAD_SECRET, fixed for the lifetime of the state
	Secret string
}

// NewState creates a new wizard state with a freshly generated secret.
func NewState(defaultName string) *State {
	return NewStateWithSecret(defaultName, GenerateSecret())
}

// NewStateWithSecret creates a new wizard state with the given secret.
func NewStateWithSecret(defaultName, secret string) *State {
	return &State{
		Step:        StepName,
		ProjectName: SanitizeProjectName(defaultName),
		Secret:      secret,
	}
}

// SetProjectName sanitizes and stores the project name.
func (s *State) SetProjectName(name string) {
	s.ProjectName = SanitizeProjectName(name)
}

// ValidateProjectName returns ErrProjectNameTooShort if the current name
// would block advancing from StepName.
func (s *State) ValidateProjectName() error {
	if ProjectNameLength(s.ProjectName) < MinProjectNameLength {
		return ErrProjectNameTooShort
	}
	return nil
}

// CanAdvance returns true if Advance would succeed from the current step
func (s *State) CanAdvance() bool {
	switch s.Step {
	case StepName:
		return s.ValidateProjectName() == nil
	case StepDatabase:
		return true
	default:
		return false
	}
}

// CanGoBack returns true if the user can go back from the current step
func (s *State) CanGoBack() bool {
	return s.Step == StepDatabase
}

// Advance moves to the next step.
// From StepName the project name must be long enough; from StepDatabase the
// move is unconditional since the database lives outside this program.
func (s *State) Advance() error {
	switch s.Step {
	case StepName:
		if err := s.ValidateProjectName(); err != nil {
			return err
		}
		s.Step = StepDatabase
	case StepDatabase:
		s.Step = StepDeploy
	default:
		return fmt.Errorf("advance from %s: %w", s.Step, ErrNoTransition)
	}
	return nil
}

// Retreat moves from StepDatabase back to StepName.
func (s *State) Retreat() error {
	if !s.CanGoBack() {
		return fmt.Errorf("retreat from %s: %w", s.Step, ErrNoTransition)
	}
	s.Step = StepName
	return nil
}

// Restart returns to StepName, keeping the project name and secret.
func (s *State) Restart() {
	s.Step = StepName
}

// IsCompleted returns true if step lies behind the current step.
func (s *State) IsCompleted(step Step) bool {
	return step < s.Step
}
