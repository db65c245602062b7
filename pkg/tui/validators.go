package tui

import (
	"fmt"
	"strings"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

// validateRequired returns a validator that ensures a field is not empty.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateProjectName checks the name as it will be stored, after
// disallowed characters are replaced.
func validateProjectName(s string) error {
	if err := validateRequired("project name")(s); err != nil {
		return err
	}
	if wizard.ProjectNameLength(wizard.SanitizeProjectName(s)) < wizard.MinProjectNameLength {
		return wizard.ErrProjectNameTooShort
	}
	return nil
}
