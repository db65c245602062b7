package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

func TestValidateRequired(t *testing.T) {
	validator := validateRequired("Project name")

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid input", "my-blog", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"with spaces", "my blog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default name", "My-Payload-Blog", false},
		{"exactly three", "abc", false},
		{"two characters", "ab", true},
		{"empty", "", true},
		{"spaces count after replacement", "a b", false},
		{"multibyte counted per character", "éé", true},
		{"symbols", "!!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProjectName_ShortReturnsSentinel(t *testing.T) {
	assert.ErrorIs(t, validateProjectName("ab"), wizard.ErrProjectNameTooShort)
}
