package wizard

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sanitizedName = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My-Payload-Blog", "My-Payload-Blog"},
		{"My Blog!!", "My-Blog--"},
		{"hello_world", "hello-world"},
		{"a.b.c", "a-b-c"},
		{"  spaced  ", "--spaced--"},
		{"café", "caf-"},
		{"日本", "--"},
		{"", ""},
		{"UPPER-lower-123", "UPPER-lower-123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeProjectName(tt.input))
		})
	}
}

func TestSanitizeProjectName_Idempotent(t *testing.T) {
	inputs := []string{"My Blog!!", "x", "", "日本語 blog", "tab\there", "ok-name", "%%%"}

	for _, in := range inputs {
		once := SanitizeProjectName(in)
		assert.Equal(t, once, SanitizeProjectName(once), "input %q", in)
		assert.Regexp(t, sanitizedName, once)
	}
}

func TestSanitizeProjectName_PreservesLength(t *testing.T) {
	in := "a b€c"
	assert.Equal(t, ProjectNameLength(in), ProjectNameLength(SanitizeProjectName(in)))
}

func TestGenerateSecret(t *testing.T) {
	a := GenerateSecret()
	b := GenerateSecret()

	assert.Len(t, a, SecretLength)
	assert.Regexp(t, `^[a-z0-9]+$`, a)
	assert.NotEqual(t, a, b)
}
