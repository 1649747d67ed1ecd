package validation

import (
	"strings"
	"testing"

	"meapi/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateProjectInput(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ProjectInput
		wantErr bool
	}{
		{
			name:  "valid with skills",
			input: models.ProjectInput{Title: "T", Description: "D", Skills: []string{"Go"}},
		},
		{
			name:  "valid without skills",
			input: models.ProjectInput{Title: "T", Description: "D"},
		},
		{
			name:    "missing title",
			input:   models.ProjectInput{Description: "D"},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			input:   models.ProjectInput{Title: "   ", Description: "D"},
			wantErr: true,
		},
		{
			name:    "missing description",
			input:   models.ProjectInput{Title: "T"},
			wantErr: true,
		},
		{
			name:    "title too long",
			input:   models.ProjectInput{Title: strings.Repeat("x", 201), Description: "D"},
			wantErr: true,
		},
		{
			name:    "blank skill name",
			input:   models.ProjectInput{Title: "T", Description: "D", Skills: []string{""}},
			wantErr: true,
		},
		{
			name:    "skill name too long",
			input:   models.ProjectInput{Title: "T", Description: "D", Skills: []string{strings.Repeat("x", 101)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectInput(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(&models.LoginRequest{Username: "admin", Password: "pw"}))
	assert.Error(t, ValidateLogin(&models.LoginRequest{Username: "admin"}))
	assert.Error(t, ValidateLogin(&models.LoginRequest{Password: "pw"}))
}

func TestValidateProfileUpdate(t *testing.T) {
	assert.NoError(t, ValidateProfileUpdate(&models.ProfileUpdate{}))
	assert.NoError(t, ValidateProfileUpdate(&models.ProfileUpdate{
		Name:  strPtr("Jane"),
		Email: strPtr("jane@example.com"),
	}))

	assert.Error(t, ValidateProfileUpdate(&models.ProfileUpdate{Name: strPtr("  ")}))
	assert.Error(t, ValidateProfileUpdate(&models.ProfileUpdate{Email: strPtr("")}))
	assert.Error(t, ValidateProfileUpdate(&models.ProfileUpdate{Email: strPtr("not-an-email")}))
}
