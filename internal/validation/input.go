// Package validation contains request payload validation helpers.
package validation

import (
	"fmt"
	"strings"

	"meapi/internal/models"
)

const (
	maxTitleLength     = 200
	maxSkillNameLength = 100
	maxSkillsPerItem   = 50
)

// ValidateProjectInput validates a project create/update payload. An empty
// skill list is legal; blank skill names are not.
func ValidateProjectInput(input *models.ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(input.Title) > maxTitleLength {
		return fmt.Errorf("title must be at most %d characters", maxTitleLength)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(input.Skills) > maxSkillsPerItem {
		return fmt.Errorf("at most %d skills per project", maxSkillsPerItem)
	}
	for _, name := range input.Skills {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("skill names cannot be blank")
		}
		if len(name) > maxSkillNameLength {
			return fmt.Errorf("skill names must be at most %d characters", maxSkillNameLength)
		}
	}
	return nil
}

// ValidateLogin validates a login payload.
func ValidateLogin(req *models.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	return nil
}

// ValidateProfileUpdate rejects updates that would blank out the required
// profile identity fields.
func ValidateProfileUpdate(update *models.ProfileUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("name cannot be blank")
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" {
			return fmt.Errorf("email cannot be blank")
		}
		if !strings.Contains(email, "@") {
			return fmt.Errorf("email is not valid")
		}
	}
	return nil
}
