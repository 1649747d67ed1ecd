package server

import (
	"errors"

	"meapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondAppError maps an AppError code to its HTTP status and writes the
// standardized error body. Unknown errors become a 500.
func respondAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusUnprocessableEntity, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// parseIDParam extracts a positive integer :id path parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid ID parameter")
	}
	return uint(id), nil
}

// projectResponses flattens a project slice into response payloads.
func projectResponses(projects []models.Project) []models.ProjectResponse {
	out := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, projects[i].ToResponse())
	}
	return out
}
