package server

import (
	"meapi/internal/models"
	"meapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profile
// @Summary Get the portfolio profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profileRepo.Get(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles PUT /api/profile
// @Summary Create or partially update the portfolio profile
// @Description Only fields present in the body are merged into the stored profile.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdate true "Profile fields to merge"
// @Success 200 {object} models.Profile
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /profile [put]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var update models.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateProfileUpdate(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError(err.Error()))
	}

	profile, err := s.profileRepo.Upsert(c.Context(), &update)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}
