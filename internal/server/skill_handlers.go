package server

import (
	"meapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultTopSkillsLimit = 10
	maxTopSkillsLimit     = 50
)

// GetSkills handles GET /api/skills
// @Summary List skill names alphabetically
// @Tags skills
// @Produce json
// @Success 200 {array} string
// @Router /skills [get]
func (s *Server) GetSkills(c *fiber.Ctx) error {
	names, err := s.skillRepo.ListNames(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(names)
}

// GetTopSkills handles GET /api/skills/top
// @Summary List skills ranked by project count
// @Description Count descending, name ascending on ties. Limit must be 1..50, default 10.
// @Tags skills
// @Produce json
// @Param limit query int false "Maximum entries (1-50)"
// @Success 200 {array} models.SkillCount
// @Failure 422 {object} models.ErrorResponse
// @Router /skills/top [get]
func (s *Server) GetTopSkills(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultTopSkillsLimit)
	if limit < 1 || limit > maxTopSkillsLimit {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("limit must be between 1 and 50"))
	}

	top, err := s.skillRepo.Top(c.Context(), limit)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(top)
}
