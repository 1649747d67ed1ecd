package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetWork handles GET /api/work
// @Summary List work experience, most recent first
// @Tags work
// @Produce json
// @Success 200 {array} models.WorkExperience
// @Router /work [get]
func (s *Server) GetWork(c *fiber.Ctx) error {
	work, err := s.workRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(work)
}
