package server

import (
	"meapi/internal/models"
	"meapi/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search
// @Summary Search projects and skills
// @Description Case-insensitive substring match over project title/description and skill names. An empty query matches everything.
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} models.SearchResult
// @Router /search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	projects, err := s.projectRepo.SearchByText(c.Context(), query)
	if err != nil {
		return respondAppError(c, err)
	}

	skills, err := s.skillRepo.SearchNames(c.Context(), query)
	if err != nil {
		return respondAppError(c, err)
	}

	result := models.SearchResult{
		Projects: projectResponses(projects),
		Skills:   skills,
	}

	bucket := "hit"
	if len(result.Projects) == 0 && len(result.Skills) == 0 {
		bucket = "miss"
	}
	observability.SearchQueries.WithLabelValues(bucket).Inc()

	return c.JSON(result)
}
