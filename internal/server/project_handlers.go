package server

import (
	"meapi/internal/models"
	"meapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetProjects handles GET /api/projects
// @Summary List projects
// @Description Ordered by title. Optional ?skill= filters by case-insensitive exact skill name.
// @Tags projects
// @Produce json
// @Param skill query string false "Skill name filter"
// @Success 200 {array} models.ProjectResponse
// @Router /projects [get]
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectRepo.List(c.Context(), c.Query("skill"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(projectResponses(projects))
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.ProjectResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [get]
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondAppError(c, err)
	}

	project, err := s.projectRepo.Get(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(project.ToResponse())
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Skill names are reused when they exist and created otherwise.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.ProjectInput true "Project payload"
// @Success 201 {object} models.ProjectResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /projects [post]
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var input models.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateProjectInput(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError(err.Error()))
	}

	project, err := s.projectRepo.Create(c.Context(), &input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project.ToResponse())
}

// UpdateProject handles PUT /api/projects/:id
// @Summary Update a project
// @Description Fully replaces the skill association set; removed skills keep their rows.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body models.ProjectInput true "Project payload"
// @Success 200 {object} models.ProjectResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /projects/{id} [put]
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondAppError(c, err)
	}

	var input models.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateProjectInput(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError(err.Error()))
	}

	project, err := s.projectRepo.Update(c.Context(), id, &input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(project.ToResponse())
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Removes the project and its skill links; skill rows survive.
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondAppError(c, err)
	}

	if err := s.projectRepo.Delete(c.Context(), id); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
