package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/service"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List - List portfolio projects
// GET /api/projects?category=&featured=
func (h *ProjectHandler) List(c *gin.Context) {
	category := c.Query("category")

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured filter"})
			return
		}
		featured = &value
	}

	projects := h.projectService.List(c.Request.Context(), category, featured)

	response := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		response[i] = toProjectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, response)
}

// Get - Get a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Create - Create a new project
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), repository.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		VideoURL:    req.VideoURL,
		Date:        req.Date,
		Featured:    req.Featured,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// Update - Partially update a project
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.projectService.Update(c.Request.Context(), id, service.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		VideoURL:    req.VideoURL,
		Date:        req.Date,
		Featured:    req.Featured,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project update"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// Delete - Delete a project
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
