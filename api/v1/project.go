package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/services"
)

// ProjectController handles project API endpoints
type ProjectController struct {
	projectService *services.ProjectService
	rankingService *services.RankingService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService, rankingService *services.RankingService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		rankingService: rankingService,
	}
}

// ListProjects returns all projects. Relationship expansion is opt-in via
// the withAuthors and withEvaluations query flags.
func (pc *ProjectController) ListProjects(c *gin.Context) {
	query := dto.ProjectQuery{
		WithAuthors:     c.Query("withAuthors") == "true",
		WithEvaluations: c.Query("withEvaluations") == "true",
	}

	projects, err := pc.projectService.List(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// ListNotEvaluated returns projects still below the evaluation threshold
func (pc *ProjectController) ListNotEvaluated(c *gin.Context) {
	projects, err := pc.projectService.ListByEvaluated(false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// ListEvaluated returns projects that reached the evaluation threshold
func (pc *ProjectController) ListEvaluated(c *gin.Context) {
	projects, err := pc.projectService.ListByEvaluated(true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// ListWinners returns the top-ranked projects by summed evaluation score
func (pc *ProjectController) ListWinners(c *gin.Context) {
	winners, err := pc.rankingService.Winners()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   winners,
	})
}

// GetProject returns a project by ID with all relations
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.projectService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject submits a new project for the authenticated caller
func (pc *ProjectController) CreateProject(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := pc.projectService.Create(userID, models.Role(role), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject applies a structural update to an unlocked project
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := pc.projectService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject deletes a project with no evaluations
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	if err := pc.projectService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted",
	})
}

// RecomputeWinners refreshes the persisted winner flags from the current
// ranking. Admin only.
func (pc *ProjectController) RecomputeWinners(c *gin.Context) {
	winners, err := pc.rankingService.RecomputeWinners()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   winners,
	})
}
