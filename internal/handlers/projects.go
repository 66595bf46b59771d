package handlers

import (
	"net/http"
	"strconv"

	"securereq/internal/database"
	"securereq/internal/middleware"
	"securereq/internal/models"

	"github.com/gin-gonic/gin"
)

type projectResponse struct {
	models.Project
	StoryCount    int64 `json:"story_count"`
	AnalysisCount int64 `json:"analysis_count"`
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ownedProject loads a project and enforces that the session user owns it.
// Foreign projects 404 rather than 403 so their existence is not revealed.
func ownedProject(c *gin.Context, projectID uint) (models.Project, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return models.Project{}, false
	}

	var project models.Project
	if err := database.DB.Where("id = ? AND owner_id = ?", projectID, user.ID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return models.Project{}, false
	}
	return project, true
}

func projectCounts(projectID uint) (stories, analyses int64) {
	database.DB.Model(&models.UserStory{}).Where("project_id = ?", projectID).Count(&stories)
	database.DB.Model(&models.SecurityAnalysis{}).
		Joins("JOIN user_stories ON user_stories.id = security_analyses.user_story_id").
		Where("user_stories.project_id = ?", projectID).
		Count(&analyses)
	return
}

func ListProjects(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var projects []models.Project
	database.DB.Where("owner_id = ?", user.ID).Order("updated_at desc").Find(&projects)

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		stories, analyses := projectCounts(p.ID)
		out = append(out, projectResponse{Project: p, StoryCount: stories, AnalysisCount: analyses})
	}
	c.JSON(http.StatusOK, out)
}

type projectCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func CreateProject(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req projectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project := models.Project{
		OwnerID:     user.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	database.CreateAuditLog(user.ID, "project", project.ID, "create", "created project "+project.Name)
	c.JSON(http.StatusCreated, projectResponse{Project: project})
}

func GetProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	project, ok := ownedProject(c, id)
	if !ok {
		return
	}

	stories, analyses := projectCounts(project.ID)
	c.JSON(http.StatusOK, projectResponse{Project: project, StoryCount: stories, AnalysisCount: analyses})
}

// DeleteProject removes the project; stories, analyses, mappings, standards
// and webhooks go with it through the cascade constraints.
func DeleteProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	project, ok := ownedProject(c, id)
	if !ok {
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "project", project.ID, "delete", "deleted project "+project.Name)
	c.Status(http.StatusNoContent)
}
