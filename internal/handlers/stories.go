package handlers

import (
	"net/http"

	"securereq/internal/database"
	"securereq/internal/middleware"
	"securereq/internal/models"

	"github.com/gin-gonic/gin"
)

type storyResponse struct {
	models.UserStory
	AnalysisCount int64 `json:"analysis_count"`
}

// ownedStory loads a story and verifies the session user owns its project.
func ownedStory(c *gin.Context, storyID uint) (models.UserStory, bool) {
	var story models.UserStory
	if err := database.DB.First(&story, storyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return models.UserStory{}, false
	}
	if _, ok := ownedProject(c, story.ProjectID); !ok {
		return models.UserStory{}, false
	}
	return story, true
}

func analysisCount(storyID uint) int64 {
	var count int64
	database.DB.Model(&models.SecurityAnalysis{}).Where("user_story_id = ?", storyID).Count(&count)
	return count
}

func ListStories(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var stories []models.UserStory
	database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&stories)

	out := make([]storyResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, storyResponse{UserStory: s, AnalysisCount: analysisCount(s.ID)})
	}
	c.JSON(http.StatusOK, out)
}

type storyCreateRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	AcceptanceCriteria string `json:"acceptance_criteria"`
}

func CreateStory(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var req storyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	story := models.UserStory{
		ProjectID:          projectID,
		Title:              req.Title,
		Description:        req.Description,
		AcceptanceCriteria: req.AcceptanceCriteria,
		Source:             models.SourceManual,
		CreatedBy:          user.ID,
	}
	if err := database.DB.Create(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create story"})
		return
	}

	database.CreateAuditLog(user.ID, "story", story.ID, "create", "created story "+story.Title)
	c.JSON(http.StatusCreated, storyResponse{UserStory: story})
}

func GetStory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	story, ok := ownedStory(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, storyResponse{UserStory: story, AnalysisCount: analysisCount(story.ID)})
}

// DeleteStory cascades to every analysis snapshot and its mappings.
func DeleteStory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	story, ok := ownedStory(c, id)
	if !ok {
		return
	}

	if err := database.DB.Delete(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete story"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "story", story.ID, "delete", "deleted story "+story.Title)
	c.Status(http.StatusNoContent)
}
