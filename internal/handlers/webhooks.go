package handlers

import (
	"net/http"
	"strings"

	"securereq/internal/database"
	"securereq/internal/middleware"
	"securereq/internal/models"
	"securereq/internal/webhook"

	"github.com/gin-gonic/gin"
)

type webhookCreateRequest struct {
	URL        string   `json:"url" binding:"required"`
	Secret     string   `json:"secret" binding:"required"`
	EventTypes []string `json:"event_types" binding:"required"`
}

// invalidEventTypes returns the entries of types that are not registrable
// events, preserving their order.
func invalidEventTypes(types []string) []string {
	valid := make(map[string]struct{}, len(models.ValidEventTypes))
	for _, et := range models.ValidEventTypes {
		valid[et] = struct{}{}
	}
	var invalid []string
	for _, et := range types {
		if _, ok := valid[et]; !ok {
			invalid = append(invalid, et)
		}
	}
	return invalid
}

func ListWebhooks(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var hooks []models.Webhook
	database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&hooks)
	c.JSON(http.StatusOK, hooks)
}

func CreateWebhook(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var req webhookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if invalid := invalidEventTypes(req.EventTypes); len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid event types: " + strings.Join(invalid, ", ") +
				" (valid: " + strings.Join(models.ValidEventTypes, ", ") + ")",
		})
		return
	}

	wh := models.Webhook{
		ProjectID:  projectID,
		URL:        req.URL,
		Secret:     req.Secret,
		EventTypes: req.EventTypes,
	}
	if err := database.DB.Create(&wh).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create webhook"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "webhook", wh.ID, "create", "registered webhook "+wh.URL)
	c.JSON(http.StatusCreated, wh)
}

// ownedWebhook loads a webhook and checks ownership through its project.
func ownedWebhook(c *gin.Context, webhookID uint) (models.Webhook, bool) {
	var wh models.Webhook
	if err := database.DB.First(&wh, webhookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "webhook not found"})
		return models.Webhook{}, false
	}
	if _, ok := ownedProject(c, wh.ProjectID); !ok {
		return models.Webhook{}, false
	}
	return wh, true
}

func DeleteWebhook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	wh, ok := ownedWebhook(c, id)
	if !ok {
		return
	}

	if err := database.DB.Delete(&wh).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete webhook"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "webhook", wh.ID, "delete", "removed webhook "+wh.URL)
	c.Status(http.StatusNoContent)
}

// TestWebhook delivers a ping event to one endpoint so its owner can verify
// reachability and signature handling.
func TestWebhook(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	wh, ok := ownedWebhook(c, id)
	if !ok {
		return
	}

	status, err := webhook.Ping(wh)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "webhook test failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "response_code": status})
}
