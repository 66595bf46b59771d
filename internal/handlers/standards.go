package handlers

import (
	"io"
	"net/http"
	"strings"

	"securereq/internal/database"
	"securereq/internal/middleware"
	"securereq/internal/models"
	"securereq/internal/standards"

	"github.com/gin-gonic/gin"
)

const maxStandardSize = 10 << 20 // 10MB

func ListStandards(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var stds []models.CustomStandard
	database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&stds)
	c.JSON(http.StatusOK, stds)
}

// UploadStandard accepts a multipart form with a name, optional description
// and a JSON/CSV/YAML controls file.
func UploadStandard(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxStandardSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large (max 10MB)"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxStandardSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	controls, err := standards.ParseFile(content, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse file: " + err.Error()})
		return
	}

	ext := ""
	if i := strings.LastIndex(fileHeader.Filename, "."); i >= 0 {
		ext = strings.ToLower(fileHeader.Filename[i+1:])
	}

	user, _ := middleware.CurrentUser(c)
	standard := models.CustomStandard{
		ProjectID:        projectID,
		Name:             name,
		Description:      c.PostForm("description"),
		FileType:         ext,
		OriginalFilename: fileHeader.Filename,
		Controls:         controls,
		UploadedBy:       user.ID,
	}
	if err := database.DB.Create(&standard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store standard"})
		return
	}

	database.CreateAuditLog(user.ID, "standard", standard.ID, "create", "uploaded standard "+standard.Name)
	c.JSON(http.StatusCreated, standard)
}

// DeleteStandard removes a custom standard. Mappings produced from it stay:
// they belong to their analysis, not to the standard.
func DeleteStandard(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var standard models.CustomStandard
	if err := database.DB.First(&standard, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "standard not found"})
		return
	}
	if _, ok := ownedProject(c, standard.ProjectID); !ok {
		return
	}

	if err := database.DB.Delete(&standard).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete standard"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "standard", standard.ID, "delete", "deleted standard "+standard.Name)
	c.Status(http.StatusNoContent)
}
