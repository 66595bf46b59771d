package handlers

import (
	"context"
	"log"
	"net/http"

	"securereq/internal/ai"
	"securereq/internal/analysis"
	"securereq/internal/compliance"
	"securereq/internal/database"
	"securereq/internal/middleware"
	"securereq/internal/models"
	"securereq/internal/webhook"

	"github.com/gin-gonic/gin"
)

// Analyzer is the optional primary analysis path, set once at startup. When
// nil (or when a call fails) the template fallback runs instead.
var Analyzer *ai.Analyzer

const templateFallbackModel = "template-fallback"

// analyzeStory runs the full pipeline for one story: custom standards lookup,
// AI-or-fallback analysis, compliance mapping, versioned snapshot.
func analyzeStory(ctx context.Context, story models.UserStory) (*models.SecurityAnalysis, error) {
	var customModels []models.CustomStandard
	database.DB.Where("project_id = ?", story.ProjectID).Find(&customModels)

	custom := make([]compliance.CustomStandard, 0, len(customModels))
	for _, cs := range customModels {
		custom = append(custom, compliance.CustomStandard{Name: cs.Name, Controls: cs.Controls})
	}

	var result *analysis.Result
	aiModel := templateFallbackModel
	if Analyzer != nil {
		r, err := Analyzer.Analyze(ctx, story.Title, story.Description, story.AcceptanceCriteria, custom)
		if err != nil {
			log.Printf("AI analysis failed for story %d, falling back to templates: %v", story.ID, err)
		} else {
			result = r
			aiModel = Analyzer.Model()
		}
	}
	if result == nil {
		result = analysis.Analyze(story.Title, story.Description, story.AcceptanceCriteria)
	}

	mappings := compliance.MapRequirements(result.SecurityRequirements, nil, custom)

	return database.CreateAnalysis(story.ID, result, aiModel, mappings)
}

func RunAnalysis(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	story, ok := ownedStory(c, id)
	if !ok {
		return
	}

	a, err := analyzeStory(c.Request.Context(), story)
	if err != nil {
		webhook.Fire(story.ProjectID, models.EventAnalysisFailed, gin.H{
			"story_id": story.ID,
			"status":   "error",
			"error":    err.Error(),
		})
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	user, _ := middleware.CurrentUser(c)
	database.CreateAuditLog(user.ID, "analysis", a.ID, "analyze", "analyzed story "+story.Title)

	webhook.Fire(story.ProjectID, models.EventAnalysisCompleted, gin.H{
		"analysis_id": a.ID,
		"story_id":    story.ID,
		"risk_score":  a.RiskScore,
		"status":      "success",
	})

	c.JSON(http.StatusCreated, a)
}

type bulkResult struct {
	StoryID    uint   `json:"story_id"`
	StoryTitle string `json:"story_title"`
	Status     string `json:"status"`
	AnalysisID uint   `json:"analysis_id,omitempty"`
	RiskScore  int    `json:"risk_score,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BulkAnalyze runs the pipeline over every story in a project. Failures are
// recorded per story and never abort the batch; cancellation of the request
// context abandons the remaining stories without touching completed ones.
func BulkAnalyze(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, ok := ownedProject(c, projectID); !ok {
		return
	}

	var stories []models.UserStory
	database.DB.Where("project_id = ?", projectID).Find(&stories)
	if len(stories) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no stories in this project"})
		return
	}

	ctx := c.Request.Context()
	results := make([]bulkResult, 0, len(stories))
	for _, story := range stories {
		if ctx.Err() != nil {
			break
		}
		a, err := analyzeStory(ctx, story)
		if err != nil {
			log.Printf("bulk analyze failed for story %d: %v", story.ID, err)
			results = append(results, bulkResult{
				StoryID: story.ID, StoryTitle: story.Title, Status: "error", Error: err.Error(),
			})
			continue
		}
		results = append(results, bulkResult{
			StoryID: story.ID, StoryTitle: story.Title, Status: "success",
			AnalysisID: a.ID, RiskScore: a.RiskScore,
		})
	}

	webhook.Fire(projectID, models.EventBulkAnalysisCompleted, gin.H{
		"project_id": projectID,
		"total":      len(stories),
		"results":    results,
	})

	c.JSON(http.StatusOK, gin.H{"total": len(stories), "results": results})
}

type analysisSummary struct {
	ID               uint   `json:"id"`
	Version          int    `json:"version"`
	RiskScore        int    `json:"risk_score"`
	AbuseCaseCount   int    `json:"abuse_case_count"`
	RequirementCount int    `json:"requirement_count"`
	AIModelUsed      string `json:"ai_model_used"`
	CreatedAt        string `json:"created_at"`
}

func ListAnalyses(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	story, ok := ownedStory(c, id)
	if !ok {
		return
	}

	var analyses []models.SecurityAnalysis
	database.DB.Where("user_story_id = ?", story.ID).Order("version desc").Find(&analyses)

	out := make([]analysisSummary, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, analysisSummary{
			ID:               a.ID,
			Version:          a.Version,
			RiskScore:        a.RiskScore,
			AbuseCaseCount:   len(a.AbuseCases),
			RequirementCount: len(a.SecurityRequirements),
			AIModelUsed:      a.AIModelUsed,
			CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, out)
}

// ownedAnalysis loads an analysis and checks ownership through its story.
func ownedAnalysis(c *gin.Context, analysisID uint) (models.SecurityAnalysis, bool) {
	var a models.SecurityAnalysis
	if err := database.DB.First(&a, analysisID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return models.SecurityAnalysis{}, false
	}
	if _, ok := ownedStory(c, a.UserStoryID); !ok {
		return models.SecurityAnalysis{}, false
	}
	return a, true
}

func GetAnalysis(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	a, ok := ownedAnalysis(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a)
}
