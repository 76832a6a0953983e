package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"floorplan-backend/models"
	"floorplan-backend/services"
	"floorplan-backend/utils"

	"github.com/gin-gonic/gin"
)

// RuleResolver turns a profile name into concrete rule tables. Satisfied by
// services.RuleProfileService; tests substitute a stub.
type RuleResolver interface {
	Resolve(name string) (models.RuleConfig, error)
}

// AnalysisController serves the rule-engine endpoints: one route per layer,
// one for arbitrary layer combinations, plus the stored-analysis history.
type AnalysisController struct {
	analyses *services.AnalysisService
	profiles RuleResolver
}

func NewAnalysisController(analyses *services.AnalysisService, profiles RuleResolver) *AnalysisController {
	return &AnalysisController{analyses: analyses, profiles: profiles}
}

type analyzeRequest struct {
	FloorPlan     *models.FloorPlan `json:"floor_plan" binding:"required"`
	AnalysisTypes []models.Layer    `json:"analysis_types"`
	RuleProfile   string            `json:"rule_profile"`
}

func (ac *AnalysisController) AnalyzeBuildingCodes(c *gin.Context) {
	ac.analyze(c, []models.Layer{models.LayerBuildingCode})
}

func (ac *AnalysisController) AnalyzeVastu(c *gin.Context) {
	ac.analyze(c, []models.Layer{models.LayerVastu})
}

func (ac *AnalysisController) AnalyzeSunlight(c *gin.Context) {
	ac.analyze(c, []models.Layer{models.LayerSunlight})
}

// AnalyzeComplete runs the layers named in analysis_types, or all of them
// when the list is empty.
func (ac *AnalysisController) AnalyzeComplete(c *gin.Context) {
	ac.analyze(c, nil)
}

func (ac *AnalysisController) analyze(c *gin.Context, fixedLayers []models.Layer) {
	start := time.Now()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("analyze: bad payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	layers := fixedLayers
	if layers == nil {
		layers = req.AnalysisTypes
	}

	cfg, err := ac.profiles.Resolve(req.RuleProfile)
	if err != nil {
		if errors.Is(err, services.ErrRuleProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Unknown rule profile '" + req.RuleProfile + "'",
			})
			return
		}
		log.Printf("analyze: resolve profile %q: %v", req.RuleProfile, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load rule configuration",
		})
		return
	}

	aggregator := services.NewAggregatorService(cfg)
	report, err := aggregator.Evaluate(req.FloorPlan, layers)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": verr.Error(),
				"field":   verr.Field,
			})
			return
		}
		log.Printf("analyze: evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Analysis failed",
		})
		return
	}

	analysis, err := ac.analyses.Record(req.FloorPlan, report, req.RuleProfile)
	if err != nil {
		// The caller still gets their report; only the history entry is lost.
		log.Printf("analyze: failed to store analysis: %v", err)
	}

	data := gin.H{"report": report}
	if analysis != nil {
		data["analysis_id"] = analysis.AnalysisID
	}
	utils.JSONResult(c, http.StatusOK, "Analysis completed", data, time.Since(start).Seconds())
}

// GetAnalysisTypes lists the available layers so the frontend can build its
// selection UI without hardcoding them.
func (ac *AnalysisController) GetAnalysisTypes(c *gin.Context) {
	types := make([]gin.H, 0, len(models.AllLayers()))
	for _, layer := range models.AllLayers() {
		entry := gin.H{"id": layer}
		switch layer {
		case models.LayerBuildingCode:
			entry["name"] = "Building Codes"
			entry["description"] = "Minimum areas, window and egress requirements"
		case models.LayerVastu:
			entry["name"] = "Vastu"
			entry["description"] = "Traditional directional placement (residential buildings only)"
		case models.LayerSunlight:
			entry["name"] = "Sunlight"
			entry["description"] = "Daylight exposure versus what each room type wants"
		}
		types = append(types, entry)
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ac *AnalysisController) ListAnalyses(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	analyses, err := ac.analyses.List(limit)
	if err != nil {
		log.Printf("analyses: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load analyses",
		})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, analyses)
}

func (ac *AnalysisController) GetAnalysis(c *gin.Context) {
	id := c.Param("id")

	analysis, err := ac.analyses.Get(id)
	if errors.Is(err, services.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Analysis '" + id + "' not found",
		})
		return
	}
	if err != nil {
		log.Printf("analyses: get %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load analysis",
		})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, analysis)
}

func (ac *AnalysisController) DeleteAnalysis(c *gin.Context) {
	id := c.Param("id")

	err := ac.analyses.Delete(id)
	if errors.Is(err, services.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Analysis '" + id + "' not found",
		})
		return
	}
	if err != nil {
		log.Printf("analyses: delete %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete analysis",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Analysis deleted successfully",
	})
}
