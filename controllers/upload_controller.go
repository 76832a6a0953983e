package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"floorplan-backend/models"
	"floorplan-backend/services"
	"floorplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	uploadDir     = "./uploads"
	maxUploadSize = 10 << 20 // 10 MB
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
}

// UploadController accepts floor-plan images and hands them to the detector.
// It also serves synthetic sample plans for demos.
type UploadController struct {
	detector *services.DetectionService
}

func NewUploadController(detector *services.DetectionService) *UploadController {
	return &UploadController{detector: detector}
}

// UploadFloorPlan stores the uploaded image, runs room detection on it and
// returns the detected plan ready for analysis.
func (uc *UploadController) UploadFloorPlan(c *gin.Context) {
	start := time.Now()

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing 'file' form field",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Unsupported file type '%s'. Allowed: jpg, jpeg, png, gif, bmp, tiff", ext),
		})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "File exceeds the 10 MB upload limit",
		})
		return
	}

	buildingType := models.BuildingType(c.DefaultPostForm("building_type", string(models.BuildingResidential)))
	totalArea := 1200.0
	if raw := c.PostForm("total_area"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%f", &totalArea); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "total_area must be a number",
			})
			return
		}
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("upload: create dir failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store the uploaded file",
		})
		return
	}

	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(uploadDir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		log.Printf("upload: save %s failed: %v", storedPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store the uploaded file",
		})
		return
	}

	plan, err := uc.detector.DetectFromImage(storedPath, buildingType, totalArea)
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
		log.Printf("upload: detection failed for %s: %v", storedPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Room detection failed",
		})
		return
	}

	data := gin.H{
		"file_url":   "/uploads/" + storedName,
		"floor_plan": plan,
	}
	utils.JSONResult(c, http.StatusOK, "Floor plan detected", data, time.Since(start).Seconds())
}

type sampleDataRequest struct {
	BuildingType models.BuildingType `json:"building_type"`
	Complexity   string              `json:"complexity"`
}

// GenerateSampleData returns a synthetic floor plan without requiring an
// image, so the frontend can be exercised offline.
func (uc *UploadController) GenerateSampleData(c *gin.Context) {
	start := time.Now()

	// An empty body is fine; everything has a default.
	req := sampleDataRequest{BuildingType: models.BuildingResidential}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request payload",
				"details": err.Error(),
			})
			return
		}
	}
	if req.BuildingType == "" {
		req.BuildingType = models.BuildingResidential
	}

	plan, err := uc.detector.GenerateSample(req.BuildingType, req.Complexity)
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
		log.Printf("sample-data: generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Sample generation failed",
		})
		return
	}

	utils.JSONResult(c, http.StatusOK, "Sample floor plan generated", gin.H{"floor_plan": plan}, time.Since(start).Seconds())
}

// GetSampleTemplates lists the building types and complexity presets the
// sample generator understands.
func (uc *UploadController) GetSampleTemplates(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"building_types": []models.BuildingType{
			models.BuildingResidential,
			models.BuildingCommercial,
			models.BuildingIndustrial,
			models.BuildingMixed,
		},
		"complexities": []string{"simple", "medium", "complex"},
	})
}
