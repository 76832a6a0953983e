package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"floorplan-backend/models"
	"floorplan-backend/services"
	"floorplan-backend/utils"

	"github.com/gin-gonic/gin"
)

// RuleProfileController manages named rule-table overrides.
type RuleProfileController struct {
	profiles *services.RuleProfileService
}

func NewRuleProfileController(profiles *services.RuleProfileService) *RuleProfileController {
	return &RuleProfileController{profiles: profiles}
}

func (rc *RuleProfileController) ListRuleProfiles(c *gin.Context) {
	profiles, err := rc.profiles.List()
	if err != nil {
		log.Printf("rule-profiles: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load rule profiles",
		})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profiles)
}

type createProfileRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Tables      models.RuleConfig `json:"tables"`
}

func (rc *RuleProfileController) CreateRuleProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Profile name is required",
		})
		return
	}

	tables, err := json.Marshal(req.Tables)
	if err != nil {
		log.Printf("rule-profiles: marshal tables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to encode rule tables",
		})
		return
	}

	profile := models.RuleProfile{
		Name:        req.Name,
		Description: req.Description,
		Tables:      tables,
	}
	if err := rc.profiles.Create(&profile); err != nil {
		if errors.Is(err, services.ErrRuleProfileExists) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Rule profile '" + req.Name + "' already exists",
			})
			return
		}
		log.Printf("rule-profiles: create %q failed: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create rule profile",
		})
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, profile)
}

func (rc *RuleProfileController) DeleteRuleProfile(c *gin.Context) {
	name := c.Param("name")

	err := rc.profiles.Delete(name)
	switch {
	case errors.Is(err, services.ErrDefaultProfile):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "The default rule profile cannot be deleted",
		})
	case errors.Is(err, services.ErrRuleProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Rule profile '" + name + "' not found",
		})
	case err != nil:
		log.Printf("rule-profiles: delete %q failed: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete rule profile",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Rule profile deleted successfully",
		})
	}
}
