package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"floorplan-backend/controllers"
	"floorplan-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	ac *controllers.AnalysisController,
	uc *controllers.UploadController,
	rc *controllers.RuleProfileController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		analyze := api.Group("/analyze")
		{
			analyze.POST("/building-codes", ac.AnalyzeBuildingCodes)
			analyze.POST("/vastu", ac.AnalyzeVastu)
			analyze.POST("/sunlight", ac.AnalyzeSunlight)
			analyze.POST("/complete", ac.AnalyzeComplete)
			analyze.GET("/analysis-types", ac.GetAnalysisTypes)
		}

		analyses := api.Group("/analyses")
		{
			analyses.GET("", ac.ListAnalyses)
			analyses.GET("/:id", ac.GetAnalysis)
			analyses.DELETE("/:id", ac.DeleteAnalysis)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/floor-plan", uc.UploadFloorPlan)
			upload.POST("/sample-data", uc.GenerateSampleData)
			upload.GET("/sample-templates", uc.GetSampleTemplates)
		}

		profiles := api.Group("/rule-profiles")
		{
			profiles.GET("", rc.ListRuleProfiles)
			profiles.POST("", rc.CreateRuleProfile)
			profiles.DELETE("/:name", rc.DeleteRuleProfile)
		}
	}

	return r
}
