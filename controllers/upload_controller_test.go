package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"floorplan-backend/models"
	"floorplan-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp mirrors t.Chdir(t.TempDir()), which requires Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := NewUploadController(services.NewDetectionService())
	r := gin.New()
	upload := r.Group("/api/upload")
	upload.POST("/floor-plan", uc.UploadFloorPlan)
	upload.POST("/sample-data", uc.GenerateSampleData)
	upload.GET("/sample-templates", uc.GetSampleTemplates)
	return r
}

func multipartUpload(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadFloorPlan(t *testing.T) {
	r := newUploadRouter()
	chdirTemp(t)

	body, contentType := multipartUpload(t, "plan.png", map[string]string{
		"building_type": "residential",
		"total_area":    "900",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload/floor-plan", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			FileURL   string            `json:"file_url"`
			FloorPlan *models.FloorPlan `json:"floor_plan"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Data.FileURL, "/uploads/")
	require.NotNil(t, resp.Data.FloorPlan)
	assert.NotEmpty(t, resp.Data.FloorPlan.Rooms)
	assert.Equal(t, 900.0, resp.Data.FloorPlan.BuildingInfo.TotalArea)
}

func TestUploadFloorPlanRejectsBadRequests(t *testing.T) {
	r := newUploadRouter()

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload/floor-plan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		body, contentType := multipartUpload(t, "plan.pdf", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/upload/floor-plan", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown building type", func(t *testing.T) {
		chdirTemp(t)
		body, contentType := multipartUpload(t, "plan.png", map[string]string{"building_type": "castle"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload/floor-plan", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGenerateSampleData(t *testing.T) {
	r := newUploadRouter()

	t.Run("empty body uses defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload/sample-data", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				FloorPlan *models.FloorPlan `json:"floor_plan"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data.FloorPlan)
		assert.Equal(t, models.BuildingResidential, resp.Data.FloorPlan.BuildingInfo.BuildingType)
	})

	t.Run("explicit options", func(t *testing.T) {
		w := postJSON(t, r, "/api/upload/sample-data", map[string]any{
			"building_type": "commercial",
			"complexity":    "complex",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				FloorPlan *models.FloorPlan `json:"floor_plan"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data.FloorPlan)
		assert.Equal(t, models.BuildingCommercial, resp.Data.FloorPlan.BuildingInfo.BuildingType)
		assert.Equal(t, 2000.0, resp.Data.FloorPlan.BuildingInfo.TotalArea)
	})

	t.Run("unknown complexity", func(t *testing.T) {
		w := postJSON(t, r, "/api/upload/sample-data", map[string]any{"complexity": "extreme"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func TestGetSampleTemplates(t *testing.T) {
	r := newUploadRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/upload/sample-templates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			BuildingTypes []string `json:"building_types"`
			Complexities  []string `json:"complexities"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.BuildingTypes, 4)
	assert.Equal(t, []string{"simple", "medium", "complex"}, resp.Data.Complexities)
}
