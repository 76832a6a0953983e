package services

import (
	"testing"

	"floorplan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleProducesValidPlans(t *testing.T) {
	svc := NewDetectionService()

	buildingTypes := []models.BuildingType{
		models.BuildingResidential,
		models.BuildingCommercial,
		models.BuildingIndustrial,
		models.BuildingMixed,
	}
	complexities := []string{"simple", "medium", "complex"}

	for _, bt := range buildingTypes {
		for _, cx := range complexities {
			plan, err := svc.GenerateSample(bt, cx)
			require.NoError(t, err, "%s/%s", bt, cx)
			require.NotEmpty(t, plan.Rooms, "%s/%s", bt, cx)
			assert.NoError(t, plan.Validate(), "%s/%s", bt, cx)
			assert.Equal(t, bt, plan.BuildingInfo.BuildingType)

			// Room areas never exceed the declared building area.
			assert.LessOrEqual(t, plan.RoomAreaSum(), plan.BuildingInfo.TotalArea, "%s/%s", bt, cx)
		}
	}
}

func TestGenerateSampleDefaultsAndRejects(t *testing.T) {
	svc := NewDetectionService()

	plan, err := svc.GenerateSample(models.BuildingResidential, "")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, plan.BuildingInfo.TotalArea)

	_, err = svc.GenerateSample(models.BuildingResidential, "extreme")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "complexity", verr.Field)

	_, err = svc.GenerateSample("castle", "simple")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "building_type", verr.Field)
}

func TestDetectFromImage(t *testing.T) {
	svc := NewDetectionService()

	plan, err := svc.DetectFromImage("uploads/plan.png", models.BuildingResidential, 950)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Rooms)
	assert.NoError(t, plan.Validate())
	assert.Equal(t, 950.0, plan.BuildingInfo.TotalArea)

	_, err = svc.DetectFromImage("uploads/plan.png", models.BuildingResidential, 0)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "total_area", verr.Field)
}

func TestDetectFromImageIsDeterministic(t *testing.T) {
	svc := NewDetectionService()

	first, err := svc.DetectFromImage("a.png", models.BuildingResidential, 1200)
	require.NoError(t, err)
	second, err := svc.DetectFromImage("b.png", models.BuildingResidential, 1200)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
