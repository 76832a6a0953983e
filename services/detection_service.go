package services

import (
	"fmt"
	"math"

	"floorplan-backend/models"
)

// roomTemplate describes one room the mock detector "finds": its type, its
// share of the total building area and the wall it sits against.
type roomTemplate struct {
	roomType  models.RoomType
	areaRatio float64
	direction models.Direction
}

// DetectionService produces floor plans from uploaded images. Real computer
// vision is out of scope; detection is mocked with plausible room layouts
// keyed by building type and size, which is enough to drive the rule engine
// end to end.
type DetectionService struct{}

func NewDetectionService() *DetectionService {
	return &DetectionService{}
}

// Complexity presets for generated sample plans.
var sampleAreaByComplexity = map[string]float64{
	"simple":  800,
	"medium":  1200,
	"complex": 2000,
}

// DetectFromImage pretends to analyze the stored image and returns the rooms
// it "detected". The image path only influences logging; the layout comes
// from the building type and declared area.
func (s *DetectionService) DetectFromImage(imagePath string, buildingType models.BuildingType, totalArea float64) (*models.FloorPlan, error) {
	if !buildingType.IsValid() {
		return nil, &models.ValidationError{
			Field:   "building_type",
			Message: fmt.Sprintf("unknown building type %q", buildingType),
		}
	}
	if totalArea <= 0 {
		return nil, &models.ValidationError{Field: "total_area", Message: "must be positive"}
	}
	return s.buildPlan(buildingType, totalArea), nil
}

// GenerateSample returns a synthetic plan for demos and frontend development.
// Complexity selects the building size: simple, medium or complex.
func (s *DetectionService) GenerateSample(buildingType models.BuildingType, complexity string) (*models.FloorPlan, error) {
	if !buildingType.IsValid() {
		return nil, &models.ValidationError{
			Field:   "building_type",
			Message: fmt.Sprintf("unknown building type %q", buildingType),
		}
	}

	if complexity == "" {
		complexity = "medium"
	}
	totalArea, ok := sampleAreaByComplexity[complexity]
	if !ok {
		return nil, &models.ValidationError{
			Field:   "complexity",
			Message: fmt.Sprintf("must be one of simple, medium or complex, got %q", complexity),
		}
	}

	return s.buildPlan(buildingType, totalArea), nil
}

func (s *DetectionService) buildPlan(buildingType models.BuildingType, totalArea float64) *models.FloorPlan {
	templates := templatesFor(buildingType, totalArea)

	rooms := make([]models.Room, 0, len(templates))
	var y float64
	for i, tpl := range templates {
		area := math.Round(tpl.areaRatio*totalArea*10) / 10

		// Exact rectangle so the declared area always matches the bounds.
		width := math.Sqrt(area)
		height := area / width

		rooms = append(rooms, models.Room{
			ID:        fmt.Sprintf("room_%d", i+1),
			Type:      tpl.roomType,
			Area:      area,
			Direction: tpl.direction,
			Windows:   mockWindows(tpl.roomType, area),
			Doors:     1,
			Coordinates: &models.Coordinates{
				X:      0,
				Y:      y,
				Width:  width,
				Height: height,
			},
		})
		y += height + 2
	}

	return &models.FloorPlan{
		Rooms: rooms,
		BuildingInfo: models.BuildingInfo{
			TotalArea:    totalArea,
			Floors:       1,
			BuildingType: buildingType,
		},
	}
}

// templatesFor picks a room mix for the building. Area ratios always sum to
// at most 1.0 so the declared total stays consistent with the room areas.
func templatesFor(buildingType models.BuildingType, totalArea float64) []roomTemplate {
	if buildingType != models.BuildingResidential && buildingType != models.BuildingMixed {
		return []roomTemplate{
			{models.RoomOther, 0.40, models.South},
			{models.RoomOther, 0.20, models.West},
			{models.RoomOther, 0.25, models.East},
			{models.RoomBathroom, 0.10, models.North},
			{models.RoomEntrance, 0.05, models.East},
		}
	}

	if totalArea < 1000 {
		return []roomTemplate{
			{models.RoomLivingRoom, 0.30, models.South},
			{models.RoomBedroom, 0.25, models.East},
			{models.RoomKitchen, 0.15, models.SouthEast},
			{models.RoomBathroom, 0.10, models.West},
			{models.RoomEntrance, 0.05, models.East},
			{models.RoomOther, 0.15, models.North},
		}
	}

	if totalArea < 1800 {
		return []roomTemplate{
			{models.RoomLivingRoom, 0.25, models.North},
			{models.RoomBedroom, 0.20, models.SouthWest},
			{models.RoomBedroom, 0.15, models.South},
			{models.RoomKitchen, 0.12, models.SouthEast},
			{models.RoomBathroom, 0.06, models.West},
			{models.RoomStudy, 0.10, models.NorthEast},
			{models.RoomEntrance, 0.05, models.NorthEast},
			{models.RoomOther, 0.07, models.NorthWest},
		}
	}

	return []roomTemplate{
		{models.RoomLivingRoom, 0.22, models.North},
		{models.RoomBedroom, 0.15, models.SouthWest},
		{models.RoomBedroom, 0.12, models.South},
		{models.RoomBedroom, 0.10, models.East},
		{models.RoomKitchen, 0.10, models.SouthEast},
		{models.RoomBathroom, 0.05, models.West},
		{models.RoomBathroom, 0.04, models.SouthWest},
		{models.RoomStudy, 0.08, models.NorthEast},
		{models.RoomPoojaRoom, 0.04, models.NorthEast},
		{models.RoomEntrance, 0.04, models.East},
		{models.RoomOther, 0.06, models.NorthWest},
	}
}

var baseWindows = map[models.RoomType]int{
	models.RoomLivingRoom: 2,
	models.RoomBedroom:    1,
	models.RoomKitchen:    1,
	models.RoomStudy:      1,
	models.RoomPoojaRoom:  1,
	models.RoomEntrance:   1,
}

func mockWindows(roomType models.RoomType, area float64) int {
	n := baseWindows[roomType]
	if area > 150 {
		n++
	}
	if area > 300 {
		n++
	}
	return n
}
