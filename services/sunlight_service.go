package services

import (
	"fmt"

	"floorplan-backend/models"
	"floorplan-backend/utils"
)

// RuleSunlightExposure is the stable identifier for the daylight exposure
// rule; it is the only rule in the sunlight layer.
const RuleSunlightExposure = "sunlight.exposure"

// exposureRank orders exposure levels so a mismatch can be classified as
// over- or under-exposed.
var exposureRank = map[models.Exposure]int{
	models.ExposureLow:    0,
	models.ExposureMedium: 1,
	models.ExposureHigh:   2,
}

// SunlightService compares the daylight a room's facing direction delivers
// with what its room type wants. Mismatches are advisory, never violations.
type SunlightService struct {
	exposure map[models.Direction]models.Exposure
	desired  map[models.RoomType]models.Exposure
}

func NewSunlightService(cfg models.RuleConfig) *SunlightService {
	return &SunlightService{
		exposure: cfg.SunlightExposureByDirection,
		desired:  cfg.SunlightDesiredByType,
	}
}

func (s *SunlightService) Evaluate(fp *models.FloorPlan) []models.Finding {
	findings := make([]models.Finding, 0, len(fp.Rooms))
	for _, room := range fp.Rooms {
		findings = append(findings, s.checkExposure(room))
	}
	return findings
}

func (s *SunlightService) checkExposure(room models.Room) models.Finding {
	actual, ok := s.exposure[room.Direction]
	if !ok {
		return models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerSunlight,
			Severity: models.SeverityInfo,
			RuleID:   RuleSunlightExposure,
			Message:  fmt.Sprintf("No sunlight exposure level is configured for direction '%s'", room.Direction),
		}
	}

	want, ok := s.desired[room.Type]
	if !ok {
		return models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerSunlight,
			Severity: models.SeverityInfo,
			RuleID:   RuleSunlightExposure,
			Message:  fmt.Sprintf("No desired sunlight level is configured for room type '%s'", room.Type),
		}
	}

	label := utils.RoomLabel(room)
	dir := utils.DirectionLabel(room.Direction)

	if actual == want {
		if room.Windows == 0 {
			return models.Finding{
				RoomID:     room.ID,
				Layer:      models.LayerSunlight,
				Severity:   models.SeverityInfo,
				RuleID:     RuleSunlightExposure,
				Message:    fmt.Sprintf("%s faces %s with the right exposure, but has no windows to admit it", label, dir),
				Suggestion: "Add a window on the facing wall to benefit from the available daylight",
			}
		}
		return models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerSunlight,
			Severity: models.SeverityPass,
			RuleID:   RuleSunlightExposure,
			Message:  fmt.Sprintf("%s faces %s, matching its desired %s sunlight exposure", label, dir, want),
		}
	}

	var suggestion string
	if exposureRank[actual] > exposureRank[want] {
		suggestion = "Consider window treatments or external shading to reduce glare and heat gain"
	} else {
		suggestion = "Consider larger or additional windows, or a lighter interior palette, to compensate for low daylight"
	}

	return models.Finding{
		RoomID:     room.ID,
		Layer:      models.LayerSunlight,
		Severity:   models.SeverityWarning,
		RuleID:     RuleSunlightExposure,
		Message:    fmt.Sprintf("%s faces %s (%s exposure) but prefers %s exposure", label, dir, actual, want),
		Suggestion: suggestion,
	}
}
