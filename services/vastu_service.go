package services

import (
	"fmt"

	"floorplan-backend/models"
	"floorplan-backend/utils"
)

// RuleVastuPlacement is the stable identifier for the directional placement
// rule; it is the only rule in the Vastu layer.
const RuleVastuPlacement = "vastu.placement"

// VastuService evaluates room placement against directional tradition rules.
// The preference tables are injected data, not doctrine baked into code.
type VastuService struct {
	prefs map[models.RoomType]models.DirectionPrefs
}

func NewVastuService(cfg models.RuleConfig) *VastuService {
	return &VastuService{prefs: cfg.VastuPreferences}
}

// Applicable reports whether the layer runs at all. Vastu placement rules are
// evaluated for residential buildings only; for anything else the layer is
// reported as not applicable instead of scored.
func (s *VastuService) Applicable(info models.BuildingInfo) bool {
	return info.BuildingType == models.BuildingResidential
}

func (s *VastuService) Evaluate(fp *models.FloorPlan) []models.Finding {
	if !s.Applicable(fp.BuildingInfo) {
		return nil
	}

	findings := make([]models.Finding, 0, len(fp.Rooms))
	for _, room := range fp.Rooms {
		findings = append(findings, s.checkPlacement(room))
	}
	return findings
}

func (s *VastuService) checkPlacement(room models.Room) models.Finding {
	prefs, ok := s.prefs[room.Type]
	if !ok {
		return models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerVastu,
			Severity: models.SeverityInfo,
			RuleID:   RuleVastuPlacement,
			Message:  fmt.Sprintf("No Vastu placement rule is configured for room type '%s'", room.Type),
		}
	}

	label := utils.RoomLabel(room)
	dir := utils.DirectionLabel(room.Direction)

	if containsDirection(prefs.Preferred, room.Direction) {
		return models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerVastu,
			Severity: models.SeverityPass,
			RuleID:   RuleVastuPlacement,
			Message:  fmt.Sprintf("%s faces %s, an ideal placement for this room type", label, dir),
		}
	}

	if containsDirection(prefs.Inauspicious, room.Direction) {
		suggestion := "Relocate the room if the layout allows"
		// Tie-break on the first (most-preferred) entry.
		if len(prefs.Preferred) > 0 {
			suggestion = fmt.Sprintf("Prefer the %s side for a %s (favorable: %s)",
				utils.DirectionLabel(prefs.Preferred[0]),
				utils.RoomTypeLabel(room.Type),
				utils.DirectionList(prefs.Preferred))
		}
		return models.Finding{
			RoomID:     room.ID,
			Layer:      models.LayerVastu,
			Severity:   models.SeverityViolation,
			RuleID:     RuleVastuPlacement,
			Message:    fmt.Sprintf("%s faces %s, an inauspicious direction for this room type", label, dir),
			Suggestion: suggestion,
		}
	}

	return models.Finding{
		RoomID:   room.ID,
		Layer:    models.LayerVastu,
		Severity: models.SeverityInfo,
		RuleID:   RuleVastuPlacement,
		Message:  fmt.Sprintf("%s faces %s, acceptable but not optimal", label, dir),
	}
}

func containsDirection(dirs []models.Direction, d models.Direction) bool {
	for _, candidate := range dirs {
		if candidate == d {
			return true
		}
	}
	return false
}
