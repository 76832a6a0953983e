package services

import (
	"fmt"

	"floorplan-backend/models"
	"floorplan-backend/utils"
)

// Stable rule identifiers for the building-code layer.
const (
	RuleMinArea         = "building_code.min_area"
	RuleWindowRequired  = "building_code.window_required"
	RuleEgress          = "building_code.egress"
	RuleAreaConsistency = "building_code.area_consistency"
)

// tightMarginFactor: a room within 10% above its minimum area passes with an
// "adequate but tight" note instead of a clean pass.
const tightMarginFactor = 1.1

// buildingCodeRule evaluates one rule against one room. A nil result means
// the rule does not apply to that room and contributes no evaluation.
type buildingCodeRule func(room models.Room) *models.Finding

// BuildingCodeService flags rooms violating minimum habitability standards.
// It is a pure function of the floor plan and the injected thresholds.
type BuildingCodeService struct {
	minArea   map[models.RoomType]float64
	roomRules []buildingCodeRule
}

func NewBuildingCodeService(cfg models.RuleConfig) *BuildingCodeService {
	s := &BuildingCodeService{minArea: cfg.MinAreaByType}
	// Ordered list: new rules are appended, existing ones never reordered, so
	// report ordering stays stable across versions.
	s.roomRules = []buildingCodeRule{
		s.checkMinArea,
		s.checkWindows,
		s.checkEgress,
	}
	return s
}

// Evaluate runs every room rule over every room in insertion order, then the
// building-wide consistency check.
func (s *BuildingCodeService) Evaluate(fp *models.FloorPlan) []models.Finding {
	findings := make([]models.Finding, 0, len(fp.Rooms)*len(s.roomRules))

	for _, room := range fp.Rooms {
		for _, rule := range s.roomRules {
			if f := rule(room); f != nil {
				findings = append(findings, *f)
			}
		}
	}

	if f := s.checkAreaConsistency(fp); f != nil {
		findings = append(findings, *f)
	}

	return findings
}

func (s *BuildingCodeService) checkMinArea(room models.Room) *models.Finding {
	min, ok := s.minArea[room.Type]
	if !ok {
		return &models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerBuildingCode,
			Severity: models.SeverityInfo,
			RuleID:   RuleMinArea,
			Message:  fmt.Sprintf("No minimum-area rule is configured for room type '%s'", room.Type),
		}
	}

	label := utils.RoomLabel(room)
	switch {
	case room.Area < min:
		return &models.Finding{
			RoomID:     room.ID,
			Layer:      models.LayerBuildingCode,
			Severity:   models.SeverityViolation,
			RuleID:     RuleMinArea,
			Message:    fmt.Sprintf("%s is %.1f sq units, below the required minimum of %.1f", label, room.Area, min),
			Suggestion: fmt.Sprintf("Expand the room to at least %.1f sq units, or merge it with an adjacent space", min),
		}
	case room.Area <= min*tightMarginFactor:
		return &models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerBuildingCode,
			Severity: models.SeverityInfo,
			RuleID:   RuleMinArea,
			Message:  fmt.Sprintf("%s is %.1f sq units, adequate but tight against the %.1f minimum", label, room.Area, min),
		}
	default:
		return &models.Finding{
			RoomID:   room.ID,
			Layer:    models.LayerBuildingCode,
			Severity: models.SeverityPass,
			RuleID:   RuleMinArea,
			Message:  fmt.Sprintf("%s meets the minimum area requirement (%.1f of %.1f sq units)", label, room.Area, min),
		}
	}
}

func (s *BuildingCodeService) checkWindows(room models.Room) *models.Finding {
	if !room.Type.Habitable() {
		return nil
	}

	label := utils.RoomLabel(room)
	if room.Windows == 0 {
		return &models.Finding{
			RoomID:     room.ID,
			Layer:      models.LayerBuildingCode,
			Severity:   models.SeverityViolation,
			RuleID:     RuleWindowRequired,
			Message:    fmt.Sprintf("%s has no windows", label),
			Suggestion: "Add at least one window for ventilation and natural light",
		}
	}
	return &models.Finding{
		RoomID:   room.ID,
		Layer:    models.LayerBuildingCode,
		Severity: models.SeverityPass,
		RuleID:   RuleWindowRequired,
		Message:  fmt.Sprintf("%s has %d window(s)", label, room.Windows),
	}
}

func (s *BuildingCodeService) checkEgress(room models.Room) *models.Finding {
	if !room.Type.Habitable() {
		return nil
	}

	label := utils.RoomLabel(room)
	if room.Doors == 0 {
		return &models.Finding{
			RoomID:     room.ID,
			Layer:      models.LayerBuildingCode,
			Severity:   models.SeverityViolation,
			RuleID:     RuleEgress,
			Message:    fmt.Sprintf("No egress: %s has no door", label),
			Suggestion: "Add a door so the room has an exit path",
		}
	}
	return &models.Finding{
		RoomID:   room.ID,
		Layer:    models.LayerBuildingCode,
		Severity: models.SeverityPass,
		RuleID:   RuleEgress,
		Message:  fmt.Sprintf("%s has %d door(s)", label, room.Doors),
	}
}

// checkAreaConsistency emits a building-wide warning when the declared total
// area is smaller than the sum of room areas. This is a data-consistency
// signal rather than a code violation, so it only surfaces when it fires.
func (s *BuildingCodeService) checkAreaConsistency(fp *models.FloorPlan) *models.Finding {
	sum := fp.RoomAreaSum()
	if fp.BuildingInfo.TotalArea >= sum {
		return nil
	}
	return &models.Finding{
		Layer:      models.LayerBuildingCode,
		Severity:   models.SeverityWarning,
		RuleID:     RuleAreaConsistency,
		Message:    fmt.Sprintf("Room areas total %.1f sq units but the declared building area is %.1f", sum, fp.BuildingInfo.TotalArea),
		Suggestion: "Re-check the detected room boundaries or the declared total building area",
	}
}
