package services

import (
	"fmt"
	"math"

	"floorplan-backend/models"
)

// AggregatorService runs the requested rule layers over a floor plan and
// folds their findings into a single compliance report. The same plan and
// rule tables always produce the same report, byte for byte.
type AggregatorService struct {
	buildingCode *BuildingCodeService
	vastu        *VastuService
	sunlight     *SunlightService
}

func NewAggregatorService(cfg models.RuleConfig) *AggregatorService {
	return &AggregatorService{
		buildingCode: NewBuildingCodeService(cfg),
		vastu:        NewVastuService(cfg),
		sunlight:     NewSunlightService(cfg),
	}
}

// Evaluate validates the plan, runs each requested layer in fixed order and
// scores the result. A nil or empty layer list means all layers. Unknown
// layer names are rejected before any rule runs.
func (s *AggregatorService) Evaluate(fp *models.FloorPlan, layers []models.Layer) (*models.ComplianceReport, error) {
	if err := fp.Validate(); err != nil {
		return nil, err
	}

	requested, err := resolveLayers(layers)
	if err != nil {
		return nil, err
	}

	report := &models.ComplianceReport{
		Findings: []models.Finding{},
		Layers:   make([]models.LayerScore, 0, len(requested)),
	}

	for _, layer := range models.AllLayers() {
		if !requested[layer] {
			continue
		}

		var findings []models.Finding
		applicable := true
		switch layer {
		case models.LayerBuildingCode:
			findings = s.buildingCode.Evaluate(fp)
		case models.LayerVastu:
			applicable = s.vastu.Applicable(fp.BuildingInfo)
			findings = s.vastu.Evaluate(fp)
		case models.LayerSunlight:
			findings = s.sunlight.Evaluate(fp)
		}

		report.Findings = append(report.Findings, findings...)
		report.Layers = append(report.Layers, scoreLayer(layer, findings, applicable))
	}

	report.OverallScore = overallScore(report.Layers)
	return report, nil
}

// resolveLayers normalizes the caller's layer selection into a set. Duplicate
// names are collapsed rather than rejected.
func resolveLayers(layers []models.Layer) (map[models.Layer]bool, error) {
	requested := make(map[models.Layer]bool, len(models.AllLayers()))
	if len(layers) == 0 {
		for _, layer := range models.AllLayers() {
			requested[layer] = true
		}
		return requested, nil
	}

	for _, layer := range layers {
		if !layer.IsValid() {
			return nil, &models.ValidationError{
				Field:   "layers",
				Message: fmt.Sprintf("unknown analysis layer %q", layer),
			}
		}
		requested[layer] = true
	}
	return requested, nil
}

// scoreLayer turns a layer's findings into its score entry. Each finding is
// one evaluation; violations penalize the score fully, warnings half.
func scoreLayer(layer models.Layer, findings []models.Finding, applicable bool) models.LayerScore {
	ls := models.LayerScore{Layer: layer, Applicable: applicable, Evaluations: len(findings)}

	if !applicable || len(findings) == 0 {
		// Nothing was evaluated: report a neutral score and leave the layer
		// out of the overall average.
		ls.Applicable = false
		ls.Score = 100
		return ls
	}

	var weighted float64
	for _, f := range findings {
		weighted += f.Severity.Weight()
		switch f.Severity {
		case models.SeverityViolation:
			ls.Violations++
		case models.SeverityWarning:
			ls.Warnings++
		}
	}

	score := 100 * (1 - weighted/float64(len(findings)))
	ls.Score = round2(math.Max(0, math.Min(100, score)))
	return ls
}

// overallScore averages the applicable layers. With no applicable layer the
// plan has nothing to fail, so the score is a neutral 100.
func overallScore(layers []models.LayerScore) float64 {
	var sum float64
	var n int
	for _, ls := range layers {
		if !ls.Applicable {
			continue
		}
		sum += ls.Score
		n++
	}
	if n == 0 {
		return 100
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
