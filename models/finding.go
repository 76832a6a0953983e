package models

// Layer identifies one of the three independent rule domains.
type Layer string

const (
	LayerBuildingCode Layer = "building_code"
	LayerVastu        Layer = "vastu"
	LayerSunlight     Layer = "sunlight"
)

func (l Layer) IsValid() bool {
	switch l {
	case LayerBuildingCode, LayerVastu, LayerSunlight:
		return true
	}
	return false
}

// AllLayers returns the layers in report order. Findings are always grouped
// building_code, vastu, sunlight regardless of how the caller requested them.
func AllLayers() []Layer {
	return []Layer{LayerBuildingCode, LayerVastu, LayerSunlight}
}

// Severity is the ordinal outcome of a single rule evaluation:
// pass < info < warning < violation.
type Severity string

const (
	SeverityPass      Severity = "pass"
	SeverityInfo      Severity = "info"
	SeverityWarning   Severity = "warning"
	SeverityViolation Severity = "violation"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityPass, SeverityInfo, SeverityWarning, SeverityViolation:
		return true
	}
	return false
}

// Weight is the severity's contribution to the layer score penalty.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityViolation:
		return 1.0
	case SeverityWarning:
		return 0.5
	}
	return 0
}

// Finding is one atomic rule-evaluation result. RoomID is empty for
// building-wide findings.
type Finding struct {
	RoomID     string   `json:"room_id,omitempty"`
	Layer      Layer    `json:"layer"`
	Severity   Severity `json:"severity"`
	RuleID     string   `json:"rule_id"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// LayerScore aggregates one layer's findings. A layer that produced no
// evaluations is reported with Applicable=false and a neutral score of 100;
// such layers are excluded from the overall average.
type LayerScore struct {
	Layer       Layer   `json:"layer"`
	Score       float64 `json:"score"`
	Applicable  bool    `json:"applicable"`
	Evaluations int     `json:"evaluations"`
	Violations  int     `json:"violations"`
	Warnings    int     `json:"warnings"`
}

// ComplianceReport is the engine's output. It carries no identifiers or
// timestamps so that identical inputs serialize byte-identically; persistence
// metadata is added by the storage layer, not here.
type ComplianceReport struct {
	Findings     []Finding    `json:"findings"`
	Layers       []LayerScore `json:"layers"`
	OverallScore float64      `json:"overall_score"`
}

// LayerResult returns the score entry for one layer, if it was requested.
func (r *ComplianceReport) LayerResult(layer Layer) (LayerScore, bool) {
	for _, ls := range r.Layers {
		if ls.Layer == layer {
			return ls, true
		}
	}
	return LayerScore{}, false
}
