package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Analysis is one stored analysis run. The engine itself never persists
// anything; this row wraps the report with the identifiers and timestamps the
// history API needs.
type Analysis struct {
	gorm.Model

	AnalysisID   string  `json:"analysis_id" gorm:"column:analysis_id;uniqueIndex;type:varchar(36)"`
	BuildingType string  `json:"building_type" gorm:"column:building_type;type:varchar(32)"`
	RoomCount    int     `json:"room_count" gorm:"column:room_count"`
	OverallScore float64 `json:"overall_score" gorm:"column:overall_score"`
	RuleProfile  string  `json:"rule_profile,omitempty" gorm:"column:rule_profile;type:varchar(100)"`

	FloorPlan datatypes.JSON `json:"floor_plan" gorm:"column:floor_plan"`
	Report    datatypes.JSON `json:"report" gorm:"column:report"`
}
