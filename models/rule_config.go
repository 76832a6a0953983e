package models

// Exposure is the qualitative sunlight level a compass direction receives.
type Exposure string

const (
	ExposureHigh   Exposure = "high"
	ExposureMedium Exposure = "medium"
	ExposureLow    Exposure = "low"
)

// DirectionPrefs lists a room type's preferred directions (most-preferred
// first) and its inauspicious directions. The two lists are disjoint;
// directions in neither list are neutral.
type DirectionPrefs struct {
	Preferred    []Direction `json:"preferred"`
	Inauspicious []Direction `json:"inauspicious"`
}

// RuleConfig carries every injectable rule table. The rule sets hold a copy
// and never consult anything else, so jurisdiction or convention overrides
// are a matter of handing the aggregator a different config.
//
// A missing entry for a room type present in the input is not an error: the
// affected rule degrades into an info-level "rule not configured" finding for
// that room only.
type RuleConfig struct {
	MinAreaByType               map[RoomType]float64        `json:"minAreaByType"`
	VastuPreferences            map[RoomType]DirectionPrefs `json:"vastuPreferences"`
	SunlightExposureByDirection map[Direction]Exposure      `json:"sunlightExposureByDirection"`
	SunlightDesiredByType       map[RoomType]Exposure       `json:"sunlightDesiredByType"`
}
